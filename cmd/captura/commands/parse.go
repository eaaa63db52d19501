package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sebv03/captura/internal/output"
	"github.com/Sebv03/captura/pkg/ocr"
	"github.com/Sebv03/captura/pkg/product"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse an OCR transcript into a product record skeleton",
	Long: `Read a free-text OCR transcript of a product photo (from a file or
stdin) and extract a name and price with the same numeric conventions
the page extractor uses. The result is a record skeleton for manual
completion, not a full capture.`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	flags := parseCmd.Flags()
	flags.StringP("file", "f", "", "transcript file (default: stdin)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
}

func runParse(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	var text []byte
	var err error
	if file == "" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(file)
	}
	if err != nil {
		return err
	}

	name, n := ocr.ParseTranscript(string(text))
	if name == "" && n == 0 {
		return fmt.Errorf("no name or price detected in transcript")
	}

	rec := &product.Product{
		Name:       name,
		Price:      n,
		Strategy:   "ocr",
		Confidence: product.ConfidenceLow,
	}

	format, _ := cmd.Flags().GetString("format")
	writer, err := output.NewWriter(os.Stdout, output.Format(format))
	if err != nil {
		return err
	}
	if err := writer.Write(rec); err != nil {
		return err
	}
	return writer.Flush()
}

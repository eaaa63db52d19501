package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sebv03/captura/internal/capture"
	"github.com/Sebv03/captura/internal/logger"
	"github.com/Sebv03/captura/internal/output"
	"github.com/Sebv03/captura/pkg/extract"
	"github.com/Sebv03/captura/pkg/fetcher"
	"github.com/Sebv03/captura/pkg/product"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Extract product records from e-commerce pages",
	Long: `Fetch one or more product pages, run the extraction strategy chain,
and print the resulting records. With --post, records are also sent to
the capture API.

A local HTML file can be extracted with --file together with --url
(the URL the file was saved from; the extractor needs it for slug
derivation and image resolution).`,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)

	flags := captureCmd.Flags()

	flags.StringSliceP("url", "u", nil, "URL(s) to capture (can be repeated)")
	flags.StringP("file", "f", "", "local HTML file to extract instead of fetching")

	flags.Bool("dynamic", false, "render pages with a headless browser")
	flags.Duration("timeout", fetcher.DefaultTimeout, "fetch timeout")
	flags.String("user-agent", "", "override the request user agent")
	flags.Duration("retry-delay", capture.DefaultRetryDelay, "delay before the one-shot retry when price and image are missing")
	flags.Bool("detect", false, "skip URLs that don't look like product pages")

	flags.String("site-map", "", "YAML file with per-host selector overrides")

	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")

	flags.Bool("post", false, "POST records to the capture API")
	flags.String("api-url", "http://localhost:3000", "capture API base URL")
	flags.String("api-key", "", "capture API key (or CAPTURA_API_KEY)")

	_ = viper.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("site_map", flags.Lookup("site-map"))
}

func runCapture(cmd *cobra.Command, args []string) error {
	urls, _ := cmd.Flags().GetStringSlice("url")
	file, _ := cmd.Flags().GetString("file")
	if len(urls) == 0 {
		return fmt.Errorf("at least one --url is required")
	}
	if file != "" && len(urls) != 1 {
		return fmt.Errorf("--file requires exactly one --url")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	chain, err := buildChain()
	if err != nil {
		return err
	}

	dynamic, _ := cmd.Flags().GetBool("dynamic")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	retryDelay, _ := cmd.Flags().GetDuration("retry-delay")
	detect, _ := cmd.Flags().GetBool("detect")

	var f fetcher.Fetcher
	if file == "" {
		f, err = buildFetcher(dynamic, userAgent, timeout)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	svc := capture.NewService(f, chain, capture.Config{
		RetryDelay:  retryDelay,
		RequireGate: detect,
		FetchOpts: fetcher.Options{
			UserAgent: userAgent,
			Timeout:   timeout,
		},
	})

	writer, closeOut, err := buildWriter(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	var client *capture.Client
	if post, _ := cmd.Flags().GetBool("post"); post {
		client = capture.NewClient(capture.ClientConfig{
			BaseURL: viper.GetString("api_url"),
			APIKey:  viper.GetString("api_key"),
			Timeout: timeout,
		})
	}

	missed := 0
	for _, url := range urls {
		rec, err := captureOne(ctx, svc, url, file)
		if err != nil {
			logError("%s: %v", url, err)
			missed++
			continue
		}
		if rec == nil {
			// Not an error: the page simply holds no detectable product.
			logger.Info("no product detected", "url", url)
			missed++
			continue
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
		if client != nil {
			action, err := client.Send(ctx, rec)
			if err != nil {
				logError("%s: %v", url, err)
				continue
			}
			logger.Info("record posted", "url", url, "action", action)
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	if missed == len(urls) {
		return fmt.Errorf("no products detected")
	}
	return nil
}

func captureOne(ctx context.Context, svc *capture.Service, url, file string) (rec *product.Product, err error) {
	if file != "" {
		html, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return svc.Extract(string(html), url)
	}
	start := time.Now()
	rec, err = svc.Capture(ctx, url)
	if err == nil {
		logger.Debug("capture complete", "url", url, "duration", time.Since(start))
	}
	return rec, err
}

func buildChain() (*extract.Chain, error) {
	if path := viper.GetString("site_map"); path != "" {
		sites, err := extract.LoadSiteMap(path)
		if err != nil {
			return nil, err
		}
		return extract.NewChain(extract.WithSiteMap(sites)), nil
	}
	return extract.NewChain(), nil
}

func buildFetcher(dynamic bool, userAgent string, timeout time.Duration) (fetcher.Fetcher, error) {
	cfg := fetcher.Config{UserAgent: userAgent, Timeout: timeout}
	if dynamic {
		return fetcher.NewDynamic(cfg)
	}
	return fetcher.NewStatic(cfg), nil
}

func buildWriter(cmd *cobra.Command) (output.Writer, func(), error) {
	format, _ := cmd.Flags().GetString("format")
	dest, _ := cmd.Flags().GetString("output")

	out := os.Stdout
	closeOut := func() {}
	if dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeOut = func() { f.Close() }
	}

	writer, err := output.NewWriter(out, output.Format(format))
	if err != nil {
		closeOut()
		return nil, nil, err
	}
	return writer, closeOut, nil
}

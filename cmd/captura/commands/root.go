// Package commands implements the CLI commands for captura.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sebv03/captura/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "captura",
	Short: "Universal product extractor for e-commerce pages",
	Long: `Captura recovers structured product records (name, price, image,
brand, SKU) from arbitrary e-commerce pages without any site-specific
integration contract, using an ordered chain of extraction strategies.

Examples:
  # Extract a product from a live page
  captura capture -u "https://tienda.example.cl/producto/chocolate-golazo-25gr"

  # Extract and post to the capture API
  captura capture -u "https://tienda.example.cl/p/pilas-aa" --post \
      --api-url http://localhost:3000 --api-key "$CAPTURA_API_KEY"

  # Use a headless browser for JS-rendered storefronts
  captura capture -u "https://spa-store.example.cl/p/123" --dynamic

  # Parse an OCR transcript of a product photo
  captura parse -f transcript.txt`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("log-json"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.captura.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging (includes strategy tracing)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only show errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log-json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".captura")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CAPTURA")
	viper.AutomaticEnv()

	_ = viper.BindEnv("api_key", "CAPTURA_API_KEY", "EXTENSION_API_KEY")

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

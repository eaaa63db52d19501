package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sebv03/captura/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if full, _ := cmd.Flags().GetBool("full"); full {
			fmt.Println(version.Full())
			return
		}
		fmt.Println(version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("full", false, "show detailed build information")
}

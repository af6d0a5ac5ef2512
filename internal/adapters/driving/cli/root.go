// Package cli provides the command-line interface for the portfolio
// assistant.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-assistant",
	Short: "Retrieval-augmented assistant for Sandip Baste's portfolio",
	Long: `portfolio-assistant answers questions about Sandip Baste's professional
profile. It retrieves from the structured profile and resume PDF, grounds
answers with the Gemini API, and degrades to deterministic templates when
providers are unavailable.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default ~/.portfolio-assistant/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

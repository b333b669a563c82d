// Package cmd implements the CLI commands for notepipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/notepipe/config"
	"github.com/gaurav-prasanna/notepipe/logging"
)

var (
	flagConfig   string
	flagLogLevel string

	// Populated by the root command before any subcommand runs.
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "notepipe",
	Short: "notepipe — normalize notes into structured blocks",
	Long: `notepipe turns raw note content (rich-text markup or plain text) into an
ordered sequence of typed blocks, computes a density-driven typography scale,
and renders the result as JSON, Markdown, HTML, PDF, or a terminal preview.

Usage:
  notepipe normalize <path|-> [flags]
  notepipe typography <path|->`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ./notepipe.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", "", "Log level: debug, info, warn, error (overrides config)")
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.LogLevel = flagLogLevel
	}
	cfg = loaded
	log = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	log.Debug().Str("config", flagConfig).Str("format", cfg.Format).Msg("configuration loaded")
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

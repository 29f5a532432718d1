// Package cmd implements the CLI commands for postpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "postpipe",
		Short: "postpipe — normalize stored blog post HTML for display",
		Long: `postpipe prepares blog post bodies for display. Loose text and inline
markup are wrapped in paragraphs; content that already has block structure
is left exactly as it was. Results can be written as HTML, Markdown, JSON,
or PDF.

Usage:
  postpipe normalize <source> [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newNormalizeCmd(opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

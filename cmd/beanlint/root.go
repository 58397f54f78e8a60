package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"osier-hq/beanlint/pkg/telemetry/logging"
)

var (
	// Global flags
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "beanlint",
	Short: "beanlint - object-graph validation core tooling",
	Long: `beanlint ships the core of a declarative object-graph validator:
the graph-location path model, the override-resolution registry fed by
external configuration, and the violation aggregation store.

The CLI exposes the pieces that are useful standalone:
  - Parsing and inspecting path expressions
  - Validating override-configuration documents and dumping the
    resolved ignore decisions`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the logger shared by all subcommands.
func newLogger() (*slog.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: logFormat,
		Writer: os.Stderr,
	})
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (json, text)")
}

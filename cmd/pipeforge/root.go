package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pipeforge/internal/adapters/logging"
	"pipeforge/internal/ports"
)

var (
	// Global flags
	settingsFile string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "pipeforge",
	Short: "Generate and validate CI/CD configuration artifacts",
	Long: `Pipeforge compiles typed pipeline, template, and environment configuration
into deterministic YAML artifacts, validating the schema, scope hierarchy,
and semantic invariants before an artifact is trusted.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default: pipeforge.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the CLI logger honoring the verbose flag.
func newLogger() ports.Logger {
	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	return logging.NewConsoleLogger(logging.WithLevel(level))
}

// formatError returns a user-friendly error message.
func formatError(err error) string {
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		msg := usageErr.Message
		if usageErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", usageErr.Suggestion)
		}
		if verbose && usageErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", usageErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

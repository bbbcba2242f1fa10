package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clikit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "clikit",
	Short:         "Command-line toolkit: argument parsing, language packs and console diagnostics",
	Long:          `clikit bundles the argument parser, language packs and console reporter behind a few inspection commands`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		runTraceCleanup()
	},
}

// traceCleanup is set by setupTracing and run once after the command.
var traceCleanup func()

func runTraceCleanup() {
	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}
}

// errReported means the failure was already written through a reporter.
var errReported = errors.New("failure already reported")

func init() {
	rootCmd.Version = version.Get().Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(langpackCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off); default from clikit.toml")
	rootCmd.PersistentFlags().String("config", "", "config file (default: nearest clikit.toml or clikit.yaml)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file ('-' for stderr); default from CLIKIT_TRACE_OUT")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug); default from CLIKIT_TRACE")
	rootCmd.PersistentFlags().String("trace-mode", "", "trace storage (stream|ring|both)")
}

func main() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when RunE fails
	runTraceCleanup()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

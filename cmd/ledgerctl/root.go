package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/ledgertree/internal/config"
	"github.com/joshuapare/ledgertree/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	debugLog   bool
	configPath string

	// cfg is resolved before any subcommand runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Print account trees and table pages from a ledger snapshot",
	Long: `ledgerctl reads a ledger snapshot (accounts, kinds, institutions,
commodities and balances as JSON) and prints the account forest under a
grouping mode, or a window of the flattened, expandable account table.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write debug logs to ~/.ledgertree/logs")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "View configuration file (default $"+config.EnvConfig+")")
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := logger.Init(logger.Options{Enabled: debugLog, Level: slog.LevelDebug}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	c, err := config.Resolve(configPath, os.Getenv)
	if err != nil {
		return err
	}
	cfg = c
	logger.Info("ledgerctl started", "command", cmd.Name(), "mode", cfg.Mode.String())
	return nil
}

func execute() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// errorPrefix is red on a terminal and plain otherwise.
var errorPrefix = color.New(color.FgRed, color.Bold)

// printError prints an error message
func printError(format string, args ...any) {
	errorPrefix.Fprint(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

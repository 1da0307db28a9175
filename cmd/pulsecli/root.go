package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulsecli",
		Short: "pulsecli - health and fitness calculators",
		Long: `Pulse estimates body composition, energy expenditure, cardiovascular
fitness and strength metrics from several published formulas at once.

Run a single calculation, convert spreadsheets of measurements in bulk, or
render a PDF report.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newBatchCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

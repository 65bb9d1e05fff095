package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mfl",
		Short: "Money for Life: take-home pay after taxes and long-term investment growth",
		Long: `mfl estimates 2025 federal, state and payroll taxes for a salary, then projects
how investing a share of the take-home pay grows until retirement age.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newTaxesCmd(),
		newGrowthCmd(),
		newMilestonesCmd(),
		newStatesCmd(),
		newPlanCmd(),
		newRunCmd(),
		newExampleCmd(),
		newServeCmd(),
	)
	return root
}

// newLogger returns a slog logger on stderr; --verbose lowers the level to debug
func newLogger(level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewSlogLogger(newLogger(slog.LevelWarn)))
	return engine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

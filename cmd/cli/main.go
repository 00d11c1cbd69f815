package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ev-charge-estimator/internal/config"
	"ev-charge-estimator/internal/estimate"
	"ev-charge-estimator/internal/logger"
	"ev-charge-estimator/internal/window"
)

var (
	logLevel = "warn"
	cfgPath  = ""

	// populated by PersistentPreRunE
	cfg *config.Config
	est = estimate.New(window.SystemClock{})
)

func main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cli",
		Short: "Estimate the energy and charging power needed to reach a target battery level",
		Long: `Estimate the energy and charging power needed to reach a target battery level.

The charging window is either a number of hours (--hours) or a pair of clock times
(--start/--stop). A stop time earlier than the start is taken to be on the next day.
Unreadable values are not errors: the estimate falls back to 0.00 kWh / 0.00 kW.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// stdout carries the estimate, logs go to stderr
			if err := logger.SetupWriter(os.Stderr, logLevel, "console"); err != nil {
				return err
			}
			c, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = c
			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", logLevel, "log level (debug, info, warn, error)")
	globalFlags.StringVar(&cfgPath, "config", cfgPath, "config file path (optional)")

	cmd.AddCommand(
		NewEstimateCommand(),
		NewWindowCommand(),
		NewSweepCommand(),
	)
	return cmd
}

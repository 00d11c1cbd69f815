package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ev-charge-estimator/internal/estimate"
	"ev-charge-estimator/internal/logger"
	"ev-charge-estimator/internal/model"
	"ev-charge-estimator/internal/window"
)

// formFlags binds the estimate inputs as text so that bad values reach the estimator.
func formFlags(cmd *cobra.Command, in *model.FormInput) {
	f := cmd.Flags()
	f.StringVar(&in.CurrentLevel, "current", "", "current battery level (%)")
	f.StringVar(&in.RequiredLevel, "required", "", "required battery level (%)")
	f.StringVar(&in.CapacityKWh, "capacity", "", "battery capacity (kWh); default from config")
	f.StringVar(&in.Hours, "hours", "", "charging time (h); takes precedence over --start/--stop")
	f.StringVar(&in.Start, "start", "", "start time (HH:MM); default now")
	f.StringVar(&in.Stop, "stop", "", "stop time (HH:MM)")
}

func withDefaultCapacity(in model.FormInput) model.FormInput {
	if strings.TrimSpace(in.CapacityKWh) == "" && cfg != nil && cfg.Vehicle.CapacityKWh > 0 {
		in.CapacityKWh = strconv.FormatFloat(cfg.Vehicle.CapacityKWh, 'f', -1, 64)
	}
	return in
}

type estimateOutput struct {
	EnergyToDeliverKWh float64          `json:"energy_to_deliver_kwh" yaml:"energy_to_deliver_kwh"`
	AveragePowerKW     float64          `json:"average_power_kw" yaml:"average_power_kw"`
	DurationHours      float64          `json:"duration_hours" yaml:"duration_hours"`
	DurationAvailable  bool             `json:"duration_available" yaml:"duration_available"`
	Direction          model.Direction  `json:"direction" yaml:"direction"`
	Display            estimate.Display `json:"display" yaml:"display"`
	Warnings           []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func NewEstimateCommand() *cobra.Command {
	var in model.FormInput
	var output string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate energy to deliver and average charging power",
		Example: `  cli estimate --current 10 --required 80 --capacity 42 --hours 6
  cli estimate --current 10 --required 80 --capacity 42 --start 22:00 --stop 06:00
  cli estimate --current 10 --required 80 --capacity 42 --stop 06:00 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, res := est.EstimateForm(withDefaultCapacity(in))
			if res.IsPlaceholder() {
				log := logger.New("cli")
				log.Warn().Msg("incomplete or unreadable input, showing zero result")
			}
			out := estimateOutput{
				EnergyToDeliverKWh: res.EnergyToDeliverKWh,
				AveragePowerKW:     res.AveragePowerKW,
				DurationHours:      res.DurationHours,
				DurationAvailable:  res.DurationAvailable,
				Direction:          res.Direction(),
				Display:            estimate.DisplayOf(res),
			}
			for _, w := range estimate.Check(req, res) {
				out.Warnings = append(out.Warnings, string(w))
			}
			return writeEstimate(cmd.OutOrStdout(), output, out)
		},
	}

	formFlags(cmd, &in)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	return cmd
}

func writeEstimate(w io.Writer, format string, out estimateOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(out)
	case "text":
		fmt.Fprintf(w, "To be charged:  %s\n", out.Display.Energy)
		fmt.Fprintf(w, "Charging speed: %s\n", out.Display.Power)
		fmt.Fprintf(w, "Charging time:  %s\n", out.Display.Duration)
		for _, warn := range out.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warn)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func NewWindowCommand() *cobra.Command {
	var start, stop string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show how many hours a start/stop pair spans",
		Example: `  cli window --start 22:00 --stop 06:00
  cli window --stop 06:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := est.Now()
			req := estimate.ParseForm(model.FormInput{Start: start, Stop: stop}, now)
			hours, ok := window.Resolve(req.Duration, now)
			if !ok {
				return fmt.Errorf("cannot read window start=%q stop=%q", start, stop)
			}
			fmt.Fprintln(cmd.OutOrStdout(), estimate.FormatHours(hours))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM); default now")
	cmd.Flags().StringVar(&stop, "stop", "", "stop time (HH:MM)")
	_ = cmd.MarkFlagRequired("stop")
	return cmd
}

func NewSweepCommand() *cobra.Command {
	var in model.FormInput
	var hoursList []float64
	var outPath string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate the charging power needed over several charging durations (CSV)",
		Example: `  cli sweep --current 10 --required 80 --capacity 42
  cli sweep --current 10 --required 80 --capacity 42 --hours-list 1,2,4,8 --out results/sweep.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(hoursList) == 0 && cfg != nil {
				hoursList = cfg.Estimate.SweepHours
			}
			req := estimate.ParseForm(withDefaultCapacity(in), est.Now())
			rows := estimate.Sweep(req, hoursList)

			if outPath == "" {
				return estimate.WriteSweepCSV(cmd.OutOrStdout(), rows)
			}
			if err := estimate.WriteSweepCSVFile(outPath, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", len(rows), outPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.CurrentLevel, "current", "", "current battery level (%)")
	f.StringVar(&in.RequiredLevel, "required", "", "required battery level (%)")
	f.StringVar(&in.CapacityKWh, "capacity", "", "battery capacity (kWh); default from config")
	f.Float64SliceVar(&hoursList, "hours-list", nil, "charging durations in hours; default from config")
	f.StringVar(&outPath, "out", "", "output CSV path (default stdout)")
	return cmd
}

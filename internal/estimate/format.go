package estimate

import (
	"fmt"

	"ev-charge-estimator/internal/model"
)

func FormatEnergy(kwh float64) string { return fmt.Sprintf("%.2f kWh", kwh) }

func FormatPower(kw float64) string { return fmt.Sprintf("%.2f kW", kw) }

func FormatHours(h float64) string { return fmt.Sprintf("%.2f h", h) }

// Display is a result formatted for a UI label.
type Display struct {
	Energy   string `json:"energy" yaml:"energy"`
	Power    string `json:"power" yaml:"power"`
	Duration string `json:"duration" yaml:"duration"`
}

func DisplayOf(r model.ChargeResult) Display {
	d := Display{
		Energy:   FormatEnergy(r.EnergyToDeliverKWh),
		Power:    FormatPower(r.AveragePowerKW),
		Duration: "n/a",
	}
	if r.DurationAvailable {
		d.Duration = FormatHours(r.DurationHours)
	}
	return d
}

package estimate

import "ev-charge-estimator/internal/model"

// SweepRow is one duration of a sweep.
type SweepRow struct {
	Index int

	Hours float64

	EnergyToDeliverKWh float64
	AveragePowerKW     float64

	Direction model.Direction
}

// Sweep evaluates the levels and capacity of req once per entry in hours, ignoring
// req.Duration. It answers "how fast would I need to charge if I had N hours".
func Sweep(req model.ChargeRequest, hours []float64) []SweepRow {
	rows := make([]SweepRow, 0, len(hours))
	for idx, h := range hours {
		res := Compute(req.CurrentLevelPercent, req.RequiredLevelPercent, req.CapacityKWh, h)
		rows = append(rows, SweepRow{
			Index:              idx,
			Hours:              h,
			EnergyToDeliverKWh: res.EnergyToDeliverKWh,
			AveragePowerKW:     res.AveragePowerKW,
			Direction:          res.Direction(),
		})
	}
	return rows
}

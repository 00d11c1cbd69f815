package model

import "time"

// ChargeRequest is one snapshot of the estimator inputs.
// Units:
// - levels: percent of capacity, expected within [0, 100] but not enforced
// - CapacityKWh: kWh, expected > 0 but not enforced
//
// A NaN field means the value could not be read; the calculator turns that into a
// zero result instead of an error.
type ChargeRequest struct {
	CurrentLevelPercent  float64
	RequiredLevelPercent float64
	CapacityKWh          float64

	// Duration is nil when no charging window is known yet.
	Duration DurationSource
}

// DurationSource says how the charging window was specified.
// Implementations: ExplicitHours, TimeWindow, StopTime.
type DurationSource interface {
	durationSource()
}

// ExplicitHours is a window typed in as a number of hours.
type ExplicitHours struct {
	Hours float64
}

// TimeWindow is a window given as two wall-clock instants. Only the time of day of
// Stop matters: it is placed on Start's date, or the next day if that is not after Start.
type TimeWindow struct {
	Start time.Time
	Stop  time.Time
}

// StopTime is a window that starts "now" (at evaluation time) and ends at Stop.
type StopTime struct {
	Stop time.Time
}

func (ExplicitHours) durationSource() {}
func (TimeWindow) durationSource()    {}
func (StopTime) durationSource()      {}

// ChargeResult is what the estimator reports back for display.
type ChargeResult struct {
	EnergyToDeliverKWh float64
	AveragePowerKW     float64

	// DurationHours is the resolved window length; only meaningful if DurationAvailable.
	DurationHours     float64
	DurationAvailable bool
}

func (r ChargeResult) Direction() Direction {
	return DirectionFromEnergyKWh(r.EnergyToDeliverKWh)
}

// IsPlaceholder reports whether r is the zero result substituted for unusable input.
func (r ChargeResult) IsPlaceholder() bool {
	return r.EnergyToDeliverKWh == 0 && r.AveragePowerKW == 0 && !r.DurationAvailable
}

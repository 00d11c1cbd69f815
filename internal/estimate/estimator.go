package estimate

import (
	"math"
	"time"

	"ev-charge-estimator/internal/model"
	"ev-charge-estimator/internal/window"
)

// Compute applies the charging formula:
//
//	energy = (required - current) / 100 * capacity
//	power  = energy / hours
//
// Any non-finite input, or hours == 0, gives the zero result. A drop in level (required
// below current) or a negative hours value is not rejected; the signs carry through.
func Compute(currentPct, requiredPct, capacityKWh, hours float64) model.ChargeResult {
	if !finite(currentPct) || !finite(requiredPct) || !finite(capacityKWh) || !finite(hours) || hours == 0 {
		return model.ChargeResult{}
	}
	energy := (requiredPct - currentPct) / 100 * capacityKWh
	return model.ChargeResult{
		EnergyToDeliverKWh: energy,
		AveragePowerKW:     energy / hours,
		DurationHours:      hours,
		DurationAvailable:  true,
	}
}

// Calculate resolves req's duration at now and computes the result.
func Calculate(req model.ChargeRequest, now time.Time) model.ChargeResult {
	hours, ok := window.Resolve(req.Duration, now)
	if !ok {
		return model.ChargeResult{}
	}
	return Compute(req.CurrentLevelPercent, req.RequiredLevelPercent, req.CapacityKWh, hours)
}

// Estimator binds a clock to Calculate so that "now" can be controlled.
type Estimator struct {
	clock window.Clock
}

// New returns an Estimator reading time from clock (the system clock if nil).
func New(clock window.Clock) *Estimator {
	if clock == nil {
		clock = window.SystemClock{}
	}
	return &Estimator{clock: clock}
}

func (e *Estimator) Now() time.Time { return e.clock.Now() }

// Estimate evaluates req at the current clock time.
func (e *Estimator) Estimate(req model.ChargeRequest) model.ChargeResult {
	return Calculate(req, e.clock.Now())
}

// EstimateForm parses raw form text and estimates it against a single clock reading.
func (e *Estimator) EstimateForm(in model.FormInput) (model.ChargeRequest, model.ChargeResult) {
	now := e.clock.Now()
	req := ParseForm(in, now)
	return req, Calculate(req, now)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

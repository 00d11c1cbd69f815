package estimate

import (
	"math"

	"ev-charge-estimator/internal/model"
)

// Warning flags an input the formula accepts but that is unlikely to be meant.
// Warnings never change the computed numbers.
type Warning string

const (
	WarnLevelOutOfRange      Warning = "level_out_of_range"
	WarnRequiredBelowCurrent Warning = "required_below_current"
	WarnNonPositiveCapacity  Warning = "non_positive_capacity"
	WarnNegativeDuration     Warning = "negative_duration"
)

// Check lists the warnings for req as resolved into res. NaN fields are skipped; they
// already produce the zero result.
func Check(req model.ChargeRequest, res model.ChargeResult) []Warning {
	var out []Warning
	cur, reqd := req.CurrentLevelPercent, req.RequiredLevelPercent
	if outOfRange(cur) || outOfRange(reqd) {
		out = append(out, WarnLevelOutOfRange)
	}
	if !math.IsNaN(cur) && !math.IsNaN(reqd) && reqd < cur {
		out = append(out, WarnRequiredBelowCurrent)
	}
	if !math.IsNaN(req.CapacityKWh) && req.CapacityKWh <= 0 {
		out = append(out, WarnNonPositiveCapacity)
	}
	if res.DurationAvailable && res.DurationHours < 0 {
		out = append(out, WarnNegativeDuration)
	}
	return out
}

func outOfRange(pct float64) bool {
	return !math.IsNaN(pct) && (pct < 0 || pct > 100)
}

package window

import (
	"math"
	"strconv"
	"strings"
	"time"

	"ev-charge-estimator/internal/model"
)

const millisPerHour = 3_600_000

// Resolve turns a duration source into hours, evaluated at now.
// ok is false when the source carries no usable window (nil, NaN/Inf hours, zero instants).
func Resolve(src model.DurationSource, now time.Time) (hours float64, ok bool) {
	switch s := src.(type) {
	case model.ExplicitHours:
		if math.IsNaN(s.Hours) || math.IsInf(s.Hours, 0) {
			return 0, false
		}
		return s.Hours, true
	case model.TimeWindow:
		if s.Start.IsZero() || s.Stop.IsZero() {
			return 0, false
		}
		return HoursBetween(s.Start, s.Stop), true
	case model.StopTime:
		if s.Stop.IsZero() || now.IsZero() {
			return 0, false
		}
		return HoursBetween(now, s.Stop), true
	default:
		return 0, false
	}
}

// StopInstant places stop's time of day on start's date, moving it to the next day when
// it would not come after start (so stop == start means a full 24h window).
func StopInstant(start, stop time.Time) time.Time {
	stop = stop.In(start.Location())
	y, m, d := start.Date()
	at := time.Date(y, m, d, stop.Hour(), stop.Minute(), stop.Second(), stop.Nanosecond(), start.Location())
	if !at.After(start) {
		at = time.Date(y, m, d+1, stop.Hour(), stop.Minute(), stop.Second(), stop.Nanosecond(), start.Location())
	}
	return at
}

// HoursBetween is the elapsed time from start to StopInstant(start, stop), in hours
// rounded to 2 decimals.
func HoursBetween(start, stop time.Time) float64 {
	ms := StopInstant(start, stop).Sub(start).Milliseconds()
	return Round2(float64(ms) / millisPerHour)
}

// ParseHours reads a manual hours entry. Empty or non-numeric text is unavailable.
func ParseHours(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, false
	}
	return h, true
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

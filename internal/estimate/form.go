package estimate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"ev-charge-estimator/internal/model"
	"ev-charge-estimator/internal/window"
)

// ParseNumber reads a numeric form field; anything unreadable is NaN.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ParseForm builds a ChargeRequest from raw text, placing clock times on now's date.
//
// Duration precedence: a non-blank Hours field, then Start+Stop, then Stop alone
// (start is "now"). Either time may be the literal "now". Unreadable entries leave
// the duration unavailable.
func ParseForm(in model.FormInput, now time.Time) model.ChargeRequest {
	return model.ChargeRequest{
		CurrentLevelPercent:  ParseNumber(in.CurrentLevel),
		RequiredLevelPercent: ParseNumber(in.RequiredLevel),
		CapacityKWh:          ParseNumber(in.CapacityKWh),
		Duration:             parseDuration(in, now),
	}
}

// nowKeyword is what the "Now" buttons put in a time field.
const nowKeyword = "now"

func parseDuration(in model.FormInput, now time.Time) model.DurationSource {
	if strings.TrimSpace(in.Hours) != "" {
		h, ok := window.ParseHours(in.Hours)
		if !ok {
			h = math.NaN()
		}
		return model.ExplicitHours{Hours: h}
	}

	start, stop := strings.TrimSpace(in.Start), strings.TrimSpace(in.Stop)
	if stop == "" {
		return nil
	}
	clock := window.FixedClock{At: now}

	var w model.TimeWindow
	if strings.EqualFold(stop, nowKeyword) {
		w = window.StopNow(w, clock)
	} else {
		tod, err := window.ParseTimeOfDay(stop)
		if err != nil {
			return nil
		}
		w.Stop = tod.On(now)
	}
	if start == "" {
		return model.StopTime{Stop: w.Stop}
	}

	if strings.EqualFold(start, nowKeyword) {
		w = window.StartNow(w, clock)
	} else {
		tod, err := window.ParseTimeOfDay(start)
		if err != nil {
			return nil
		}
		w.Start = tod.On(now)
	}
	return w
}

package window

import (
	"fmt"
	"time"

	"ev-charge-estimator/internal/model"
)

// DefaultStop is where the stop picker starts out.
var DefaultStop = MustParseTimeOfDay("06:00")

// DefaultQuickSelectHours are the "+N h" buttons offered next to the pickers.
var DefaultQuickSelectHours = []float64{1, 2, 4, 8}

// QuickSelect is one "+N h" preset.
type QuickSelect struct {
	Label string
	Hours float64
}

func QuickSelects(hours []float64) []QuickSelect {
	out := make([]QuickSelect, 0, len(hours))
	for _, h := range hours {
		out = append(out, QuickSelect{Label: fmt.Sprintf("+%gh", h), Hours: h})
	}
	return out
}

// Duration converts the preset to a time.Duration.
func (q QuickSelect) Duration() time.Duration {
	return time.Duration(q.Hours * float64(time.Hour))
}

// NewTimeWindow starts a window at now with the stop picker at the next occurrence of stop.
func NewTimeWindow(now time.Time, stop TimeOfDay) model.TimeWindow {
	return model.TimeWindow{Start: now, Stop: stop.Next(now)}
}

// StartNow is the "Now" button on the start picker.
func StartNow(w model.TimeWindow, clock Clock) model.TimeWindow {
	w.Start = clock.Now()
	return w
}

// StopNow is the "Now" button on the stop picker.
func StopNow(w model.TimeWindow, clock Clock) model.TimeWindow {
	w.Stop = clock.Now()
	return w
}

// StopAfter moves the stop to start + d, which is how the quick-select buttons work.
func StopAfter(w model.TimeWindow, d time.Duration) model.TimeWindow {
	w.Stop = w.Start.Add(d)
	return w
}

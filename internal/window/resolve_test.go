package window

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ev-charge-estimator/internal/model"
)

func at(h, m int) time.Time {
	return time.Date(2024, 6, 1, h, m, 0, 0, time.UTC)
}

func TestHoursBetweenSameDay(t *testing.T) {
	assert.Equal(t, 2.0, HoursBetween(at(8, 0), at(10, 0)))
}

func TestHoursBetweenWrapsMidnight(t *testing.T) {
	assert.Equal(t, 8.0, HoursBetween(at(22, 0), at(6, 0)))
}

func TestHoursBetweenEqualIsFullDay(t *testing.T) {
	assert.Equal(t, 24.0, HoursBetween(at(7, 15), at(7, 15)))
}

func TestHoursBetweenRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 0.33, HoursBetween(at(8, 0), at(8, 20)))
	assert.Equal(t, 1.67, HoursBetween(at(8, 0), at(9, 40)))
}

func TestHoursBetweenIgnoresStopDate(t *testing.T) {
	// only the stop's time of day counts
	stop := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 2.0, HoursBetween(at(8, 0), stop))
}

func TestHoursBetweenUsesStartLocation(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	start := time.Date(2024, 6, 1, 22, 0, 0, 0, paris)
	stop := time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC) // 06:00 in CET
	assert.Equal(t, 8.0, HoursBetween(start, stop))
}

func TestResolve(t *testing.T) {
	now := at(23, 0)
	cases := []struct {
		name   string
		src    model.DurationSource
		want   float64
		wantOK bool
	}{
		{"explicit", model.ExplicitHours{Hours: 6}, 6, true},
		{"explicit zero", model.ExplicitHours{Hours: 0}, 0, true},
		{"explicit negative", model.ExplicitHours{Hours: -2}, -2, true},
		{"explicit NaN", model.ExplicitHours{Hours: math.NaN()}, 0, false},
		{"explicit Inf", model.ExplicitHours{Hours: math.Inf(1)}, 0, false},
		{"window", model.TimeWindow{Start: at(8, 0), Stop: at(10, 0)}, 2, true},
		{"window wrap", model.TimeWindow{Start: at(22, 0), Stop: at(6, 0)}, 8, true},
		{"window zero start", model.TimeWindow{Stop: at(6, 0)}, 0, false},
		{"stop only", model.StopTime{Stop: at(6, 0)}, 7, true},
		{"stop only zero", model.StopTime{}, 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Resolve(tc.src, now)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseHours(t *testing.T) {
	h, ok := ParseHours(" 6.5 ")
	assert.True(t, ok)
	assert.Equal(t, 6.5, h)

	for _, in := range []string{"", "   ", "abc", "NaN", "Inf", "6h"} {
		_, ok := ParseHours(in)
		assert.False(t, ok, in)
	}
}

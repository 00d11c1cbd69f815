package estimate

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ev-charge-estimator/internal/model"
	"ev-charge-estimator/internal/window"
)

func TestComputeExample(t *testing.T) {
	res := Compute(10, 80, 42, 6)
	assert.InDelta(t, 29.40, res.EnergyToDeliverKWh, 1e-9)
	assert.InDelta(t, 4.90, res.AveragePowerKW, 1e-9)
	assert.Equal(t, 6.0, res.DurationHours)
	assert.True(t, res.DurationAvailable)
	assert.Equal(t, model.DirectionCharging, res.Direction())
}

func TestComputeFormulaHolds(t *testing.T) {
	cases := []struct{ cur, req, capacity, hours float64 }{
		{0, 100, 75, 10},
		{20, 80, 58, 7.5},
		{55.5, 90.25, 100, 0.33},
		{50, 50, 60, 3},
	}
	for _, tc := range cases {
		res := Compute(tc.cur, tc.req, tc.capacity, tc.hours)
		energy := (tc.req - tc.cur) / 100 * tc.capacity
		assert.InDelta(t, energy, res.EnergyToDeliverKWh, 1e-9)
		assert.InDelta(t, energy/tc.hours, res.AveragePowerKW, 1e-9)
	}
}

func TestComputeUnusableInputIsZero(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name                      string
		cur, req, capacity, hours float64
	}{
		{"capacity NaN", 10, 80, nan, 6},
		{"hours NaN", 10, 80, 42, nan},
		{"hours zero", 10, 80, 42, 0},
		{"current NaN", nan, 80, 42, 6},
		{"required NaN", 10, nan, 42, 6},
		{"capacity Inf", 10, 80, math.Inf(1), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Compute(tc.cur, tc.req, tc.capacity, tc.hours)
			assert.Equal(t, model.ChargeResult{}, res)
			assert.True(t, res.IsPlaceholder())
		})
	}
}

func TestComputeAllowsDrop(t *testing.T) {
	res := Compute(80, 60, 50, 2)
	assert.InDelta(t, -10, res.EnergyToDeliverKWh, 1e-9)
	assert.InDelta(t, -5, res.AveragePowerKW, 1e-9)
	assert.Equal(t, model.DirectionDraining, res.Direction())
}

func TestComputeAllowsNegativeHours(t *testing.T) {
	res := Compute(10, 80, 42, -6)
	assert.InDelta(t, 29.4, res.EnergyToDeliverKWh, 1e-9)
	assert.InDelta(t, -4.9, res.AveragePowerKW, 1e-9)
}

func TestCalculateTimeWindow(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	req := model.ChargeRequest{
		CurrentLevelPercent:  10,
		RequiredLevelPercent: 80,
		CapacityKWh:          42,
		Duration: model.TimeWindow{
			Start: day.Add(22 * time.Hour),
			Stop:  day.Add(6 * time.Hour),
		},
	}
	res := Calculate(req, day)
	assert.Equal(t, 8.0, res.DurationHours)
	assert.InDelta(t, 29.4/8, res.AveragePowerKW, 1e-9)
}

func TestCalculateNoDuration(t *testing.T) {
	req := model.ChargeRequest{CurrentLevelPercent: 10, RequiredLevelPercent: 80, CapacityKWh: 42}
	assert.Equal(t, model.ChargeResult{}, Calculate(req, time.Now()))
}

func TestEstimatorStopOnlyUsesClock(t *testing.T) {
	clock := window.FixedClock{At: time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)}
	e := New(clock)
	req := model.ChargeRequest{
		CurrentLevelPercent:  20,
		RequiredLevelPercent: 90,
		CapacityKWh:          70,
		Duration:             model.StopTime{Stop: time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)},
	}
	res := e.Estimate(req)
	assert.Equal(t, 7.0, res.DurationHours)
	assert.InDelta(t, 49, res.EnergyToDeliverKWh, 1e-9)
	assert.InDelta(t, 7, res.AveragePowerKW, 1e-9)
}

func TestEstimateIsIdempotent(t *testing.T) {
	e := New(window.FixedClock{At: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)})
	in := model.FormInput{CurrentLevel: "15", RequiredLevel: "85", CapacityKWh: "64", Start: "21:00", Stop: "7:00"}
	req1, res1 := e.EstimateForm(in)
	req2, res2 := e.EstimateForm(in)
	assert.Equal(t, req1, req2)
	assert.Equal(t, res1, res2)
	assert.Equal(t, res1, e.Estimate(req1))
}

func TestNewDefaultsToSystemClock(t *testing.T) {
	e := New(nil)
	assert.WithinDuration(t, time.Now(), e.Now(), time.Minute)
}

package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ev-charge-estimator/internal/model"
)

func TestCheckClean(t *testing.T) {
	req := model.ChargeRequest{CurrentLevelPercent: 10, RequiredLevelPercent: 80, CapacityKWh: 42}
	assert.Empty(t, Check(req, Compute(10, 80, 42, 6)))
}

func TestCheckFlags(t *testing.T) {
	req := model.ChargeRequest{CurrentLevelPercent: 90, RequiredLevelPercent: 120, CapacityKWh: 0}
	assert.Equal(t, []Warning{WarnLevelOutOfRange, WarnNonPositiveCapacity}, Check(req, model.ChargeResult{}))

	drop := model.ChargeRequest{CurrentLevelPercent: 80, RequiredLevelPercent: 20, CapacityKWh: 40}
	assert.Equal(t, []Warning{WarnRequiredBelowCurrent, WarnNegativeDuration}, Check(drop, Compute(80, 20, 40, -1)))
}

func TestCheckSkipsUnreadable(t *testing.T) {
	req := model.ChargeRequest{CurrentLevelPercent: math.NaN(), RequiredLevelPercent: 50, CapacityKWh: math.NaN()}
	assert.Empty(t, Check(req, model.ChargeResult{}))
}

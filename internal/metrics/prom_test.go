package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-charge-estimator/internal/model"
)

func TestRecordEstimate(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.RecordEstimate(model.ChargeResult{EnergyToDeliverKWh: 29.4, AveragePowerKW: 4.9, DurationHours: 6, DurationAvailable: true})
	r.RecordEstimate(model.ChargeResult{})
	r.RecordEstimate(model.ChargeResult{})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.estimates.WithLabelValues("CHARGING", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.estimates.WithLabelValues("IDLE", OutcomePlaceholder)))
}

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.RecordRequest("GET", "/health", 200, 3*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.latency))
}

func TestNewRecorderReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewRecorder(reg)
	require.NoError(t, err)
	second, err := NewRecorder(reg)
	require.NoError(t, err)

	first.RecordEstimate(model.ChargeResult{})
	assert.Equal(t, 1.0, testutil.ToFloat64(second.estimates.WithLabelValues("IDLE", OutcomePlaceholder)))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.RecordEstimate(model.ChargeResult{})
		r.RecordRequest("GET", "/", 200, 0)
	})
}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ev-charge-estimator/internal/model"
)

const (
	OutcomeOK          = "ok"
	OutcomePlaceholder = "placeholder"
)

// Recorder exposes estimator and HTTP metrics.
type Recorder struct {
	estimates *prometheus.CounterVec
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg (the default registerer if nil).
// Collectors already registered by an earlier Recorder are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estimates_total",
		Help: "Charge estimates computed, by direction and outcome",
	}, []string{"direction", "outcome"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	var err error
	if estimates, err = register(reg, estimates); err != nil {
		return nil, err
	}
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	return &Recorder{estimates: estimates, requests: requests, latency: latency}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordEstimate counts one result. A nil Recorder is a no-op.
func (r *Recorder) RecordEstimate(res model.ChargeResult) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if res.IsPlaceholder() {
		outcome = OutcomePlaceholder
	}
	r.estimates.WithLabelValues(string(res.Direction()), outcome).Inc()
}

// RecordRequest counts one HTTP request. A nil Recorder is a no-op.
func (r *Recorder) RecordRequest(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

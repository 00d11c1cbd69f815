package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"ev-charge-estimator/internal/model"
)

// NumericInput is a form value sent either as a JSON number or as text.
// It is kept as text so that unreadable values reach the estimator, which turns them
// into the zero result instead of the request failing to decode.
type NumericInput string

func (n *NumericInput) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*n = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericInput(s)
	default:
		*n = NumericInput(raw)
	}
	return nil
}

// EstimateRequest is the body of POST /api/v1/estimate and the query of GET /api/v1/estimate.
type EstimateRequest struct {
	CurrentLevel  NumericInput `json:"current_level" form:"current_level"`
	RequiredLevel NumericInput `json:"required_level" form:"required_level"`
	CapacityKWh   NumericInput `json:"capacity_kwh,omitempty" form:"capacity_kwh"` // default: configured vehicle
	Hours         NumericInput `json:"hours,omitempty" form:"hours"`
	Start         string       `json:"start,omitempty" form:"start"` // "HH:MM"
	Stop          string       `json:"stop,omitempty" form:"stop"`   // "HH:MM"
}

// FormInput converts the request, filling a blank capacity with defaultCapacityKWh when
// one is configured.
func (r EstimateRequest) FormInput(defaultCapacityKWh float64) model.FormInput {
	capacity := string(r.CapacityKWh)
	if strings.TrimSpace(capacity) == "" && defaultCapacityKWh > 0 {
		capacity = strconv.FormatFloat(defaultCapacityKWh, 'f', -1, 64)
	}
	return model.FormInput{
		CurrentLevel:  string(r.CurrentLevel),
		RequiredLevel: string(r.RequiredLevel),
		CapacityKWh:   capacity,
		Hours:         string(r.Hours),
		Start:         r.Start,
		Stop:          r.Stop,
	}
}

// SweepRequest evaluates the estimate body over several durations.
type SweepRequest struct {
	EstimateRequest
	HoursList []float64 `json:"hours_list,omitempty"` // default: estimate.sweep_hours
}

// WindowRequest resolves a start/stop pair; a missing start means now.
type WindowRequest struct {
	Start string `form:"start"`
	Stop  string `form:"stop"`
}

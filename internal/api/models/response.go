package models

import (
	"time"

	"ev-charge-estimator/internal/estimate"
)

// EstimateResponse is one estimate, raw and formatted for display.
type EstimateResponse struct {
	ID                 string           `json:"id,omitempty"`
	EnergyToDeliverKWh float64          `json:"energy_to_deliver_kwh"`
	AveragePowerKW     float64          `json:"average_power_kw"`
	DurationHours      float64          `json:"duration_hours"`
	DurationAvailable  bool             `json:"duration_available"`
	Direction          string           `json:"direction"` // "CHARGING", "IDLE", "DRAINING"
	Display            estimate.Display `json:"display"`
	Warnings           []string         `json:"warnings"`
}

// SweepResponse lists one row per requested duration.
type SweepResponse struct {
	ID   string     `json:"id,omitempty"`
	Rows []SweepRow `json:"rows"`
}

// SweepRow represents one duration in a sweep
type SweepRow struct {
	Index              int     `json:"index"`
	Hours              float64 `json:"hours"`
	EnergyToDeliverKWh float64 `json:"energy_to_deliver_kwh"`
	AveragePowerKW     float64 `json:"average_power_kw"`
	Direction          string  `json:"direction"`
}

// WindowResponse is a resolved start/stop pair.
type WindowResponse struct {
	Start     time.Time `json:"start"`
	Stop      time.Time `json:"stop"`
	Hours     float64   `json:"hours"`
	Available bool      `json:"available"`
}

// DefaultsResponse tells a UI how to initialise its controls.
type DefaultsResponse struct {
	Vehicle          VehicleInfo       `json:"vehicle"`
	DefaultStop      time.Time         `json:"default_stop"`
	DefaultStopClock string            `json:"default_stop_clock"` // "HH:MM"
	QuickSelects     []QuickSelectInfo `json:"quick_selects"`
	SweepHours       []float64         `json:"sweep_hours"`
}

// VehicleInfo is the configured vehicle; CapacityKWh 0 means the client must send one.
type VehicleInfo struct {
	Name        string  `json:"name,omitempty"`
	CapacityKWh float64 `json:"capacity_kwh"`
}

// QuickSelectInfo is a "+N h" button and where it would put the stop time from now.
type QuickSelectInfo struct {
	Label string    `json:"label"`
	Hours float64   `json:"hours"`
	Stop  time.Time `json:"stop"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

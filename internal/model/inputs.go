package model

// FormInput is the raw, user-typed shape of a ChargeRequest.
//
// Every field is text because that is what form controls hand over; turning it into a
// ChargeRequest is the estimate package's job (see estimate.ParseForm).
type FormInput struct {
	CurrentLevel  string `json:"current_level" yaml:"current_level"`
	RequiredLevel string `json:"required_level" yaml:"required_level"`
	CapacityKWh   string `json:"capacity_kwh" yaml:"capacity_kwh"`

	// Hours wins over Start/Stop when it is not blank.
	Hours string `json:"hours,omitempty" yaml:"hours,omitempty"`
	Start string `json:"start,omitempty" yaml:"start,omitempty"` // "HH:MM" or "3:04PM"
	Stop  string `json:"stop,omitempty" yaml:"stop,omitempty"`
}

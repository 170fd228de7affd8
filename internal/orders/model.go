package orders

import (
	"math"
	"regexp"
	"strings"
)

// DetergentType is the customer's detergent preference.
type DetergentType string

const (
	DetergentScented   DetergentType = "Scented"
	DetergentUnscented DetergentType = "Unscented"
)

// Draft represents one in-progress order form submission. It is owned by the
// caller for the lifetime of a single submission and never stored.
type Draft struct {
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	PickupAddress  string        `json:"pickup_address"`
	DropoffAddress string        `json:"dropoff_address"`
	PickupDate     string        `json:"pickup_date"`
	PickupTime     string        `json:"pickup_time"`
	DetergentType  DetergentType `json:"detergent_type"`
	// EstimatedWeightLb is the customer's own estimate in pounds; the final
	// charge is based on actual weight measured after pickup.
	EstimatedWeightLb float64 `json:"estimated_weight_lb"`
	PressingEnabled   bool    `json:"pressing_enabled"`
	PressingItems     int     `json:"pressing_items"`
}

// emailShape is the original form's loose address check: something, an @,
// something, a dot, something. Deliverability is the provider's problem.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate checks the draft field by field in a fixed order and returns the
// first failure as a *ValidationError, or nil when the draft is acceptable.
// It never mutates the draft. The check order (and the messages) match the
// order form, so the user is corrected one field at a time, top to bottom.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your full name."}
	}
	if strings.TrimSpace(d.Email) == "" || !emailShape.MatchString(d.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email."}
	}
	if strings.TrimSpace(d.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "Please enter your phone number."}
	}
	if strings.TrimSpace(d.PickupAddress) == "" {
		return &ValidationError{Field: "pickup_address", Message: "Please enter a pickup address."}
	}
	if strings.TrimSpace(d.DropoffAddress) == "" {
		return &ValidationError{Field: "dropoff_address", Message: "Please enter a drop-off address."}
	}
	if d.PickupDate == "" {
		return &ValidationError{Field: "pickup_date", Message: "Please choose a pickup date."}
	}
	if d.PickupTime == "" {
		return &ValidationError{Field: "pickup_time", Message: "Please choose a pickup time."}
	}
	if math.IsNaN(d.EstimatedWeightLb) || d.EstimatedWeightLb <= 0 {
		return &ValidationError{Field: "estimated_weight_lb", Message: "Please enter a positive estimated weight (in pounds)."}
	}
	if d.PressingEnabled && d.PressingItems < 0 {
		return &ValidationError{Field: "pressing_items", Message: "Pressing items must be 0 or more."}
	}
	return nil
}

// PressingCount returns the effective pressing item count: the stored value
// is meaningless whenever pressing is disabled.
func (d *Draft) PressingCount() int {
	if !d.PressingEnabled {
		return 0
	}
	return d.PressingItems
}

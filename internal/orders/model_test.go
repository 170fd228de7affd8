package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "+15551234567",
		PickupAddress:     "12 Main St",
		DropoffAddress:    "34 Oak Ave",
		PickupDate:        "2026-09-05",
		PickupTime:        "07:30",
		DetergentType:     DetergentUnscented,
		EstimatedWeightLb: 10,
		PressingEnabled:   false,
		PressingItems:     0,
	}
}

func TestValidate_AcceptsCompleteDraft(t *testing.T) {
	d := validDraft()
	assert.NoError(t, d.Validate())
}

func TestValidate_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(d *Draft) { d.Name = "  " },
			field:   "name",
			message: "Please enter your full name.",
		},
		{
			name:    "bad email shape",
			mutate:  func(d *Draft) { d.Email = "not-an-email" },
			field:   "email",
			message: "Please enter a valid email.",
		},
		{
			name:    "missing phone",
			mutate:  func(d *Draft) { d.Phone = "" },
			field:   "phone",
			message: "Please enter your phone number.",
		},
		{
			name:    "missing pickup address",
			mutate:  func(d *Draft) { d.PickupAddress = "" },
			field:   "pickup_address",
			message: "Please enter a pickup address.",
		},
		{
			name:    "missing dropoff address",
			mutate:  func(d *Draft) { d.DropoffAddress = "" },
			field:   "dropoff_address",
			message: "Please enter a drop-off address.",
		},
		{
			name:    "missing pickup date",
			mutate:  func(d *Draft) { d.PickupDate = "" },
			field:   "pickup_date",
			message: "Please choose a pickup date.",
		},
		{
			name:    "missing pickup time",
			mutate:  func(d *Draft) { d.PickupTime = "" },
			field:   "pickup_time",
			message: "Please choose a pickup time.",
		},
		{
			name:    "zero weight",
			mutate:  func(d *Draft) { d.EstimatedWeightLb = 0 },
			field:   "estimated_weight_lb",
			message: "Please enter a positive estimated weight (in pounds).",
		},
		{
			name:    "negative weight",
			mutate:  func(d *Draft) { d.EstimatedWeightLb = -3 },
			field:   "estimated_weight_lb",
			message: "Please enter a positive estimated weight (in pounds).",
		},
		{
			name: "negative pressing items with pressing enabled",
			mutate: func(d *Draft) {
				d.PressingEnabled = true
				d.PressingItems = -1
			},
			field:   "pressing_items",
			message: "Pressing items must be 0 or more.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := d.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Error())
		})
	}
}

func TestValidate_FieldOrderPrecedence(t *testing.T) {
	// Missing pickup time AND zero weight: the pickup-time check fires first.
	d := validDraft()
	d.PickupTime = ""
	d.EstimatedWeightLb = 0

	var verr *ValidationError
	require.ErrorAs(t, d.Validate(), &verr)
	assert.Equal(t, "pickup_time", verr.Field)
}

func TestValidate_NegativePressingIgnoredWhenDisabled(t *testing.T) {
	d := validDraft()
	d.PressingEnabled = false
	d.PressingItems = -5

	assert.NoError(t, d.Validate())
}

func TestValidate_DoesNotMutateDraft(t *testing.T) {
	d := validDraft()
	d.Name = ""
	before := d

	_ = d.Validate()

	assert.Equal(t, before, d)
}

func TestPressingCount(t *testing.T) {
	d := validDraft()
	d.PressingEnabled = true
	d.PressingItems = 4
	assert.Equal(t, 4, d.PressingCount())

	d.PressingEnabled = false
	assert.Equal(t, 0, d.PressingCount(), "stale count is forced to 0 when pressing is disabled")
}

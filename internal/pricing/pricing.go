// Package pricing computes the estimated price breakdown for a laundry
// order. All computations are pure; amounts stay unrounded until they are
// formatted for display.
package pricing

import "fmt"

// Pricing holds the configured unit prices. It is injected by the caller and
// never mutated here.
type Pricing struct {
	PricePerPound   float64
	PressingPerItem float64
}

// Default is the product's standard rate card.
var Default = Pricing{PricePerPound: 1.85, PressingPerItem: 1.25}

// Line is one itemized row of a breakdown.
type Line struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Breakdown is the itemized estimate derived from order input. It always
// carries exactly one weight line; a pressing line appears only when pressing
// is enabled with a positive item count.
type Breakdown struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

// ComputeBreakdown derives the estimate for the given order input. Negative
// weight or item counts are clamped to zero for display purposes; whether the
// input is acceptable for submission is the validator's concern, not this
// function's. The pressing count is ignored entirely when pressing is
// disabled, regardless of any stale stored value.
//
// The total is the exact sum of the line amounts. Rounding to two decimal
// places happens only in FormatUSD, so recomputing or reformatting the same
// input is idempotent.
func ComputeBreakdown(weightLb float64, pressingEnabled bool, pressingItems int, p Pricing) Breakdown {
	weight := weightLb
	if weight < 0 {
		weight = 0
	}
	pressCount := 0
	if pressingEnabled && pressingItems > 0 {
		pressCount = pressingItems
	}

	weightSubtotal := weight * p.PricePerPound
	pressingSubtotal := float64(pressCount) * p.PressingPerItem

	lines := []Line{
		{
			Label:  fmt.Sprintf("Laundry (by weight) — %.1f lb @ %s/lb", weight, FormatUSD(p.PricePerPound)),
			Amount: weightSubtotal,
		},
	}
	if pressCount > 0 {
		lines = append(lines, Line{
			Label:  fmt.Sprintf("Pressing — %d item(s) @ %s/item", pressCount, FormatUSD(p.PressingPerItem)),
			Amount: pressingSubtotal,
		})
	}

	return Breakdown{
		Lines: lines,
		Total: weightSubtotal + pressingSubtotal,
	}
}

// FormatUSD renders an amount as a dollar string with two decimal places.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laundrylady/order-intake/internal/orders"
	"github.com/laundrylady/order-intake/internal/pricing"
	"github.com/laundrylady/order-intake/internal/schedule"
)

// Payload is the flat key/value structure handed to an email template. The
// downstream template can use either the individual fields or the
// pre-rendered pricing_html summary.
type Payload map[string]string

// BuildBusinessPayload flattens a validated draft and its breakdown into the
// payload for the business notification email. Construction is pure: the same
// draft, breakdown and submission ID always produce the same payload.
func BuildBusinessPayload(draft *orders.Draft, breakdown pricing.Breakdown, p pricing.Pricing, submissionID string) Payload {
	return Payload{
		"name":                 draft.Name,
		"email":                draft.Email,
		"phone":                draft.Phone,
		"pickup_address":       draft.PickupAddress,
		"dropoff_address":      draft.DropoffAddress,
		"pickup_date":          draft.PickupDate,
		"pickup_time":          draft.PickupTime,
		"detergent_type":       string(draft.DetergentType),
		"estimated_weight_lbs": fmt.Sprintf("%.1f", draft.EstimatedWeightLb),
		"price_per_lb":         pricing.FormatUSD(p.PricePerPound),
		"pressing_items":       strconv.Itoa(draft.PressingCount()),
		"pressing_price_each":  pricing.FormatUSD(p.PressingPerItem),
		"estimated_total":      pricing.FormatUSD(breakdown.Total),
		"pricing_html":         renderSummaryHTML(draft, breakdown),
		"reply_to":             draft.Email,
		"submission_id":        submissionID,
	}
}

// BuildCustomerPayload is the customer-confirmation variant: a strict
// superset of the business payload adding the customer_email routing key.
func BuildCustomerPayload(draft *orders.Draft, breakdown pricing.Breakdown, p pricing.Pricing, submissionID string) Payload {
	payload := BuildBusinessPayload(draft, breakdown, p, submissionID)
	payload["customer_email"] = draft.Email
	return payload
}

// renderSummaryHTML builds the human-readable order summary embedded in both
// emails: contact info, addresses, pickup date/time, preferences and the
// itemized estimate.
func renderSummaryHTML(draft *orders.Draft, breakdown pricing.Breakdown) string {
	var rows strings.Builder
	for _, line := range breakdown.Lines {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:6px 8px">%s</td><td style="padding:6px 8px;text-align:right">%s</td></tr>`,
			line.Label, pricing.FormatUSD(line.Amount)))
	}

	pressingRow := ""
	if draft.PressingEnabled {
		pressingRow = fmt.Sprintf(`<br/><strong>Pressing Items:</strong> %d`, draft.PressingCount())
	}

	return fmt.Sprintf(`<div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;color:#333">
<h3 style="margin:0 0 10px">Laundry Order — The Laundry Lady</h3>
<p style="margin:0 0 8px">
  <strong>Name:</strong> %s<br/>
  <strong>Email:</strong> %s<br/>
  <strong>Phone:</strong> %s
</p>
<p style="margin:0 0 8px">
  <strong>Pickup:</strong> %s<br/>
  <strong>Drop-off:</strong> %s<br/>
  <strong>When:</strong> %s at %s
</p>
<p style="margin:0 0 8px">
  <strong>Detergent:</strong> %s<br/>
  <strong>Estimated Weight:</strong> %.1f lb%s
</p>
<h4 style="margin:14px 0 6px">Estimated Pricing</h4>
<table style="border-collapse:collapse;width:100%%;max-width:460px">
  <tbody>
    %s
    <tr>
      <td style="padding:8px 8px;border-top:1px solid #ddd"><strong>Estimated Total</strong></td>
      <td style="padding:8px 8px;border-top:1px solid #ddd;text-align:right"><strong>%s</strong></td>
    </tr>
  </tbody>
</table>
<p style="margin:10px 0 0;color:#666">
  Final total is based on actual weight measured after pickup. Pressing is charged per item.
</p>
</div>`,
		draft.Name, draft.Email, draft.Phone,
		draft.PickupAddress, draft.DropoffAddress,
		draft.PickupDate, schedule.To12Hour(draft.PickupTime),
		draft.DetergentType, draft.EstimatedWeightLb, pressingRow,
		rows.String(), pricing.FormatUSD(breakdown.Total))
}

package notify

import (
	"bytes"
	"fmt"
	"text/template"
)

// Default email templates, rendered over the flat Payload. The HTML half of
// each message reuses the payload's pricing_html summary as-is.
const (
	businessSubjectTemplate = "New Laundry Order — {{.name}}"
	businessBodyTemplate    = `A new laundry order has come in!

Name: {{.name}}
Email: {{.email}}
Phone: {{.phone}}

Pickup: {{.pickup_address}}
Drop-off: {{.dropoff_address}}
When: {{.pickup_date}} at {{.pickup_time}}

Detergent: {{.detergent_type}}
Estimated Weight: {{.estimated_weight_lbs}} lb ({{.price_per_lb}}/lb)
Pressing Items: {{.pressing_items}} ({{.pressing_price_each}}/item)
Estimated Total: {{.estimated_total}}

Submission: {{.submission_id}}

— The Laundry Lady`

	customerSubjectTemplate = "Your Laundry Pickup Request — The Laundry Lady"
	customerBodyTemplate    = `Hi {{.name}},

Thanks for your order! We received your pickup request and will see you on
{{.pickup_date}}.

Pickup: {{.pickup_address}}
Drop-off: {{.dropoff_address}}
Detergent: {{.detergent_type}}
Estimated Weight: {{.estimated_weight_lbs}} lb
Estimated Total: {{.estimated_total}}

Your final total is based on actual weight measured after pickup. Pressing is
charged per item.

Reference: {{.submission_id}}

— The Laundry Lady`
)

// Renderer renders small text templates for outbound email.
type Renderer struct{}

// Render compiles the provided template text with strict missing-key
// semantics, so a payload that drops a key a template needs fails loudly
// instead of mailing out a hole.
func (Renderer) Render(name, tmpl string, data any) (string, error) {
	if tmpl == "" {
		return "", fmt.Errorf("notify: template text required")
	}
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("notify: parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("notify: execute %s: %w", name, err)
	}
	return buf.String(), nil
}

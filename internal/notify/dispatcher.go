package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/laundrylady/order-intake/internal/observability/metrics"
	"github.com/laundrylady/order-intake/internal/orders"
	"github.com/laundrylady/order-intake/internal/pricing"
	"github.com/laundrylady/order-intake/pkg/logging"
)

// BusinessRecipient is where the operator-facing notification goes.
type BusinessRecipient struct {
	Email string
	Name  string
}

// Dispatcher sends the two notification emails for a submitted order:
// business notification first, then customer confirmation, strictly in that
// order over the same sender. Dispatch is not transactional; there is no
// rollback when the second send fails after the first succeeded. Either leg
// failing collapses to orders.ErrDispatchFailed, with the failing leg and
// cause logged for the operator.
type Dispatcher struct {
	sender   EmailSender
	business BusinessRecipient
	pricing  pricing.Pricing
	renderer Renderer
	metrics  *metrics.OrderMetrics
	logger   *logging.Logger
}

// NewDispatcher creates a dispatcher over the given sender.
func NewDispatcher(sender EmailSender, business BusinessRecipient, p pricing.Pricing, m *metrics.OrderMetrics, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{
		sender:   sender,
		business: business,
		pricing:  p,
		metrics:  m,
		logger:   logger,
	}
}

// Dispatch builds both payloads for the draft and sends them sequentially.
// Every attempt gets a fresh submission ID that is embedded in both payloads
// and returned even on failure, so a half-delivered submission can be
// reconciled from the logs.
func (d *Dispatcher) Dispatch(ctx context.Context, draft *orders.Draft, breakdown pricing.Breakdown) (string, error) {
	submissionID := uuid.NewString()
	start := time.Now()

	businessPayload := BuildBusinessPayload(draft, breakdown, d.pricing, submissionID)
	customerPayload := BuildCustomerPayload(draft, breakdown, d.pricing, submissionID)

	if err := d.sendLeg(ctx, "business", businessPayload, d.business.Email, d.business.Name,
		businessSubjectTemplate, businessBodyTemplate); err != nil {
		d.metrics.ObserveDispatchLatency("failure", time.Since(start).Seconds())
		return submissionID, orders.ErrDispatchFailed
	}

	if err := d.sendLeg(ctx, "customer", customerPayload, customerPayload["customer_email"], draft.Name,
		customerSubjectTemplate, customerBodyTemplate); err != nil {
		d.logger.Warn("business notified but customer confirmation failed", "submission_id", submissionID)
		d.metrics.ObserveDispatchLatency("failure", time.Since(start).Seconds())
		return submissionID, orders.ErrDispatchFailed
	}

	d.metrics.ObserveDispatchLatency("success", time.Since(start).Seconds())
	d.logger.Info("order notifications dispatched", "submission_id", submissionID)
	return submissionID, nil
}

func (d *Dispatcher) sendLeg(ctx context.Context, leg string, payload Payload, to, toName, subjectTmpl, bodyTmpl string) error {
	subject, err := d.renderer.Render(leg+"_subject", subjectTmpl, payload)
	if err != nil {
		d.metrics.ObserveDispatch(leg, "render_failed")
		d.logger.Error("notification render failed", "leg", leg, "error", err, "submission_id", payload["submission_id"])
		return err
	}
	body, err := d.renderer.Render(leg+"_body", bodyTmpl, payload)
	if err != nil {
		d.metrics.ObserveDispatch(leg, "render_failed")
		d.logger.Error("notification render failed", "leg", leg, "error", err, "submission_id", payload["submission_id"])
		return err
	}

	msg := EmailMessage{
		To:      to,
		ToName:  toName,
		ReplyTo: payload["reply_to"],
		Subject: subject,
		Body:    body,
		HTML:    payload["pricing_html"],
	}
	if err := d.sender.Send(ctx, msg); err != nil {
		d.metrics.ObserveDispatch(leg, "failed")
		d.logger.Error("notification send failed", "leg", leg, "error", err, "to", to, "submission_id", payload["submission_id"])
		return err
	}

	d.metrics.ObserveDispatch(leg, "sent")
	return nil
}

// Ensure interface compliance
var _ orders.Dispatcher = (*Dispatcher)(nil)

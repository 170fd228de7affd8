package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/laundrylady/order-intake/internal/observability/metrics"
	"github.com/laundrylady/order-intake/internal/pricing"
	"github.com/laundrylady/order-intake/internal/schedule"
	"github.com/laundrylady/order-intake/pkg/logging"
)

// Dispatcher sends the business and customer notification emails for a
// validated draft. Implementations return the submission ID attached to the
// attempt and a single collapsed error when any send fails.
type Dispatcher interface {
	Dispatch(ctx context.Context, draft *Draft, breakdown pricing.Breakdown) (submissionID string, err error)
}

// dispatchFailedMessage is the one generic message shown to the user for any
// send failure; the cause stays in the logs.
const dispatchFailedMessage = "We couldn't send your request right now. Please try again shortly."

// submittedMessage mirrors the form's success banner.
const submittedMessage = "Thanks! Your request was submitted. A confirmation email is on its way."

// Handler handles HTTP requests for the order form
type Handler struct {
	dispatcher Dispatcher
	pricing    pricing.Pricing
	window     schedule.Window
	metrics    *metrics.OrderMetrics
	logger     *logging.Logger
}

// NewHandler creates a new orders handler
func NewHandler(dispatcher Dispatcher, p pricing.Pricing, window schedule.Window, m *metrics.OrderMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		dispatcher: dispatcher,
		pricing:    p,
		window:     window,
		metrics:    m,
		logger:     logger,
	}
}

// SubmitResponse is the body returned for an accepted order.
type SubmitResponse struct {
	SubmissionID string            `json:"submission_id"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	Message      string            `json:"message"`
}

// Submit handles POST /orders requests: validate the draft, price it, and
// dispatch the two notification emails. Validation failures never reach the
// dispatcher.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.logger.Error("failed to decode order draft", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := draft.Validate(); err != nil {
		h.metrics.ObserveSubmission(metrics.SubmissionValidationFailed)
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.logger.Info("order draft rejected", "field", verr.Field)
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	breakdown := pricing.ComputeBreakdown(draft.EstimatedWeightLb, draft.PressingEnabled, draft.PressingItems, h.pricing)

	submissionID, err := h.dispatcher.Dispatch(r.Context(), &draft, breakdown)
	if err != nil {
		h.metrics.ObserveSubmission(metrics.SubmissionDispatchFailed)
		h.logger.Error("order dispatch failed", "error", err, "submission_id", submissionID)
		http.Error(w, dispatchFailedMessage, http.StatusBadGateway)
		return
	}

	h.metrics.ObserveSubmission(metrics.SubmissionAccepted)
	h.logger.Info("order submitted", "submission_id", submissionID, "name", draft.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SubmitResponse{
		SubmissionID: submissionID,
		Breakdown:    breakdown,
		Message:      submittedMessage,
	})
}

// Quote handles GET /orders/quote requests: a live estimate for the form's
// pricing panel. Unlike Submit this is the display path, so malformed or
// negative weight is treated as zero rather than rejected.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	weight, err := strconv.ParseFloat(q.Get("weight"), 64)
	if err != nil {
		weight = 0
	}
	pressingEnabled, _ := strconv.ParseBool(q.Get("pressing"))
	items, err := strconv.Atoi(q.Get("items"))
	if err != nil {
		items = 0
	}

	breakdown := pricing.ComputeBreakdown(weight, pressingEnabled, items, h.pricing)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(breakdown)
}

// SlotsResponse is the body returned for the pickup time picker.
type SlotsResponse struct {
	Slots []schedule.Slot `json:"slots"`
}

// Slots handles GET /orders/slots requests.
func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SlotsResponse{Slots: h.window.Slots()})
}

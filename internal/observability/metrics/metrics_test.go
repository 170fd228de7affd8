package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestOrderMetricsObserve(t *testing.T) {
	m := NewOrderMetrics(prometheus.NewRegistry())
	m.ObserveSubmission(SubmissionAccepted)
	m.ObserveDispatch("business", "sent")
	m.ObserveDispatchLatency("success", 0.5)
}

func TestOrderMetricsCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetrics(reg)
	m.ObserveSubmission(SubmissionValidationFailed)
}

func TestOrderMetricsNilSafe(t *testing.T) {
	var m *OrderMetrics
	m.ObserveSubmission(SubmissionAccepted)
	m.ObserveDispatch("customer", "failed")
	m.ObserveDispatchLatency("failure", 0.1)
}

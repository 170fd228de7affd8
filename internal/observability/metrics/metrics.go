package metrics

import "github.com/prometheus/client_golang/prometheus"

// OrderMetrics exposes counters/histograms for the order intake flow.
type OrderMetrics struct {
	submissionsTotal *prometheus.CounterVec
	dispatchTotal    *prometheus.CounterVec
	dispatchLatency  *prometheus.HistogramVec
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	m := &OrderMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "orders",
			Name:      "submissions_total",
			Help:      "Total order form submissions by outcome",
		}, []string{"status"}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laundry",
			Subsystem: "notify",
			Name:      "dispatch_total",
			Help:      "Total notification emails attempted by template and outcome",
		}, []string{"template", "status"}),
		dispatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "laundry",
			Subsystem: "notify",
			Name:      "dispatch_latency_seconds",
			Help:      "Latency of a full two-email dispatch",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.dispatchTotal, m.dispatchLatency)
	return m
}

// Submission outcomes.
const (
	SubmissionAccepted         = "accepted"
	SubmissionValidationFailed = "validation_failed"
	SubmissionDispatchFailed   = "dispatch_failed"
)

func (m *OrderMetrics) ObserveSubmission(status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) ObserveDispatch(template, status string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(template, status).Inc()
}

func (m *OrderMetrics) ObserveDispatchLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.dispatchLatency.WithLabelValues(outcome).Observe(seconds)
}

package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes recorded by the booking endpoint.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Metrics groups the booking collectors.
type Metrics struct {
	Submissions    *prometheus.CounterVec
	AppendDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spa",
			Name:      "booking_submissions_total",
			Help:      "Booking submissions by outcome.",
		}, []string{"outcome"}),
		AppendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "spa",
			Name:      "sheet_append_duration_seconds",
			Help:      "Latency of spreadsheet append calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Submissions, m.AppendDuration)
	return m
}

func (m *Metrics) Observe(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

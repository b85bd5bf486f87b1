// Package metrics provides observability for the reporting workflow.
package metrics

import (
	"time"

	"rrer/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the workflow-level Prometheus collectors. A nil *Metrics is
// valid and records nothing, so callers never need to guard instrumentation.
type Metrics struct {
	// Determination outcomes by verdict and method
	Determinations *prometheus.CounterVec

	// Report lifecycle transitions by from/to status
	ReportTransitions *prometheus.CounterVec

	// Party submissions by role
	PartySubmissions *prometheus.CounterVec

	// Filing outcomes by status and rejection code
	FilingOutcomes *prometheus.CounterVec

	// Filing channel round-trip latency
	SubmitLatency prometheus.Histogram
}

// New creates a new Metrics instance with all workflow metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		Determinations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rrer_determinations_total",
			Help: "Total determination results by verdict and method",
		}, []string{"verdict", "method"}),

		ReportTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rrer_report_transitions_total",
			Help: "Total report lifecycle transitions by source and target status",
		}, []string{"from", "to"}),

		PartySubmissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rrer_party_submissions_total",
			Help: "Total party information submissions by role",
		}, []string{"role"}),

		FilingOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rrer_filing_outcomes_total",
			Help: "Total filing submission outcomes by status and rejection code",
		}, []string{"status", "code"}),

		SubmitLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rrer_filing_submit_duration_seconds",
			Help:    "Duration of filing channel submission round-trips",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// IncrementDetermination records one determination result.
func (m *Metrics) IncrementDetermination(result domain.DeterminationResult) {
	if m != nil {
		m.Determinations.WithLabelValues(string(result.Verdict), string(result.Method)).Inc()
	}
}

// IncrementTransition records one report lifecycle transition.
func (m *Metrics) IncrementTransition(from, to domain.ReportStatus) {
	if m != nil {
		m.ReportTransitions.WithLabelValues(string(from), string(to)).Inc()
	}
}

// IncrementPartySubmission records one party submission.
func (m *Metrics) IncrementPartySubmission(role domain.PartyRole) {
	if m != nil {
		m.PartySubmissions.WithLabelValues(string(role)).Inc()
	}
}

// IncrementFilingOutcome records one filing outcome. Code is empty for
// accepted and needs-review outcomes.
func (m *Metrics) IncrementFilingOutcome(status domain.FilingStatus, code domain.RejectionCode) {
	if m != nil {
		m.FilingOutcomes.WithLabelValues(string(status), string(code)).Inc()
	}
}

// ObserveSubmitLatency records the duration of one channel round-trip.
func (m *Metrics) ObserveSubmitLatency(d time.Duration) {
	if m != nil {
		m.SubmitLatency.Observe(d.Seconds())
	}
}

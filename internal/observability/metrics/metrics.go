package metrics

import "github.com/prometheus/client_golang/prometheus"

// SubmissionMetrics exposes counters/histograms for the lead pipeline.
type SubmissionMetrics struct {
	submissionsTotal *prometheus.CounterVec
	crmLatency       *prometheus.HistogramVec
}

func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	m := &SubmissionMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soi",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total form submissions by form and outcome",
		}, []string{"form", "outcome"}),
		crmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "soi",
			Subsystem: "leads",
			Name:      "crm_request_seconds",
			Help:      "Latency of LeadSquared Lead.Create calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.crmLatency)
	return m
}

func (m *SubmissionMetrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (m *SubmissionMetrics) ObserveCRMLatency(form string, seconds float64) {
	if m == nil {
		return
	}
	m.crmLatency.WithLabelValues(form).Observe(seconds)
}

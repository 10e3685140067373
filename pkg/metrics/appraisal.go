package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lootvalue"

// AppraisalMetrics counts appraisal outcomes and price sync runs.
type AppraisalMetrics struct {
	appraisals *prometheus.CounterVec
	errors     *prometheus.CounterVec
	quotes     *prometheus.GaugeVec
}

func NewAppraisalMetrics(reg prometheus.Registerer) *AppraisalMetrics {
	m := &AppraisalMetrics{
		appraisals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appraisals_total",
			Help:      "Completed appraisals by outcome, preferred channel and override reason.",
		}, []string{"outcome", "channel", "reason"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appraisal_errors_total",
			Help:      "Failed appraisals by error code.",
		}, []string{"code"}),
		quotes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_sync_quotes",
			Help:      "Quotes written to the shared cache by the last price sync.",
		}, []string{"channel"}),
	}

	reg.MustRegister(m.appraisals, m.errors, m.quotes)

	return m
}

func (m *AppraisalMetrics) Appraised(outcome, channel, reason string) {
	m.appraisals.WithLabelValues(outcome, channel, reason).Inc()
}

func (m *AppraisalMetrics) Failed(code string) {
	if code == "" {
		code = "unknown"
	}

	m.errors.WithLabelValues(code).Inc()
}

func (m *AppraisalMetrics) QuotesSynced(channel string, count int) {
	m.quotes.WithLabelValues(channel).Set(float64(count))
}

package digest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds prometheus metrics of digest runs, a nil *Metrics is a no-op
type Metrics struct {
	runsTotal   *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// NewMetrics creates and registers digest metrics with the given registry
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportdigest_digest_runs_total",
			Help: "Digest runs by result",
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sportdigest_digest_run_duration_seconds",
			Help:    "Duration of digest runs",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
	}
	registry.MustRegister(m.runsTotal, m.runDuration)
	return m
}

// Run records a finished run
func (m *Metrics) Run(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(result).Inc()
	m.runDuration.Observe(duration.Seconds())
}

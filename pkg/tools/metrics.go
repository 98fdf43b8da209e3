package tools

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds prometheus metrics of tool dispatching, a nil *Metrics is a no-op
type Metrics struct {
	sourceTotal *prometheus.CounterVec
}

// NewMetrics creates and registers dispatcher metrics with the given registry
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		sourceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportdigest_tool_source_total",
			Help: "Tool source attempts by source and result",
		}, []string{"source", "result"}),
	}
	registry.MustRegister(m.sourceTotal)
	return m
}

// SourceResult counts an attempt of a source
func (m *Metrics) SourceResult(source, result string) {
	if m == nil {
		return
	}
	m.sourceTotal.WithLabelValues(source, result).Inc()
}

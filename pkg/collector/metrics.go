package collector

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the collector's Prometheus instrumentation, labeled per
// chain so one process polling several chains reports them independently.
type Metrics struct {
	BlocksProcessed *prometheus.CounterVec
	SpecChanges     *prometheus.CounterVec
	Errors          *prometheus.CounterVec
	LastBlock       *prometheus.GaugeVec
}

// NewMetrics builds a Metrics registered against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BlocksProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "substrate",
			Subsystem: "collector",
			Name:      "blocks_total",
			Help:      "Blocks processed by the metadata collector, per chain.",
		}, []string{"chain"}),
		SpecChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "substrate",
			Subsystem: "collector",
			Name:      "spec_changes_total",
			Help:      "Runtime spec_version changes observed, per chain.",
		}, []string{"chain"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "substrate",
			Subsystem: "collector",
			Name:      "errors_total",
			Help:      "Errors encountered by the metadata collector, per chain.",
		}, []string{"chain"}),
		LastBlock: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "substrate",
			Subsystem: "collector",
			Name:      "last_block",
			Help:      "Last block number fully processed, per chain.",
		}, []string{"chain"}),
	}
	reg.MustRegister(m.BlocksProcessed, m.SpecChanges, m.Errors, m.LastBlock)
	return m
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors used to monitor the roster admin service.
// Mutations and exports are counted, active sessions are gauged and
// data source queries are timed.
type Metrics struct {
	Mutations          *prometheus.CounterVec
	Exports            *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge
	StoreQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance registered with reg.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Mutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_mutations_total",
			Help: "Total roster mutations by operation and outcome.",
		}, []string{"op", "status"}), // op: 'add', 'edit', 'delete', 'import'
		Exports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_exports_total",
			Help: "Total roster downloads by format.",
		}, []string{"format"}),
		ValidationFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_validation_failures_total",
			Help: "Total records rejected by a validation policy.",
		}, []string{"policy"}),
		ActiveSessions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "roster_active_sessions",
			Help: "Number of browser sessions holding roster view state.",
		}),
		StoreQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_store_query_duration_seconds",
			Help:    "Duration of data source queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}),
	}

	for _, op := range []string{"add", "edit", "delete", "import"} {
		metrics.Mutations.WithLabelValues(op, "success")
		metrics.Mutations.WithLabelValues(op, "failure")
	}

	return metrics
}

// Record counts one mutation outcome.
func (m *Metrics) Record(op string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.Mutations.WithLabelValues(op, status).Inc()
}

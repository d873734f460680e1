package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Dispatch metrics
	EventsDispatched *prometheus.CounterVec
	EventsSuppressed *prometheus.CounterVec
	WorkerRuns       *prometheus.CounterVec
	WorkerErrors     *prometheus.CounterVec
	WorkerDuration   *prometheus.HistogramVec

	// Reconciliation metrics
	TotalsWritten     *prometheus.CounterVec
	TotalsUnchanged   *prometheus.CounterVec
	LinesRebalanced   prometheus.Counter
	ConsistencyChecks *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		// Dispatch metrics
		EventsDispatched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_events_dispatched_total",
				Help: "Total number of events dispatched to workers",
			},
			[]string{"event"},
		),
		EventsSuppressed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_events_suppressed_total",
				Help: "Total number of events dropped by suppression",
			},
			[]string{"event"},
		),
		WorkerRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_worker_runs_total",
				Help: "Total number of completed worker runs",
			},
			[]string{"worker"},
		),
		WorkerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_worker_errors_total",
				Help: "Total number of failed worker runs",
			},
			[]string{"worker"},
		),
		WorkerDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rollup_worker_duration_seconds",
				Help:    "Duration of worker runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"worker"},
		),

		// Reconciliation metrics
		TotalsWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_totals_written_total",
				Help: "Total number of cached aggregates rewritten",
			},
			[]string{"entity"},
		),
		TotalsUnchanged: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_totals_unchanged_total",
				Help: "Total number of recomputations inside the tolerance",
			},
			[]string{"entity"},
		),
		LinesRebalanced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rollup_lines_rebalanced_total",
			Help: "Total number of ledger line running balances patched",
		}),
		ConsistencyChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_consistency_checks_total",
				Help: "Total ledger consistency checks by result",
			},
			[]string{"result"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rollup_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rollup_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "rollup_db_connections",
			Help: "Current number of database connections",
		}),
	}
}

// EventDispatched implements usecase.DispatchMetrics.
func (m *Metrics) EventDispatched(name string) {
	m.EventsDispatched.WithLabelValues(name).Inc()
}

// EventSuppressed implements usecase.DispatchMetrics.
func (m *Metrics) EventSuppressed(name string) {
	m.EventsSuppressed.WithLabelValues(name).Inc()
}

// WorkerCompleted implements usecase.DispatchMetrics.
func (m *Metrics) WorkerCompleted(worker string, elapsed time.Duration) {
	m.WorkerRuns.WithLabelValues(worker).Inc()
	m.WorkerDuration.WithLabelValues(worker).Observe(elapsed.Seconds())
}

// WorkerFailed implements usecase.DispatchMetrics.
func (m *Metrics) WorkerFailed(worker string) {
	m.WorkerErrors.WithLabelValues(worker).Inc()
}

// TotalWritten implements usecase.ReconcileMetrics.
func (m *Metrics) TotalWritten(entity string) {
	m.TotalsWritten.WithLabelValues(entity).Inc()
}

// TotalUnchanged implements usecase.ReconcileMetrics.
func (m *Metrics) TotalUnchanged(entity string) {
	m.TotalsUnchanged.WithLabelValues(entity).Inc()
}

// LineRebalanced implements usecase.ReconcileMetrics.
func (m *Metrics) LineRebalanced() {
	m.LinesRebalanced.Inc()
}

// ConsistencyChecked implements usecase.ReconcileMetrics.
func (m *Metrics) ConsistencyChecked(consistent bool) {
	result := "consistent"
	if !consistent {
		result = "inconsistent"
	}
	m.ConsistencyChecks.WithLabelValues(result).Inc()
}

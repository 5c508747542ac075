// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Fetch metrics, labeled by source name
	SourceFetches      *prometheus.CounterVec
	SourceFailures     *prometheus.CounterVec
	SourceFetchSeconds *prometheus.HistogramVec

	// Pipeline metrics, labeled by outcome (real / demo)
	InsightsComputed *prometheus.CounterVec
	AssemblySeconds  prometheus.Histogram

	// Persistence metrics
	SnapshotsStored      prometheus.Counter
	DailyMetricsArchived prometheus.Counter
}

// NewMetrics creates a Metrics instance registered on its own registry.
// The registry is returned alongside so callers can expose it.
func NewMetrics(namespace string) (*Metrics, *prometheus.Registry) {
	if namespace == "" {
		namespace = "ads_insights_lab"
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		SourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetches_total",
			Help:      "Data-source fetches attempted, by source.",
		}, []string{"source"}),
		SourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Data-source fetches that failed, by source.",
		}, []string{"source"}),
		SourceFetchSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Per-source fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		InsightsComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insights_computed_total",
			Help:      "Insights computations, by outcome (real or demo).",
		}, []string{"outcome"}),
		AssemblySeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assembly_duration_seconds",
			Help:      "End-to-end insights assembly latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		SnapshotsStored: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_stored_total",
			Help:      "Computed insights snapshots persisted.",
		}),
		DailyMetricsArchived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_metrics_archived_total",
			Help:      "Daily time-series rows archived.",
		}),
	}
	return m, reg
}

// Handler returns an HTTP handler exposing the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

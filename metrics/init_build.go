package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBuildMetrics() {
	r.PairsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "pairs_total",
			Help:      "Source/destination pairs evaluated by table builds",
		},
		[]string{"policy", "outcome"}, // installed, no_graph_path, no_acceptable_path, failed
	)

	r.RoutesInstalled = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "routes_installed_total",
			Help:      "Forwarding entries written",
		},
		[]string{"policy"},
	)

	r.BuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of table-construction passes in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"policy"},
	)

	r.BuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      "builds_total",
			Help:      "Table-construction passes by result",
		},
		[]string{"policy", "result"}, // ok, error
	)
}

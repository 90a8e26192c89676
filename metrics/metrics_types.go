// Package metrics exposes Prometheus instruments for table-construction
// passes and evaluation runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "qroute"

// Pair outcome label values.
const (
	OutcomeInstalled    = "installed"
	OutcomeNoGraphPath  = "no_graph_path"
	OutcomeNoAcceptable = "no_acceptable_path"
	OutcomeFailed       = "failed"
)

// Registry holds all metrics for the application
type Registry struct {
	// Build Metrics
	PairsTotal      *prometheus.CounterVec
	RoutesInstalled *prometheus.CounterVec
	BuildDuration   *prometheus.HistogramVec
	BuildsTotal     *prometheus.CounterVec

	// Evaluation Metrics
	EvalMeanFidelity   *prometheus.GaugeVec
	EvalStddevFidelity *prometheus.GaugeVec
	EvalPairs          *prometheus.GaugeVec

	namespace string
	registry  *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
// An empty namespace selects DefaultNamespace.
func NewRegistry(namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	r := &Registry{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
	}

	r.initBuildMetrics()
	r.initEvaluationMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps the current values in the node-exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

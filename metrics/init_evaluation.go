package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEvaluationMetrics() {
	r.EvalMeanFidelity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "evaluation_mean_fidelity",
			Help:      "Mean end-to-end fidelity of the last evaluation (-1 when empty)",
		},
		[]string{"policy", "class"}, // high, low
	)

	r.EvalStddevFidelity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "evaluation_stddev_fidelity",
			Help:      "Population standard deviation of fidelity of the last evaluation (-1 when empty)",
		},
		[]string{"policy", "class"},
	)

	r.EvalPairs = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      "evaluation_pairs",
			Help:      "Pairs scored in the last evaluation",
		},
		[]string{"policy", "class", "routed"}, // routed: true, false
	)
}

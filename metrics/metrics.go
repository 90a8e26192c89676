package metrics

import (
	"strconv"
	"time"
)

// RecordPair counts one pair outcome.
func (r *Registry) RecordPair(policy, outcome string) {
	r.PairsTotal.WithLabelValues(policy, outcome).Inc()
}

// RecordInstalls counts forwarding entries written by a pass.
func (r *Registry) RecordInstalls(policy string, n int) {
	r.RoutesInstalled.WithLabelValues(policy).Add(float64(n))
}

// RecordBuild records a completed pass.
func (r *Registry) RecordBuild(policy string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.BuildsTotal.WithLabelValues(policy, result).Inc()
	r.BuildDuration.WithLabelValues(policy).Observe(d.Seconds())
}

// RecordEvaluation publishes per-class evaluation statistics.
func (r *Registry) RecordEvaluation(policy, class string, mean, stddev float64, routed, unrouted int) {
	r.EvalMeanFidelity.WithLabelValues(policy, class).Set(mean)
	r.EvalStddevFidelity.WithLabelValues(policy, class).Set(stddev)
	r.EvalPairs.WithLabelValues(policy, class, strconv.FormatBool(true)).Set(float64(routed))
	r.EvalPairs.WithLabelValues(policy, class, strconv.FormatBool(false)).Set(float64(unrouted))
}

package evaluate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/table"
)

// Empty is the mean / stddev reported for a class with no samples.
const Empty = -1.0

var (
	// ErrNoRoute indicates a walk hit a node without an entry for the destination.
	ErrNoRoute = errors.New("evaluate: no route")

	// ErrRoutingLoop indicates a walk revisited a node or ran past its hop limit.
	ErrRoutingLoop = errors.New("evaluate: routing loop")
)

// Recorder receives build and evaluation statistics. *metrics.Registry implements it.
type Recorder interface {
	table.Recorder
	RecordEvaluation(policy, class string, mean, stddev float64, routed, unrouted int)
}

// PairResult is the outcome of walking one pair.
type PairResult struct {
	Src, Dst string
	Path     core.Path // nil when unrouted
	Fidelity float64   // 0 when unrouted
	Routed   bool
	Err      error // ErrNoRoute / ErrRoutingLoop when unrouted
}

// ClassStats aggregates one priority class.
type ClassStats struct {
	Class    core.Priority
	Samples  []float64
	Routed   int
	Unrouted int
	Mean     float64
	StdDev   float64
}

// Result is the outcome of one evaluation.
type Result struct {
	Build table.Report
	High  ClassStats
	Low   ClassStats
	Pairs []PairResult
}

// Class returns the stats for p.
func (r *Result) Class(p core.Priority) ClassStats {
	if p == core.PriorityHigh {
		return r.High
	}
	return r.Low
}

// Options configures Evaluate and Score.
type Options struct {
	Sources      []string
	Destinations []string
	Mode         *table.InstallMode
	Workers      int
	Logger       *zap.Logger
	Recorder     Recorder
}

// Option is a functional option.
type Option func(*Options)

// DefaultOptions: all nodes, first-hop install, one worker.
func DefaultOptions() Options {
	return Options{Workers: 1, Logger: zap.NewNop()}
}

// WithSources restricts the scored sources. Tables are still built for every node.
func WithSources(ids ...string) Option {
	return func(o *Options) { o.Sources = append([]string(nil), ids...) }
}

// WithDestinations restricts the evaluated destinations.
func WithDestinations(ids ...string) Option {
	return func(o *Options) { o.Destinations = append([]string(nil), ids...) }
}

// WithInstallMode overrides the install mode used for the build.
// The default writes only the first hop into each source's table.
func WithInstallMode(m table.InstallMode) Option {
	return func(o *Options) { o.Mode = &m }
}

// WithWorkers is passed through to the table builder.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger for the build and the evaluation summary.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder publishes build and evaluation statistics.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

package evaluate

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/fidelity"
	"github.com/katalvlaran/qroute/policy"
	"github.com/katalvlaran/qroute/table"
)

// Evaluate resets and rebuilds tables for pol over g, then scores them.
//
// Every node gets its own entries for the requested destinations, so a walk
// through an intermediate follows that intermediate's choice. Sources only
// restricts which pairs are scored.
//
// The build error, if any, is returned together with a complete Result:
// configuration errors of individual pairs do not stop the scoring.
func Evaluate(ctx context.Context, g *core.Graph, pol *policy.Policy, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mode := table.InstallFirstHop
	if o.Mode != nil {
		mode = *o.Mode
	}

	bopts := []table.Option{
		table.WithInstallMode(mode),
		table.WithWorkers(o.Workers),
		table.WithLogger(o.Logger),
	}
	if o.Destinations != nil {
		bopts = append(bopts, table.WithDestinations(o.Destinations...))
	}
	if o.Recorder != nil {
		bopts = append(bopts, table.WithRecorder(o.Recorder))
	}

	tables := table.NewTables()
	b, err := table.NewBuilder(tables, bopts...)
	if err != nil {
		return nil, err
	}
	rep, buildErr := b.Build(ctx, g, pol)
	if ctx.Err() != nil {
		return nil, buildErr
	}

	res, scoreErr := score(g, tables, o)
	res.Build = rep
	if o.Recorder != nil {
		for _, cs := range []ClassStats{res.High, res.Low} {
			o.Recorder.RecordEvaluation(pol.String(), cs.Class.String(), cs.Mean, cs.StdDev, cs.Routed, cs.Unrouted)
		}
	}
	o.Logger.Info("evaluation complete",
		zap.String("policy", pol.String()),
		zap.Float64("high_mean", res.High.Mean),
		zap.Float64("high_stddev", res.High.StdDev),
		zap.Int("high_unrouted", res.High.Unrouted),
		zap.Float64("low_mean", res.Low.Mean),
		zap.Float64("low_stddev", res.Low.StdDev),
		zap.Int("low_unrouted", res.Low.Unrouted),
	)

	return res, multierr.Append(buildErr, scoreErr)
}

// Score walks already-installed tables without rebuilding them.
func Score(g *core.Graph, lookup table.Lookup, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return score(g, lookup, o)
}

func score(g *core.Graph, lookup table.Lookup, o Options) (*Result, error) {
	sources := o.Sources
	if sources == nil {
		sources = g.Nodes()
	}
	dests := o.Destinations
	if dests == nil {
		dests = g.Nodes()
	}

	res := &Result{High: ClassStats{Class: core.PriorityHigh}, Low: ClassStats{Class: core.PriorityLow}}
	qualityOf := fidelity.FromGraph(g)
	limit := g.NodeCount()

	// Partition destinations by class; unknown IDs cannot be classified.
	var errs error
	var high, low []string
	for _, d := range dests {
		n, err := g.Node(d)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("evaluate: destination %q: %w", d, err))
			continue
		}
		if n.Priority == core.PriorityHigh {
			high = append(high, d)
		} else {
			low = append(low, d)
		}
	}

	for _, src := range sources {
		for _, class := range []struct {
			dests []string
			stats *ClassStats
		}{{high, &res.High}, {low, &res.Low}} {
			for _, dst := range class.dests {
				if dst == src {
					continue
				}
				pr := PairResult{Src: src, Dst: dst}
				path, err := Walk(lookup, src, dst, limit)
				if err == nil {
					f, ferr := fidelity.Fidelity(path, qualityOf)
					if ferr != nil {
						errs = multierr.Append(errs, ferr)
						err = ferr
					} else {
						pr.Path, pr.Fidelity, pr.Routed = path, f, true
					}
				}
				pr.Err = err
				if pr.Routed {
					class.stats.Routed++
				} else {
					class.stats.Unrouted++
				}
				class.stats.Samples = append(class.stats.Samples, pr.Fidelity)
				res.Pairs = append(res.Pairs, pr)
			}
		}
	}

	res.High.Mean, res.High.StdDev = meanStdDev(res.High.Samples)
	res.Low.Mean, res.Low.StdDev = meanStdDev(res.Low.Samples)

	return res, errs
}

// meanStdDev returns the mean and population standard deviation, or Empty
// for both when xs is empty.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return Empty, Empty
	}

	return stat.PopMeanStdDev(xs, nil)
}

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on repeater graphs.
//
// Costs are float64 and may be direction dependent: the cost of stepping
// u→v is supplied by a CostFunc, which defaults to the cost of the link u–v.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/qroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the specified source node does not exist.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a step cost was negative or NaN.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadTolerance indicates a negative or NaN tie tolerance.
	ErrBadTolerance = errors.New("dijkstra: tolerance must be non-negative")

	// ErrNoPath indicates that the destination is unreachable.
	ErrNoPath = errors.New("dijkstra: no path")
)

// DefaultTolerance is the relative tolerance under which two path costs are
// considered equal.
const DefaultTolerance = 1e-9

// CostFunc returns the cost of traversing the link from → to.
// It is only called for adjacent pairs.
type CostFunc func(from, to string) float64

// LinkCost returns a CostFunc that reads the undirected link cost from g.
func LinkCost(g *core.Graph) CostFunc {
	return func(from, to string) float64 {
		l, err := g.Link(from, to)
		if err != nil {
			return -1
		}
		return l.Cost
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source    – starting node ID (must be non-empty and present in the graph).
// Cost      – directed step cost; nil means LinkCost(g).
// Tolerance – relative tie tolerance for equal-cost predecessor sets.
// Ctx       – cancellation; checked once per heap extraction.
type Options struct {
	Source    string
	Cost      CostFunc
	Tolerance float64
	Ctx       context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithCost installs a directed cost function.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node ID.
//
// Defaults:
//   - Cost:      nil (link cost).
//   - Tolerance: DefaultTolerance.
//   - Ctx:       context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:    source,
		Tolerance: DefaultTolerance,
		Ctx:       context.Background(),
	}
}

// Result holds shortest distances and every equal-cost predecessor.
//
// Dist[v] is +Inf for unreachable v. Preds[v] is sorted lexicographically and
// empty for the source and for unreachable nodes.
type Result struct {
	Source string
	Dist   map[string]float64
	Preds  map[string][]string
}

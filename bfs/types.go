// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when the destination is not reachable from the start.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip links by returning false.
	// Called for each step curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// target, when set, ends the search once its layer is complete.
	target string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
// Filters compose: a step is taken only if every registered filter allows it.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn == nil {
			return
		}
		prev := o.FilterNeighbor
		o.FilterNeighbor = func(curr, nbr string) bool {
			return prev(curr, nbr) && fn(curr, nbr)
		}
	}
}

// WithoutNodes forbids the search from entering any of the given nodes.
// The start node is always allowed.
func WithoutNodes(ids ...string) Option {
	banned := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		banned[id] = struct{}{}
	}

	return WithFilterNeighbor(func(_, nbr string) bool {
		_, skip := banned[nbr]
		return !skip
	})
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in hops) from the start.
//   - Parents: map from node ID to every predecessor lying on some shortest
//     path from the start, sorted lexicographically.
type BFSResult struct {
	Start   string
	Order   []string
	Depth   map[string]int
	Parents map[string][]string
}

// Reached reports whether id was discovered by the traversal.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the lexicographically smallest shortest path from
// the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest string) (core.Path, error) {
	paths := r.enumerate(dest, 1)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	return paths[0], nil
}

// PathsTo returns every shortest path from the start node to dest, in
// lexicographic order of node sequence.
func (r *BFSResult) PathsTo(dest string) ([]core.Path, error) {
	paths := r.enumerate(dest, 0)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	return paths, nil
}

// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, shortest-path predecessor sets, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/qroute/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:   startID,
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parents: make(map[string][]string, n),
		},
	}

	w.res.Depth[startID] = 0
	w.queue = append(w.queue, queueItem{id: startID})
	if err := w.loop(); err != nil {
		return w.res, err
	}
	for _, ps := range w.res.Parents {
		sort.Strings(ps)
	}

	return w.res, nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		// Once the target layer is fully discovered nothing deeper matters.
		if w.opts.target != "" {
			if td, ok := w.res.Depth[w.opts.target]; ok && item.depth >= td {
				continue
			}
		}

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand records item as a predecessor of every allowed neighbor one layer
// deeper and enqueues the neighbors seen for the first time.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		d, seen := w.res.Depth[nbr]
		switch {
		case !seen:
			w.res.Depth[nbr] = next
			w.res.Parents[nbr] = []string{item.id}
			w.queue = append(w.queue, queueItem{id: nbr, depth: next})
		case d == next:
			w.res.Parents[nbr] = append(w.res.Parents[nbr], item.id)
		}
	}

	return nil
}

// enumerate walks the shortest-path DAG from Start to dest in lexicographic
// order and returns up to limit paths (0 = all).
func (r *BFSResult) enumerate(dest string, limit int) []core.Path {
	if !r.Reached(dest) {
		return nil
	}
	if dest == r.Start {
		return []core.Path{{dest}}
	}

	// Restrict the DAG to nodes that lead to dest.
	children := make(map[string][]string)
	onDAG := map[string]bool{dest: true}
	stack := []string{dest}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range r.Parents[v] {
			children[u] = append(children[u], v)
			if !onDAG[u] {
				onDAG[u] = true
				stack = append(stack, u)
			}
		}
	}
	for _, cs := range children {
		sort.Strings(cs)
	}

	var out []core.Path
	cur := core.Path{r.Start}
	var dfs func(u string) bool
	dfs = func(u string) bool {
		if u == dest {
			out = append(out, cur.Clone())
			return limit > 0 && len(out) >= limit
		}
		for _, v := range children[u] {
			cur = append(cur, v)
			stop := dfs(v)
			cur = cur[:len(cur)-1]
			if stop {
				return true
			}
		}
		return false
	}
	dfs(r.Start)

	return out
}

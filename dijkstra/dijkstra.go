// Package dijkstra implements Dijkstra's shortest-path algorithm on repeater graphs.
//
// Notes on implementation choices:
//
//   - Costs come from a CostFunc evaluated lazily per step; a negative or NaN
//     step cost aborts with ErrNegativeWeight.
//   - Two tentative distances within the relative tolerance are equal, and
//     the second predecessor is recorded alongside the first.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qroute/core"
)

// Dijkstra computes shortest distances from Options.Source to all other nodes
// of g, recording every predecessor that achieves the minimum.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrNodeNotFound).
//  4. Tolerance must be >= 0 (ErrBadTolerance).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, ErrNodeNotFound
	}
	if math.IsNaN(cfg.Tolerance) || cfg.Tolerance < 0 {
		return nil, ErrBadTolerance
	}
	if cfg.Cost == nil {
		cfg.Cost = LinkCost(g)
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]float64, len(nodes)),
			Preds:  make(map[string][]string, len(nodes)),
		},
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	r.init(nodes)
	if err := r.process(); err != nil {
		return nil, err
	}
	for _, ps := range r.res.Preds {
		sort.Strings(ps)
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited map[string]bool
	pq      nodePQ
}

// init sets dist=+Inf everywhere, dist[Source]=0, and seeds the heap.
func (r *runner) init(nodes []string) {
	for _, v := range nodes {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinished node and relaxes its steps.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every step u→v and either improves dist[v], or, when the
// candidate ties dist[v] within tolerance, adds u to v's predecessor set.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		w := r.options.Cost(u, v)
		if math.IsNaN(w) || w < 0 {
			return fmt.Errorf("%w: step %s→%s cost=%g", ErrNegativeWeight, u, v, w)
		}
		if math.IsInf(w, 1) {
			continue
		}

		cand := du + w
		dv := r.res.Dist[v]
		switch {
		case r.equal(cand, dv):
			r.res.Preds[v] = append(r.res.Preds[v], u)
		case cand < dv:
			r.res.Dist[v] = cand
			r.res.Preds[v] = []string{u}
			heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
		}
	}

	return nil
}

// equal compares two costs under the configured relative tolerance.
func (r *runner) equal(a, b float64) bool {
	if math.IsInf(b, 1) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= r.options.Tolerance*scale
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then ID for stable pops.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

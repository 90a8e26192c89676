// File: methods_links.go
// Role: Link lifecycle and query APIs (AddLink, HasLink, Link, Links, LinkCount).
// Determinism:
//   - Link IDs are "l1", "l2", ... in insertion order.
//   - Links() sorts by numeric ID suffix, i.e. insertion order.
// Concurrency:
//   - AddLink takes muNode read + muLinkAdj write; readers take read locks.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// AddLink inserts an undirected link between a and b with the given cost.
//
// Implementation:
//   - Stage 1: Validate IDs, reject a == b (ErrLoopNotAllowed).
//   - Stage 2: Validate cost is finite and >= 0 (ErrBadCost).
//   - Stage 3: Both endpoints must already exist (ErrNodeNotFound).
//   - Stage 4: Reject a second link between the pair (ErrDuplicateLink).
//   - Stage 5: Allocate the ID and mirror adjacency in both directions.
//
// Returns the new link ID.
// Complexity: O(1)
func (g *Graph) AddLink(a, b string, cost float64) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyNodeID
	}
	if a == b {
		return "", ErrLoopNotAllowed
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return "", ErrBadCost
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muLinkAdj.Lock()
	defer g.muLinkAdj.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return "", ErrNodeNotFound
	}
	if _, ok := g.nodes[b]; !ok {
		return "", ErrNodeNotFound
	}
	if _, ok := g.adjacency[a][b]; ok {
		return "", ErrDuplicateLink
	}

	if b < a {
		a, b = b, a
	}
	id := "l" + strconv.FormatUint(atomic.AddUint64(&g.nextLinkID, 1), 10)
	g.links[id] = &Link{ID: id, A: a, B: b, Cost: cost}
	g.adjacency[a][b] = id
	g.adjacency[b][a] = id

	return id, nil
}

// HasLink reports whether a and b are joined by a link (in either order).
func (g *Graph) HasLink(a, b string) bool {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Link returns a copy of the link joining a and b.
//
// Errors:
//   - ErrLinkNotFound if the pair is not adjacent.
func (g *Graph) Link(a, b string) (*Link, error) {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()
	id, ok := g.adjacency[a][b]
	if !ok {
		return nil, ErrLinkNotFound
	}
	cp := *g.links[id]

	return &cp, nil
}

// Links returns copies of all links ordered by insertion.
// Complexity: O(E log E)
func (g *Graph) Links() []*Link {
	g.muLinkAdj.RLock()
	out := make([]*Link, 0, len(g.links))
	for _, l := range g.links {
		cp := *l
		out = append(out, &cp)
	}
	g.muLinkAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return linkSeq(out[i].ID) < linkSeq(out[j].ID)
	})

	return out
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	return len(g.links)
}

// linkSeq parses the numeric suffix of an "lN" ID.
func linkSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}

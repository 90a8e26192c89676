// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Degree).
// Determinism:
//   - NeighborIDs() returns IDs sorted lex asc.
// Concurrency:
//   - Read locks in the order muNode -> muLinkAdj.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if the node is absent.
//
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of links incident to id, or 0 if absent.
func (g *Graph) Degree(id string) int {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	return len(g.adjacency[id])
}

// File: methods_clone.go
// Role: Snapshotting graph instances.
// Determinism:
//   - Clone carries over nextLinkID so future AddLink calls on the clone
//     continue the same textual sequence.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: nodes, links and adjacency.
// The source graph is never mutated.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.nextLinkID, atomic.LoadUint64(&g.nextLinkID))
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for id, l := range g.links {
		cp := *l
		clone.links[id] = &cp
		clone.adjacency[l.A][l.B] = id
		clone.adjacency[l.B][l.A] = id
	}

	return clone
}

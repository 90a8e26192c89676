// File: methods_nodes.go
// Role: Node lifecycle and query APIs (AddNode, HasNode, Node, Nodes, NodeCount).
// Determinism:
//   - Nodes() returns IDs sorted lex asc.
// Concurrency:
//   - Mutators take muNode then muLinkAdj write locks; readers take read locks.

package core

import (
	"math"
	"sort"
)

// AddNode registers n in the graph.
//
// Implementation:
//   - Stage 1: Validate n.ID is non-empty (ErrEmptyNodeID).
//   - Stage 2: Validate Efficiency and RawFidelity are in [0,1] (ErrBadQuality).
//   - Stage 3: Reject duplicate IDs (ErrDuplicateNode).
//   - Stage 4: Store a private copy and initialize its adjacency bucket.
//
// Complexity: O(1)
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if !inUnit(n.Efficiency) || !inUnit(n.RawFidelity) {
		return ErrBadQuality
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muLinkAdj.Lock()
	defer g.muLinkAdj.Unlock()

	if _, ok := g.nodes[n.ID]; ok {
		return ErrDuplicateNode
	}
	cp := n
	g.nodes[n.ID] = &cp
	g.adjacency[n.ID] = make(map[string]string)

	return nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	_, ok := g.nodes[id]
	g.muNode.RUnlock()

	return ok
}

// Node returns a copy of the node with the given id.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if the node is absent.
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns all node IDs sorted lexicographically.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

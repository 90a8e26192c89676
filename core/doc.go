// Package core provides the thread-safe, in-memory repeater graph that every
// path-selection package in qroute reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected links only; a link u–v is traversable both ways.
//   - No self-loops and no parallel links (the topology builder collapses
//     micro-hops into a single link before they reach the graph).
//   - Float64, non-negative link costs (physical distance or derived cost).
//   - Each Node carries the quality attributes consumed by the fidelity model
//     (Efficiency, RawFidelity) and an explicit Priority class.
//   - Separate sync.RWMutex for nodes (muNode) and links+adjacency (muLinkAdj)
//     so concurrent readers never contend with each other.
//
// Determinism:
//
//	Nodes(), Links() and NeighborIDs() all return sorted results, so every
//	algorithm layered on top (bfs, dijkstra, ksp, policy) produces the same
//	enumeration order for the same snapshot.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error              // O(1)
//	HasNode(id string) bool            // O(1)
//	Node(id string) (Node, error)      // O(1)
//
//	// Link lifecycle
//	AddLink(a, b string, cost float64) (linkID string, err error) // O(1)
//	HasLink(a, b string) bool          // O(1)
//	Link(a, b string) (*Link, error)   // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Nodes() []string                         // O(V·log V), sorted
//	Links() []*Link                          // O(E·log E), sorted by ID
//	NodeCount(), LinkCount()                 // O(1)
//
//	// Snapshots
//	Clone() *Graph                           // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyNodeID       – zero-length node ID
//	ErrNodeNotFound      – missing node
//	ErrLinkNotFound      – missing link
//	ErrDuplicateNode     – node ID already registered
//	ErrDuplicateLink     – link between the pair already present
//	ErrLoopNotAllowed    – link from a node to itself
//	ErrBadCost           – negative, NaN or infinite cost
//	ErrBadQuality        – efficiency / raw fidelity outside [0,1]
package core

// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, predecessor sets, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (hops) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (hops) from start
//   - Parents: map from node → every predecessor on some shortest path
//   - Allows filtering of individual steps via WithFilterNeighbor / WithoutNodes.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Path helpers
//
//   - AllShortestPaths(g, s, d): every minimum-hop path, lexicographic order.
//   - ShortestPath(g, s, d):     the first of those, without enumerating the rest.
//   - HopDistance(g, s, d):      the minimum hop count.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and predecessor sets are sorted, so the
//	visit sequence and the path enumeration order are fully reproducible.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E) for the search
//   - Memory: O(V + E) (Parents may hold one entry per link)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors          if core.NeighborIDs fails for any node.
//   - ErrNoPath             if the destination cannot be reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

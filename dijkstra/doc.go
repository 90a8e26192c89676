// Package dijkstra provides Dijkstra's shortest-path algorithm on repeater
// graphs with non-negative, possibly direction-dependent, float64 step costs.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances from a single source to every
//     reachable node in O((V + E) log V) time.
//   - Every predecessor achieving the minimum (within a relative tolerance,
//     1e-9 by default) is kept, so all equal-cost paths can be enumerated.
//   - AllShortestPaths / ShortestPath enumerate those paths in lexicographic
//     order of node sequence.
//
// Directed costs:
//
//	The graph is undirected, but WithCost lets the caller price the step u→v
//	differently from v→u (e.g. by the quality of the node being entered).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source node does not exist in the graph.
//	– ErrNegativeWeight  if any step cost is negative or NaN.
//	– ErrBadTolerance    if the tie tolerance is negative.
//	– ErrNoPath          if the destination is unreachable.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist["B"], res.Preds["B"])
package dijkstra

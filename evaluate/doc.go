// Package evaluate scores installed forwarding tables.
//
// Walk follows next hops from a source until the destination is reached, a
// hop is missing, or the walk revisits a node. Score walks every (source,
// destination) pair, computes the fidelity of the walked path and reports
// per-priority-class mean and population standard deviation. Evaluate does
// a fresh table build first and then scores it.
//
// A pair without a complete route is scored 0 and counted as unrouted. The
// statistics of an empty class are the sentinel -1.
package evaluate

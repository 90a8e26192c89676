// Package topology turns an external network snapshot into a core.Graph.
//
// Only routers become graph nodes. A channel between two routers becomes a
// link weighted by its distance; channels through a relay (a non-router
// middle node such as a Bell-state measurement station) are collapsed, so a
// relay with exactly two router legs yields one link whose cost is the sum
// of both legs. When several channels map onto the same router pair the
// cheaper cost wins.
//
// Routers without efficiency or raw fidelity are never given defaults: they
// are left out of the graph, listed in Result.Skipped, and reported as
// ErrMissingNodeAttributes. Build always returns the graph it could build,
// together with every problem it found aggregated into one error.
//
// Snapshot is a serialisable Source. LoadFile and Decode read it from YAML
// (or JSON, which YAML accepts) and validate it before use:
//
//	nodes:
//	  - {name: s1, type: QuantumRouter, efficiency: 0.9, raw_fidelity: 0.95}
//	  - {name: d1, type: QuantumRouter, efficiency: 0.9, raw_fidelity: 0.95, priority: high}
//	  - {name: bsm1, type: BSMNode}
//	channels:
//	  - {from: s1, to: bsm1, distance: 500}
//	  - {from: d1, to: bsm1, distance: 500}
package topology

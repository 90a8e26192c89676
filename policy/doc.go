// Package policy selects, for one (source, destination) pair, the path whose
// first hop is installed in the source's forwarding table.
//
// Six variants share one Policy type and differ only in how candidates are
// enumerated and which acceptable candidate wins:
//
//	Kind            Candidates                          Winner
//	shortest        all minimum-hop paths               first acceptable
//	efficiency      all minimum-cost paths (directed)   first acceptable
//	kshortest       first K simple paths by hops        minimum passing fidelity
//	kxshortest      as kshortest, hops <= minLen + X    minimum passing fidelity
//	kshortest-qos   as kshortest                        High: minimum, Low: maximum
//	kxshortest-qos  as kxshortest                       High: minimum, Low: maximum
//
// Candidates are enumerated in lexicographic node order within a length class.
// A candidate is acceptable when fidelity.Accept(f, threshold) holds.
//
// Symmetry
//
//	The hop-count variants are symmetric: a path found for (a, b) reversed is
//	a path for (b, a). A Bound selector exploits this by enumerating once for
//	the lexicographically smaller endpoint. The efficiency variant prices the
//	node being entered, so it is directional and always enumerates per
//	direction.
//
// Outcomes
//
//	ErrNoGraphPath and ErrNoAcceptablePath mean "no route" and are expected;
//	ErrMissingNodeAttributes is a configuration error and must be surfaced.
package policy

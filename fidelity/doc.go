// Package fidelity models the end-to-end entanglement fidelity of a path
// through a chain of quantum repeaters.
//
// A freshly generated pair starts at InitialFidelity (0.975). Every
// intermediate node v, taken in path order from the source side, applies
//
//	f = (f - 0.25) * ((4·e(v)² - 1) / 3) * ((4·F(v) - 1) / 3) + 0.25
//
// where e is the node's memory efficiency and F its raw fidelity. The two
// endpoints are the requesting parties and never degrade the pair, so a
// direct two-node path always yields exactly InitialFidelity.
//
// A route is acceptable when its fidelity is strictly greater than the
// threshold (DefaultThreshold = 0.53); see Accept.
package fidelity

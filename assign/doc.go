// Package assign draws node qualities for a topology snapshot before the
// graph is built.
//
// Three efficiency distributions are provided:
//
//	Bimodal(xi)       0.999 with probability xi, otherwise 0.8
//	LogUniform(alpha) ln(U(e^(0.8α), e^(0.999α))) / α, which skews toward 0.999 for α > 0
//	Constant(v)       v for every router
//
// Apply walks the routers of a snapshot in file order and draws one value
// per router from a seeded math/rand stream, so the same seed always yields
// the same assignment. Raw fidelity is only written when WithRawFidelity is
// given; a router missing one is still rejected by topology.Build.
package assign

// Package table holds per-node forwarding tables and the builder that fills
// them from a policy.
//
// A ForwardingTable maps destination → next hop for one owner node. Tables
// are written through the Port interface (ClearRoutes, SetRoute) so the
// builder never reaches into whatever object owns the real table; Tables is
// the in-memory Port used by the evaluation harness and the CLI.
//
// Build pass
//
//	Builder.Build selects a route for every (source, destination) pair,
//	optionally on several workers, and only then resets every table and
//	installs the accepted next hops. A cancelled or failed selection phase
//	leaves the tables untouched, so no partially built pass is observable.
//
//	"No route" outcomes (policy.ErrNoGraphPath, policy.ErrNoAcceptablePath)
//	simply leave no entry. Any other per-pair error is counted as Failed,
//	logged, and returned aggregated once the pass has been committed.
package table

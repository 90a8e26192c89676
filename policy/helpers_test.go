package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/core"
)

const (
	good = "good"
	bad  = "bad"
)

// qualities used to steer fidelity in fixtures.
var grades = map[string]core.Node{
	good: {Efficiency: 0.999, RawFidelity: 0.999},
	bad:  {Efficiency: 0.8, RawFidelity: 0.5}, // one hop drops a fresh pair to ≈0.376
}

type fixture struct {
	t *testing.T
	g *core.Graph
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, g: core.NewGraph()}
}

func (f *fixture) node(id, grade string) *fixture {
	f.t.Helper()
	n := grades[grade]
	n.ID = id
	require.NoError(f.t, f.g.AddNode(n))
	return f
}

func (f *fixture) raw(n core.Node) *fixture {
	f.t.Helper()
	require.NoError(f.t, f.g.AddNode(n))
	return f
}

// chain links the given IDs in sequence with unit cost.
func (f *fixture) chain(ids ...string) *fixture {
	f.t.Helper()
	for i := 0; i+1 < len(ids); i++ {
		_, err := f.g.AddLink(ids[i], ids[i+1], 1)
		require.NoError(f.t, err)
	}
	return f
}

// fiveBranches builds S and D joined by five disjoint branches of 1..5
// repeaters. Only the third branch (three good repeaters) is acceptable.
func fiveBranches(t *testing.T) *core.Graph {
	f := newFixture(t).node("S", good).node("D", good)
	f.node("a1", bad).chain("S", "a1", "D")
	f.node("b1", bad).node("b2", good).chain("S", "b1", "b2", "D")
	f.node("c1", good).node("c2", good).node("c3", good).chain("S", "c1", "c2", "c3", "D")
	f.node("d1", bad).node("d2", good).node("d3", good).node("d4", good).chain("S", "d1", "d2", "d3", "d4", "D")
	f.node("e1", bad).node("e2", good).node("e3", good).node("e4", good).node("e5", good).
		chain("S", "e1", "e2", "e3", "e4", "e5", "D")

	return f.g
}

package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/dijkstra"
)

type link struct {
	a, b string
	cost float64
}

func build(t *testing.T, links ...link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range links {
		for _, id := range []string{l.a, l.b} {
			if !g.HasNode(id) {
				require.NoError(t, g.AddNode(core.Node{ID: id, Efficiency: 0.9, RawFidelity: 0.975}))
			}
		}
		_, err := g.AddLink(l.a, l.b, l.cost)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := build(t, link{"A", "B", 1})
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTolerance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadTolerance)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithCost(func(_, _ string) float64 { return -2 }))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithCost(func(_, _ string) float64 { return math.NaN() }))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_Triangle(t *testing.T) {
	g := build(t, link{"A", "B", 1}, link{"B", "C", 2}, link{"A", "C", 5})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["A"])
	assert.Equal(t, 1.0, res.Dist["B"])
	assert.Equal(t, 3.0, res.Dist["C"])
	assert.Equal(t, []string{"B"}, res.Preds["C"])
	assert.Empty(t, res.Preds["A"])
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := build(t, link{"A", "B", 1})
	require.NoError(t, g.AddNode(core.Node{ID: "Z"}))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist["Z"], 1))

	_, err = dijkstra.AllShortestPaths(g, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestAllShortestPaths_EqualCostTies(t *testing.T) {
	// 0.1+0.2 differs from 0.3 in the last bits; the tolerance treats them as equal.
	g := build(t,
		link{"S", "A", 0.1}, link{"A", "D", 0.2},
		link{"S", "B", 0.3}, link{"B", "D", 0},
		link{"S", "C", 0.2}, link{"C", "D", 0.2},
	)

	paths, err := dijkstra.AllShortestPaths(g, "S", "D")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, core.Path{"S", "A", "D"}, paths[0])
	assert.Equal(t, core.Path{"S", "B", "D"}, paths[1])

	strict, err := dijkstra.AllShortestPaths(g, "S", "D", dijkstra.WithTolerance(0))
	require.NoError(t, err)
	assert.Len(t, strict, 1)
}

func TestShortestPath_DirectedCost(t *testing.T) {
	// Entering X is expensive, entering Y cheap; the reverse direction prices
	// the endpoints instead.
	g := build(t, link{"S", "X", 1}, link{"X", "D", 1}, link{"S", "Y", 1}, link{"Y", "D", 1})
	enter := map[string]float64{"S": 1, "X": 10, "Y": 2, "D": 1}
	cost := func(_, to string) float64 { return enter[to] }

	p, err := dijkstra.ShortestPath(g, "S", "D", dijkstra.WithCost(cost))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S", "Y", "D"}, p)

	enter["Y"] = 10
	paths, err := dijkstra.AllShortestPaths(g, "S", "D", dijkstra.WithCost(cost))
	require.NoError(t, err)
	assert.Equal(t, []core.Path{{"S", "X", "D"}, {"S", "Y", "D"}}, paths)
}

func TestDijkstra_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, link{"A", "B", 1})
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

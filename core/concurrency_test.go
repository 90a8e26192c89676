package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/core"
)

// TestGraph_ConcurrentReaders runs neighbour queries while links are added.
// Intended to be run under -race.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	const n = 64
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: fmt.Sprintf("n%02d", i), Efficiency: 0.9, RawFidelity: 0.975}))
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i < n; i++ {
			_, _ = g.AddLink("n00", fmt.Sprintf("n%02d", i), 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_, _ = g.NeighborIDs("n00")
			_ = g.Links()
			_ = g.Clone()
		}
	}()
	wg.Wait()

	nbs, err := g.NeighborIDs("n00")
	require.NoError(t, err)
	require.Len(t, nbs, n-1)
}

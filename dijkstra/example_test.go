package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/qroute/core"
	"github.com/katalvlaran/qroute/dijkstra"
)

// ExampleAllShortestPaths shows two equal-cost routes found side by side.
func ExampleAllShortestPaths() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(core.Node{ID: id, Efficiency: 0.9, RawFidelity: 0.975})
	}
	_, _ = g.AddLink("A", "B", 2)
	_, _ = g.AddLink("B", "D", 3)
	_, _ = g.AddLink("A", "C", 4)
	_, _ = g.AddLink("C", "D", 1)
	_, _ = g.AddLink("A", "D", 9)

	paths, _ := dijkstra.AllShortestPaths(g, "A", "D")
	fmt.Println(paths)
	// Output: [[A B D] [A C D]]
}

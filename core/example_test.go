package core_test

import (
	"fmt"

	"github.com/katalvlaran/qroute/core"
)

// ExampleGraph builds a three-node chain and lists the neighbours of the middle node.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode(core.Node{ID: "S", Efficiency: 0.95, RawFidelity: 0.975})
	_ = g.AddNode(core.Node{ID: "M", Efficiency: 0.95, RawFidelity: 0.975})
	_ = g.AddNode(core.Node{ID: "D", Efficiency: 0.95, RawFidelity: 0.975, Priority: core.PriorityHigh})
	_, _ = g.AddLink("S", "M", 10)
	_, _ = g.AddLink("M", "D", 12)

	nbs, _ := g.NeighborIDs("M")
	fmt.Println(nbs, g.LinkCount())
	// Output: [D S] 2
}

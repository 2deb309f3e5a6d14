package core_test

import (
	"fmt"

	"github.com/routegraph/routegraph/core"
)

// ExampleGraph builds a small delivery network and walks its adjacency.
func ExampleGraph() {
	g := core.NewGraph[int]()
	_, _ = g.AddVertex("HQ")
	_, _ = g.AddVertex("North")
	_, _ = g.AddVertex("South")

	_ = g.AddEdge("HQ", "North", 12)
	_ = g.AddEdge("HQ", "South", 7)
	_ = g.AddEdge("South", "North", 3)

	hq, _ := g.FindByName("HQ")
	for _, a := range g.Neighbors(hq) {
		fmt.Printf("HQ -> %s (%d)\n", g.Name(a.To), a.Weight)
	}
	fmt.Println("arcs:", g.EdgeCount())
	// Output:
	// HQ -> North (12)
	// HQ -> South (7)
	// arcs: 3
}

// Package dijkstra_test provides runnable examples for the dijkstra package.
package dijkstra_test

import (
	"fmt"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/dijkstra"
)

// ExampleShortestPaths computes distances on a small directed network and
// prints the report rows in distance order.
func ExampleShortestPaths() {
	g := core.NewGraph[float64]()
	for _, n := range []string{"A", "B", "C", "D"} {
		_, _ = g.AddVertex(n)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 2)
	_ = g.AddEdge("B", "D", 1)

	res, err := dijkstra.ShortestPaths(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Entries() {
		fmt.Printf("%s %v %v %s\n", e.Name, e.Distance, e.Path, e.Label)
	}
	// Output:
	// A 0 [] 0[0]
	// C 1 [A] 1[A]
	// B 3 [A C] 3[C]
	// D 4 [A C B] 4[B]
}

// ExampleWithStrategy shows the heap-based selection producing the same tree.
func ExampleWithStrategy() {
	g := core.NewGraph[int]()
	for _, n := range []string{"S", "X", "Y"} {
		_, _ = g.AddVertex(n)
	}
	_ = g.AddEdge("S", "X", 3)
	_ = g.AddEdge("S", "Y", 7)
	_ = g.AddEdge("X", "Y", 2)

	res, _ := dijkstra.ShortestPaths(g, "S", dijkstra.WithStrategy(dijkstra.BinaryHeap))
	path, _ := res.Path("Y")
	fmt.Println(res.Dist, path)
	// Output: [0 3 5] [S X]
}

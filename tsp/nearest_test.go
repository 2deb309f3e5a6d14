package tsp_test

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/tsp"
)

// buildGraph adds the named vertices in order and then the given arcs.
func buildGraph[W core.Weight](t *testing.T, names []string, arcs map[[2]string]W) *core.Graph[W] {
	t.Helper()
	g := core.NewGraph[W]()
	for _, n := range names {
		_, err := g.AddVertex(n)
		require.NoError(t, err)
	}
	for k, w := range arcs {
		require.NoError(t, g.AddEdge(k[0], k[1], w))
	}

	return g
}

// completeGraph returns a complete directed graph with random weights 1..20.
func completeGraph(t *testing.T, seed int64, n int) *core.Graph[int] {
	t.Helper()
	gofakeit.Seed(seed)
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("C%02d", i))
		require.NoError(t, err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				require.NoError(t, g.AddEdgeIndex(u, v, gofakeit.Number(1, 20)))
			}
		}
	}

	return g
}

func TestNearestNeighbor_Validation(t *testing.T) {
	_, err := tsp.NearestNeighbor[int](nil, "A")
	require.ErrorIs(t, err, tsp.ErrNilGraph)

	g := buildGraph(t, []string{"A"}, map[[2]string]int{})
	_, err = tsp.NearestNeighbor(g, "Z")
	require.ErrorIs(t, err, tsp.ErrSourceNotFound)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = tsp.NearestNeighborFrom(g, 3)
	require.ErrorIs(t, err, tsp.ErrSourceNotFound)
}

func TestNearestNeighbor_Square(t *testing.T) {
	// Ring A→B→C→D→A of weight 1, diagonals of weight 5.
	g := buildGraph(t, []string{"A", "B", "C", "D"}, map[[2]string]int{
		{"A", "B"}: 1, {"B", "C"}: 1, {"C", "D"}: 1, {"D", "A"}: 1,
		{"A", "C"}: 5, {"B", "D"}: 5, {"C", "A"}: 5, {"D", "B"}: 5,
	})

	tour, err := tsp.NearestNeighbor(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "A"}, tour.Names)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour.Order)
	assert.Equal(t, 4, tour.Total)
	assert.Equal(t, 4, tour.Len())
}

func TestNearestNeighbor_TieUsesAdjacencyOrder(t *testing.T) {
	g := core.NewGraph[float64]()
	for _, n := range []string{"S", "P", "Q"} {
		_, _ = g.AddVertex(n)
	}
	// Q is inserted before P in S's adjacency; equal weights keep the first.
	require.NoError(t, g.AddEdge("S", "Q", 2))
	require.NoError(t, g.AddEdge("S", "P", 2))
	require.NoError(t, g.AddEdge("Q", "P", 1))
	require.NoError(t, g.AddEdge("P", "S", 3))

	tour, err := tsp.NearestNeighbor(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Q", "P", "S"}, tour.Names)
	assert.Equal(t, 6.0, tour.Total)
}

func TestNearestNeighbor_Stuck(t *testing.T) {
	// A→B, B has nowhere new to go although C is still unvisited.
	g := buildGraph(t, []string{"A", "B", "C"}, map[[2]string]int{
		{"A", "B"}: 1, {"B", "A"}: 1, {"C", "A"}: 1,
	})

	_, err := tsp.NearestNeighbor(g, "A")
	require.ErrorIs(t, err, tsp.ErrNoUnvisitedNeighbor)
}

func TestNearestNeighbor_NoReturnEdge(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, map[[2]string]int{
		{"A", "B"}: 1, {"B", "C"}: 1,
	})

	_, err := tsp.NearestNeighbor(g, "A")
	require.ErrorIs(t, err, tsp.ErrNoReturnEdge)
}

func TestNearestNeighbor_SingleVertex(t *testing.T) {
	g := buildGraph(t, []string{"Solo"}, map[[2]string]int{})

	tour, err := tsp.NearestNeighbor(g, "Solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Solo", "Solo"}, tour.Names)
	assert.Zero(t, tour.Total)
	require.NoError(t, tsp.ValidateTour(tour.Order, 1, 0))
}

func TestNearestNeighbor_Overflow(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, map[[2]string]int8{
		{"A", "B"}: 100, {"B", "A"}: 100,
	})

	_, err := tsp.NearestNeighbor(g, "A")
	require.ErrorIs(t, err, tsp.ErrWeightOverflow)
}

func TestNearestNeighbor_VisitsEveryVertexOnce(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		n := 2 + int(seed)%9
		g := completeGraph(t, seed, n)
		start := int(seed) % n

		tour, err := tsp.NearestNeighborFrom(g, start)
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, tsp.ValidateTour(tour.Order, n, start), "seed %d", seed)

		cost, err := tsp.TourCost(g, tour.Order)
		require.NoError(t, err)
		require.Equal(t, cost, tour.Total, "seed %d", seed)
	}
}

func TestNearestNeighbor_DoesNotMutateGraph(t *testing.T) {
	g := completeGraph(t, 7, 6)
	before := g.Clone()

	_, err := tsp.NearestNeighbor(g, "C00")
	require.NoError(t, err)
	for v := 0; v < g.Len(); v++ {
		require.Equal(t, before.Neighbors(v), g.Neighbors(v))
	}
}

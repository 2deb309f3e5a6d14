package tsp

import (
	"errors"

	"github.com/routegraph/routegraph/core"
)

// Sentinel errors returned by the tour heuristic and its helpers.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrSourceNotFound indicates that the start vertex is not in the graph.
	ErrSourceNotFound = core.ErrSourceNotFound

	// ErrNoUnvisitedNeighbor indicates that the greedy walk is stuck: the current
	// vertex has no arc to a vertex outside the tour.
	ErrNoUnvisitedNeighbor = errors.New("tsp: no unvisited neighbor")

	// ErrNoReturnEdge indicates that the last visited vertex has no arc back to
	// the start.
	ErrNoReturnEdge = errors.New("tsp: no return edge to start")

	// ErrWeightOverflow indicates that the total tour weight exceeds the range of
	// the integer weight type.
	ErrWeightOverflow = errors.New("tsp: total weight overflows weight type")

	// ErrInvalidTour indicates a tour that is not a closed Hamiltonian cycle.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrMissingArc indicates a tour step with no corresponding arc in the graph.
	ErrMissingArc = errors.New("tsp: tour uses a missing arc")
)

// Tour is a closed cycle produced by a tour heuristic.
//
// Order holds vertex indices, Order[0] == Order[len(Order)-1] == start, and
// every vertex of the graph appears exactly once in Order[:len(Order)-1].
// Names mirrors Order with vertex names. Total is the sum of consecutive arc
// weights, closing arc included.
type Tour[W core.Weight] struct {
	Order []int
	Names []string
	Total W
}

// Len returns the number of distinct vertices in the tour.
func (t Tour[W]) Len() int {
	if len(t.Order) == 0 {
		return 0
	}

	return len(t.Order) - 1
}

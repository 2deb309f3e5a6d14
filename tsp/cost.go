package tsp

import (
	"fmt"

	"github.com/routegraph/routegraph/core"
)

// TourCost sums the weights of the arcs tour[i] -> tour[i+1].
//
// Returns ErrNilGraph, ErrInvalidTour for fewer than two entries,
// ErrMissingArc when a step has no arc, or ErrWeightOverflow.
//
// Complexity: O(n) for a tour of length n+1.
func TourCost[W core.Weight](g *core.Graph[W], tour []int) (W, error) {
	var sum W
	if g == nil {
		return sum, ErrNilGraph
	}
	if len(tour) < 2 {
		return sum, fmt.Errorf("%w: length %d", ErrInvalidTour, len(tour))
	}

	var ok bool
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u == v && len(tour) == 2 {
			// Trivial single-vertex tour.
			continue
		}
		w, has := g.Weight(u, v)
		if !has {
			return sum, fmt.Errorf("%w: %d -> %d", ErrMissingArc, u, v)
		}
		if sum, ok = core.AddWeights(sum, w); !ok {
			return sum, ErrWeightOverflow
		}
	}

	return sum, nil
}

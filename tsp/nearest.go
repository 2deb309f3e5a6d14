package tsp

import (
	"fmt"

	"github.com/routegraph/routegraph/core"
)

// NearestNeighbor builds a tour over every vertex of g, starting and ending at
// the named start vertex.
//
// Steps:
//  1. visited = {start}, tour = [start], total = 0.
//  2. While the tour is missing vertices: pick the cheapest arc from the current
//     vertex to an unvisited one (first in adjacency order on ties), append its
//     target, add its weight and advance. No candidate: ErrNoUnvisitedNeighbor.
//  3. Close the cycle with the arc back to start. No arc: ErrNoReturnEdge.
//
// Step 2 runs while len(tour) < |V|, not |V|-1: the walk adds every vertex
// before closing, so the tour is Hamiltonian. Stopping at |V|-1 would leave
// one vertex out and close the cycle from the wrong vertex.
//
// A single-vertex graph yields the trivial tour [start, start] with total 0.
//
// Complexity: O(V + E) time, O(V) space.
func NearestNeighbor[W core.Weight](g *core.Graph[W], start string) (Tour[W], error) {
	if g == nil {
		return Tour[W]{}, ErrNilGraph
	}
	src, err := g.FindByName(start)
	if err != nil {
		return Tour[W]{}, fmt.Errorf("%w: %q", ErrSourceNotFound, start)
	}

	return NearestNeighborFrom(g, src)
}

// NearestNeighborFrom is NearestNeighbor addressed by vertex index.
func NearestNeighborFrom[W core.Weight](g *core.Graph[W], start int) (Tour[W], error) {
	if g == nil {
		return Tour[W]{}, ErrNilGraph
	}
	names := g.Names()
	n := len(names)
	if start < 0 || start >= n {
		return Tour[W]{}, fmt.Errorf("%w: index %d", ErrSourceNotFound, start)
	}

	var (
		visited = make([]bool, n)
		order   = make([]int, 1, n+1)
		total   W
		cur     = start
		ok      bool
	)
	order[0] = start
	visited[start] = true

	for len(order) < n {
		next, w, found := cheapestUnvisited(g.Neighbors(cur), visited)
		if !found {
			return Tour[W]{}, fmt.Errorf("%w: stuck at %q after %d of %d vertices",
				ErrNoUnvisitedNeighbor, names[cur], len(order), n)
		}
		if total, ok = core.AddWeights(total, w); !ok {
			return Tour[W]{}, ErrWeightOverflow
		}
		order = append(order, next)
		visited[next] = true
		cur = next
	}

	if n > 1 {
		w, has := g.Weight(cur, start)
		if !has {
			return Tour[W]{}, fmt.Errorf("%w: %q -> %q", ErrNoReturnEdge, names[cur], names[start])
		}
		if total, ok = core.AddWeights(total, w); !ok {
			return Tour[W]{}, ErrWeightOverflow
		}
	}
	order = append(order, start)

	tourNames := make([]string, len(order))
	for i, v := range order {
		tourNames[i] = names[v]
	}

	return Tour[W]{Order: order, Names: tourNames, Total: total}, nil
}

// cheapestUnvisited returns the first minimum-weight arc whose target is not
// visited. Arcs to vertices added after the run started are ignored.
func cheapestUnvisited[W core.Weight](arcs []core.Arc[W], visited []bool) (int, W, bool) {
	var (
		best  = -1
		bestW W
	)
	for _, a := range arcs {
		if a.To >= len(visited) || visited[a.To] {
			continue
		}
		if best < 0 || core.LessWeight(a.Weight, bestW) {
			best, bestW = a.To, a.Weight
		}
	}

	return best, bestW, best >= 0
}

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Destination is one (destination name, weight) pair of an adjacency entry.
type Destination[W Weight] struct {
	To     string
	Weight W
}

// AdjacencyEntry describes one named vertex and its outgoing arcs.
// Location is optional; a nil Location leaves the vertex un-geocoded.
type AdjacencyEntry[W Weight] struct {
	Name     string
	Location *orb.Point
	Edges    []Destination[W]
}

// FromAdjacency builds a Graph from an ordered list of named vertices, each with
// its list of (destination name, weight) pairs.
//
// Stage 1 declares every vertex in list order (indices follow the list).
// Stage 2 records arcs in list order, so adjacency order is deterministic.
// Destinations must name declared vertices; the first failure is returned with
// the offending entry as context.
//
// Complexity: O(V+E).
func FromAdjacency[W Weight](entries []AdjacencyEntry[W]) (*Graph[W], error) {
	g := NewGraph[W]()

	for _, e := range entries {
		var opts []VertexOption
		if e.Location != nil {
			opts = append(opts, WithPoint(*e.Location))
		}
		if _, err := g.AddVertex(e.Name, opts...); err != nil {
			return nil, err
		}
	}

	for _, e := range entries {
		for _, d := range e.Edges {
			if err := g.AddEdge(e.Name, d.To, d.Weight); err != nil {
				return nil, fmt.Errorf("core: adjacency of %q: %w", e.Name, err)
			}
		}
	}

	return g, nil
}

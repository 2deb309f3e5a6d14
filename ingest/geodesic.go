package ingest

import (
	"github.com/paulmach/orb/geo"

	"github.com/routegraph/routegraph/core"
)

// Geodesic builds a complete directed graph over locs whose arc weights are
// great-circle distances in metres. Coincident points get no arc between them,
// matching the "zero means no edge" rule of the matrix form.
//
// Complexity: O(n²).
func Geodesic(locs []Location) (*core.Graph[float64], error) {
	g, err := VertexGraph[float64](locs)
	if err != nil {
		return nil, err
	}
	for i, a := range locs {
		for j, b := range locs {
			if i == j {
				continue
			}
			d := geo.Distance(a.Point, b.Point)
			if d <= 0 {
				continue
			}
			if err := g.AddEdgeIndex(i, j, d); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

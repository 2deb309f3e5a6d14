package matrix

import (
	"fmt"
	"math"

	"github.com/routegraph/routegraph/core"
)

// IsEdge reports whether a cell value denotes an arc: positive and finite.
func IsEdge(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// ToGraph builds a directed graph from a square weight matrix. names[i] labels
// row and column i. Cells that are zero, negative, NaN or ±Inf mean "no arc";
// the diagonal is ignored. Vertices are added in names order and each row's
// arcs in column order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNameCount, or the core error for an
// empty or duplicate name.
//
// Complexity: O(n²).
func ToGraph(names []string, m *Dense) (*core.Graph[float64], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.r, m.c)
	}
	if len(names) != m.r {
		return nil, fmt.Errorf("%w: %d names for order %d", ErrNameCount, len(names), m.r)
	}

	g := core.NewGraph[float64]()
	for _, name := range names {
		if _, err := g.AddVertex(name); err != nil {
			return nil, err
		}
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := m.data[i*n+j]
			if i == j || !IsEdge(w) {
				continue
			}
			if err := g.AddEdgeIndex(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// FromGraph writes g as a square weight matrix with absent arcs set to 0,
// and returns the vertex names in row order.
//
// Complexity: O(V² + E).
func FromGraph[W core.Weight](g *core.Graph[W]) ([]string, *Dense, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	names := g.Names()
	m, err := NewDense(len(names), len(names))
	if err != nil {
		return nil, nil, err
	}
	n := len(names)
	for u := 0; u < n; u++ {
		for _, a := range g.Neighbors(u) {
			if a.To < n {
				m.data[u*n+a.To] = float64(a.Weight)
			}
		}
	}

	return names, m, nil
}

// File: graph.go
// Role: vertex and arc lifecycle, lookups and iteration.
//
// Determinism:
//   - Vertices(), Names() and Neighbors() follow insertion order.
//
// Concurrency:
//   - Writers take mu exclusively, readers share it. Returned slices are copies.
package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// AddVertex appends a new vertex and returns its index.
//
// Duplicate names are a caller error: the graph is left unchanged and
// ErrDuplicateVertex is returned together with the index of the existing vertex.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddVertex(name string, opts ...VertexOption) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if i, ok := g.byName[name]; ok {
		return i, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	v := Vertex{Index: len(g.vertices), Name: name}
	for _, opt := range opts {
		opt(&v)
	}

	g.vertices = append(g.vertices, v)
	g.adj = append(g.adj, nil)
	g.arcPos = append(g.arcPos, nil)
	g.byName[name] = v.Index

	return v.Index, nil
}

// FindByName returns the index of the named vertex or ErrNotFound.
// Complexity: O(1).
func (g *Graph[W]) FindByName(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.byName[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return i, nil
}

// HasVertex reports whether a vertex with the given name exists.
func (g *Graph[W]) HasVertex(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.byName[name]

	return ok
}

// Vertex returns a copy of the vertex at index i.
func (g *Graph[W]) Vertex(i int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}

	return g.vertices[i], nil
}

// SetLocation geocodes the named vertex. Topology is not affected.
func (g *Graph[W]) SetLocation(name string, p orb.Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	g.vertices[i].Location = p
	g.vertices[i].Geocoded = true

	return nil
}

// Name returns the name of the vertex at index i, or "" when i is out of range.
func (g *Graph[W]) Name(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.vertices) {
		return ""
	}

	return g.vertices[i].Name
}

// Vertices returns a copy of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[W]) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Names returns all vertex names in insertion order.
// Complexity: O(V).
func (g *Graph[W]) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].Name
	}

	return out
}

// Len returns the number of vertices.
func (g *Graph[W]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of arcs.
func (g *Graph[W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// AddEdge records the arc from→to with weight w, looking both endpoints up by name.
// See AddEdgeIndex for the validation rules.
func (g *Graph[W]) AddEdge(from, to string, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.byName[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, from)
	}
	v, ok := g.byName[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, to)
	}

	return g.addArc(u, v, w)
}

// AddEdgeIndex records the arc from→to with weight w.
//
// Rules:
//   - both indices must exist (ErrNotFound),
//   - from != to (ErrSelfLoop),
//   - w must be non-negative, not NaN and finite (ErrInvalidWeight).
//
// Calling it twice for the same pair overwrites the weight; the arc keeps its
// original position in the adjacency order.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdgeIndex(from, to int, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from < 0 || from >= len(g.vertices) {
		return fmt.Errorf("%w: index %d", ErrNotFound, from)
	}
	if to < 0 || to >= len(g.vertices) {
		return fmt.Errorf("%w: index %d", ErrNotFound, to)
	}

	return g.addArc(from, to, w)
}

// addArc assumes mu is held for writing and indices are valid.
func (g *Graph[W]) addArc(u, v int, w W) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, g.vertices[u].Name)
	}
	if !ValidWeight(w) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrInvalidWeight, g.vertices[u].Name, g.vertices[v].Name, w)
	}

	if pos, ok := g.arcPos[u][v]; ok {
		g.adj[u][pos].Weight = w
		return nil
	}
	if g.arcPos[u] == nil {
		g.arcPos[u] = make(map[int]int)
	}
	g.arcPos[u][v] = len(g.adj[u])
	g.adj[u] = append(g.adj[u], Arc[W]{To: v, Weight: w})
	g.edges++

	return nil
}

// Neighbors returns a copy of the outgoing arcs of vertex i in insertion order.
// An out-of-range index yields nil.
// Complexity: O(deg(i)).
func (g *Graph[W]) Neighbors(i int) []Arc[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.adj) || len(g.adj[i]) == 0 {
		return nil
	}
	out := make([]Arc[W], len(g.adj[i]))
	copy(out, g.adj[i])

	return out
}

// Weight returns the weight of the arc from→to and whether it exists.
// Complexity: O(1).
func (g *Graph[W]) Weight(from, to int) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.arcPos) {
		var zero W
		return zero, false
	}
	pos, ok := g.arcPos[from][to]
	if !ok {
		var zero W
		return zero, false
	}

	return g.adj[from][pos].Weight, true
}

// Clone returns a deep copy of the graph.
// Complexity: O(V+E).
func (g *Graph[W]) Clone() *Graph[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[W]()
	clone.vertices = make([]Vertex, len(g.vertices))
	copy(clone.vertices, g.vertices)
	clone.adj = make([][]Arc[W], len(g.adj))
	clone.arcPos = make([]map[int]int, len(g.arcPos))
	for i := range g.vertices {
		clone.byName[g.vertices[i].Name] = i
		if len(g.adj[i]) == 0 {
			continue
		}
		clone.adj[i] = append([]Arc[W](nil), g.adj[i]...)
		clone.arcPos[i] = make(map[int]int, len(g.arcPos[i]))
		for to, pos := range g.arcPos[i] {
			clone.arcPos[i][to] = pos
		}
	}
	clone.edges = g.edges

	return clone
}

// Subgraph returns a new graph holding only the given vertices (in the given
// order) and the arcs between them. Indices are renumbered 0..len(indices)-1.
//
// Complexity: O(V+E).
func (g *Graph[W]) Subgraph(indices []int) (*Graph[W], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	remap := make(map[int]int, len(indices))
	sub := NewGraph[W]()
	for _, i := range indices {
		if i < 0 || i >= len(g.vertices) {
			return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
		}
		if _, dup := remap[i]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, g.vertices[i].Name)
		}
		v := g.vertices[i]
		v.Index = len(sub.vertices)
		remap[i] = v.Index
		sub.vertices = append(sub.vertices, v)
		sub.adj = append(sub.adj, nil)
		sub.arcPos = append(sub.arcPos, nil)
		sub.byName[v.Name] = v.Index
	}

	for _, i := range indices {
		for _, a := range g.adj[i] {
			to, ok := remap[a.To]
			if !ok {
				continue
			}
			// Source arcs are already validated.
			_ = sub.addArc(remap[i], to, a.Weight)
		}
	}

	return sub, nil
}

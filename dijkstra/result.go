package dijkstra

import (
	"fmt"
	"sort"

	"github.com/routegraph/routegraph/core"
)

// Result is the state table of one shortest-path run, keyed by vertex index.
//
// Dist[v] is the shortest distance from Source to v, or core.Infinity when v is
// unreachable. Prev[v] is the predecessor of v on that path, -1 for the source
// and for unreachable vertices. Order lists vertices in the order they were
// settled.
type Result[W core.Weight] struct {
	Source int
	Dist   []W
	Prev   []int
	Order  []int

	names []string
	graph *core.Graph[W]
}

// Entry is one report row for a vertex.
type Entry[W core.Weight] struct {
	Index     int
	Name      string
	Distance  W
	Reachable bool
	Path      []string // source .. predecessor, excludes the vertex itself
	Label     string   // Dijkstra label "distance[predecessor]"
}

func newResult[W core.Weight](g *core.Graph[W], names []string, source int) *Result[W] {
	r := &Result[W]{
		Source: source,
		Dist:   make([]W, len(names)),
		Prev:   make([]int, len(names)),
		names:  names,
		graph:  g,
	}
	r.Reset()
	r.Source = source

	return r
}

// Reset returns the table to its initial state: every distance is the
// Infinity sentinel, every path is empty and nothing is settled.
func (r *Result[W]) Reset() {
	inf := core.Infinity[W]()
	for v := range r.Dist {
		r.Dist[v] = inf
		r.Prev[v] = -1
	}
	r.Order = r.Order[:0]
}

// Len returns the number of vertices covered by the table.
func (r *Result[W]) Len() int { return len(r.Dist) }

// Name returns the name of vertex v as captured when the run started.
func (r *Result[W]) Name(v int) string {
	if v < 0 || v >= len(r.names) {
		return ""
	}

	return r.names[v]
}

// SourceName returns the name of the source vertex.
func (r *Result[W]) SourceName() string { return r.Name(r.Source) }

// Reachable reports whether v has a finite distance.
func (r *Result[W]) Reachable(v int) bool {
	if v < 0 || v >= len(r.Dist) {
		return false
	}

	return !core.IsInfinite(r.Dist[v])
}

func (r *Result[W]) index(name string) (int, error) {
	for v, n := range r.names {
		if n == name {
			return v, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", core.ErrNotFound, name)
}

// Distance returns the shortest distance to the named vertex. Unreachable
// vertices yield core.Infinity and no error; unknown names yield core.ErrNotFound.
func (r *Result[W]) Distance(name string) (W, error) {
	v, err := r.index(name)
	if err != nil {
		return core.Infinity[W](), err
	}

	return r.Dist[v], nil
}

// PathIndices returns the vertices from the source up to, but excluding, v.
// The source and unreachable vertices have an empty path.
// Complexity: O(hops).
func (r *Result[W]) PathIndices(v int) []int {
	if !r.Reachable(v) {
		return []int{}
	}

	var rev []int
	for p := r.Prev[v]; p >= 0; p = r.Prev[p] {
		rev = append(rev, p)
		if len(rev) > len(r.Prev) {
			// Corrupted table; predecessor chains are acyclic by construction.
			return []int{}
		}
	}
	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}

// Path returns the names on the shortest path to the named vertex, excluding it.
func (r *Result[W]) Path(name string) ([]string, error) {
	v, err := r.index(name)
	if err != nil {
		return nil, err
	}

	return r.namesOf(r.PathIndices(v)), nil
}

func (r *Result[W]) namesOf(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = r.names[v]
	}

	return out
}

// Label renders the classic Dijkstra label of v: "distance[predecessor]",
// "0[0]" for the source and "∞[-]" for unreachable vertices, the source of a
// reset table included.
func (r *Result[W]) Label(v int) string {
	switch {
	case !r.Reachable(v):
		return "∞[-]"
	case v == r.Source:
		return "0[0]"
	default:
		return fmt.Sprintf("%v[%s]", r.Dist[v], r.names[r.Prev[v]])
	}
}

// Entries returns one row per vertex: reachable vertices by ascending distance
// (index on ties), then unreachable ones by index.
func (r *Result[W]) Entries() []Entry[W] {
	out := make([]Entry[W], len(r.Dist))
	for v := range r.Dist {
		out[v] = Entry[W]{
			Index:     v,
			Name:      r.names[v],
			Distance:  r.Dist[v],
			Reachable: r.Reachable(v),
			Path:      r.namesOf(r.PathIndices(v)),
			Label:     r.Label(v),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Reachable != out[j].Reachable {
			return out[i].Reachable
		}
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Index < out[j].Index
	})

	return out
}

// Settled returns a copy of the settle order.
func (r *Result[W]) Settled() []int {
	return append([]int(nil), r.Order...)
}

// Subgraph returns the input graph restricted to the settled vertices, in
// settle order, for downstream consumers.
func (r *Result[W]) Subgraph() (*core.Graph[W], error) {
	if r.graph == nil {
		return nil, ErrNilGraph
	}

	return r.graph.Subgraph(r.Order)
}

// Graph returns the graph the run was computed on.
func (r *Result[W]) Graph() *core.Graph[W] { return r.graph }

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/routegraph/routegraph/core"
)

// ShortestPaths computes minimum-weight paths from the named source vertex to
// every vertex of g reachable from it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//
// Vertices never reached keep the Infinity sentinel distance and an empty path;
// that is a normal outcome, not an error.
//
// Complexity:
//
//   - LinearScan: O(V² + E) time, O(V) space.
//   - BinaryHeap: O((V + E) log V) time, O(V + E) space.
func ShortestPaths[W core.Weight](g *core.Graph[W], source string, opts ...Option) (*Result[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	src, err := g.FindByName(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	return ShortestPathsFrom(g, src, opts...)
}

// ShortestPathsFrom is ShortestPaths addressed by vertex index.
func ShortestPathsFrom[W core.Weight](g *core.Graph[W], source int, opts ...Option) (*Result[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	names := g.Names()
	if source < 0 || source >= len(names) {
		return nil, fmt.Errorf("%w: index %d", ErrSourceNotFound, source)
	}

	r := &runner[W]{
		g:       g,
		options: cfg,
		res:     newResult[W](g, names, source),
		settled: make([]bool, len(names)),
	}
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W core.Weight] struct {
	g       *core.Graph[W] // read-only topology
	options Options
	res     *Result[W] // distance / predecessor table, returned to the caller
	settled []bool     // settled[v]: shortest distance of v is final

	unsettled []bool    // LinearScan frontier
	pq        nodePQ[W] // BinaryHeap frontier
}

// init puts the source at distance zero into the frontier.
func (r *runner[W]) init() {
	src := r.res.Source
	r.res.Dist[src] = 0

	switch r.options.Strategy {
	case BinaryHeap:
		r.pq = make(nodePQ[W], 0, len(r.settled))
		heap.Init(&r.pq)
	default:
		r.unsettled = make([]bool, len(r.settled))
	}
	r.push(src)
}

// process settles vertices until the frontier is empty.
func (r *runner[W]) process() {
	for {
		u, ok := r.next()
		if !ok {
			return
		}

		r.relax(u)

		r.settled[u] = true
		r.res.Order = append(r.res.Order, u)
		if r.options.OnSettle != nil {
			r.options.OnSettle(u)
		}
	}
}

// relax improves tentative distances of the unsettled out-neighbors of u.
func (r *runner[W]) relax(u int) {
	dist := r.res.Dist
	for _, a := range r.g.Neighbors(u) {
		v := a.To
		// Vertices added after the run started are outside the state table.
		if v >= len(r.settled) || r.settled[v] {
			continue
		}

		cand, ok := core.AddWeights(dist[u], a.Weight)
		if !ok {
			continue
		}
		if !core.LessWeight(cand, dist[v]) {
			continue
		}

		dist[v] = cand
		r.res.Prev[v] = u
		r.push(v)
	}
}

// push adds v to the frontier (idempotent for LinearScan).
func (r *runner[W]) push(v int) {
	if r.options.Strategy == BinaryHeap {
		heap.Push(&r.pq, nodeItem[W]{index: v, dist: r.res.Dist[v]})
		return
	}
	r.unsettled[v] = true
}

// next removes and returns the unsettled vertex with the strictly smallest
// distance, lowest index first on ties.
func (r *runner[W]) next() (int, bool) {
	if r.options.Strategy == BinaryHeap {
		for r.pq.Len() > 0 {
			item := heap.Pop(&r.pq).(nodeItem[W])
			// Skip stale entries left behind by lazy decrease-key.
			if r.settled[item.index] || item.dist != r.res.Dist[item.index] {
				continue
			}

			return item.index, true
		}

		return -1, false
	}

	best := -1
	for v, open := range r.unsettled {
		if !open {
			continue
		}
		if best < 0 || core.LessWeight(r.res.Dist[v], r.res.Dist[best]) {
			best = v
		}
	}
	if best < 0 {
		return -1, false
	}
	r.unsettled[best] = false

	return best, true
}

// nodeItem is a frontier entry: a vertex and the distance it was pushed with.
type nodeItem[W core.Weight] struct {
	index int
	dist  W
}

// nodePQ is a min-heap of nodeItem ordered by (dist, index).
type nodePQ[W core.Weight] []nodeItem[W]

// Len returns the number of items in the heap.
func (pq nodePQ[W]) Len() int { return len(pq) }

// Less orders by distance, then by vertex index.
func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].index < pq[j].index
}

// Swap swaps two elements in the heap.
func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(nodeItem[W])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

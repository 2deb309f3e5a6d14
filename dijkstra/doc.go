// Package dijkstra computes single-source shortest paths on a core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths settles vertices in order of increasing distance from the
//     source. Each settled vertex relaxes its outgoing arcs: when
//     dist[u] + w < dist[v], v's distance and predecessor are replaced.
//   - Two selection strategies share the same relaxation code:
//     LinearScan (default) scans the unsettled set in O(V) per step, and
//     BinaryHeap uses container/heap with lazy decrease-key.
//   - Both strategies settle vertices in exactly the same order, because the
//     heap is keyed by (distance, index) and the scan keeps the first (lowest
//     index) minimum it sees. Distances and reconstructed paths are identical.
//
// Determinism:
//
//	Equal-distance vertices are settled lowest index first (index = insertion
//	order in the graph). Arcs are relaxed in their insertion order. Relaxation is
//	strict, so of several equal-length paths the first one discovered is kept.
//
// Run-scoped state:
//
//	Distances and predecessors live in a Result table owned by the caller,
//	never on the graph. Two runs never observe each other's state, and a graph
//	may be shared read-only by concurrent runs. Result.Reset returns a table to
//	its initial state (all distances infinite, all paths empty).
//
// Output:
//
//   - Result.Dist[v]: shortest distance, or core.Infinity[W]() when unreachable.
//   - Result.Path(name): vertex names from the source up to, but excluding, the
//     vertex. Empty for the source and for unreachable vertices.
//   - Result.Entries(): report rows sorted by distance, with the textbook
//     "distance[predecessor]" label.
//   - Result.Subgraph(): the input graph restricted to settled vertices.
//
// Errors (sentinel):
//
//   - ErrNilGraph:       nil graph.
//   - ErrEmptySource:    empty source name.
//   - ErrSourceNotFound: the source is not a vertex of the graph
//     (errors.Is(err, core.ErrNotFound) also holds).
//
// Complexity:
//
//   - LinearScan: O(V² + E) time, O(V) space.
//   - BinaryHeap: O((V + E) log V) time, O(V + E) space.
package dijkstra

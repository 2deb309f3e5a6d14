// Package core provides the graph data model shared by every algorithm in
// routegraph: named, optionally geocoded vertices connected by directed,
// non-negative weighted arcs.
//
// The Graph G = (V,E) is stored as an arena:
//
//   - Vertices live in a slice and are addressed by stable integer indices
//     assigned in insertion order (0, 1, 2, …).
//   - Names are unique within a Graph and map to indices for lookup.
//   - There is no separate edge entity. Every vertex owns an insertion-ordered
//     list of outgoing Arc{To, Weight}; adjacency is reachable only through it.
//
// Why an arena?
//
//   - No reference cycles between vertices, so cloning and restricting a graph
//     is a plain copy of slices.
//   - Algorithm state (tentative distances, predecessors, visited flags) lives
//     in per-run tables keyed by vertex index, never on the Vertex itself.
//     A Graph can therefore be shared by any number of successive or
//     concurrent runs without stale state leaking between them.
//   - Deterministic iteration: Vertices() and Neighbors() always follow
//     insertion order, which is what the algorithms use for tie-breaking.
//
// Weights:
//
//	Graph is generic over Weight (any integer or floating point type), so a
//	single shortest-path engine serves integer matrices and real-valued
//	distance/duration matrices alike. Infinity[W]() yields the "unreachable"
//	sentinel: +Inf for floats, the maximum representable value for integers.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(name string, opts ...VertexOption) (int, error) // O(1)
//	FindByName(name string) (int, error)                      // O(1)
//	Vertex(i int) (Vertex, error)                             // O(1)
//
//	// Arc lifecycle (last write wins, position is kept)
//	AddEdge(from, to string, w W) error                       // O(1)
//	AddEdgeIndex(from, to int, w W) error                     // O(1)
//
//	// Query
//	Neighbors(i int) []Arc[W]                                 // O(deg)
//	Weight(from, to int) (W, bool)                            // O(1)
//	Vertices() []Vertex / Names() []string                    // O(V)
//	Len() / EdgeCount()                                       // O(1)
//
//	// Copies
//	Clone() *Graph[W]                                         // O(V+E)
//	Subgraph(indices []int) (*Graph[W], error)                // O(V+E)
//
// Errors:
//
//	ErrEmptyName       – zero-length vertex name
//	ErrDuplicateVertex – a vertex with the same name already exists
//	ErrNotFound        – lookup miss (name or index)
//	ErrInvalidWeight   – negative, NaN or infinite weight
//	ErrSelfLoop        – arc from a vertex to itself (also matches ErrInvalidWeight)
//	ErrSourceNotFound  – algorithm source/start absent (also matches ErrNotFound)
//
// All methods are safe for concurrent use; reads take a shared lock and never
// mutate topology.
package core

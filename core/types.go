package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a vertex name is the empty string.
	ErrEmptyName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates that a vertex with the same name is already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrNotFound indicates a lookup of a vertex name or index that does not exist.
	ErrNotFound = errors.New("core: vertex not found")

	// ErrInvalidWeight indicates a negative or NaN edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrSelfLoop indicates an arc from a vertex to itself.
	// errors.Is(ErrSelfLoop, ErrInvalidWeight) holds.
	ErrSelfLoop = fmt.Errorf("%w: self-loop not allowed", ErrInvalidWeight)

	// ErrSourceNotFound indicates that the source (or start) vertex handed to an
	// algorithm is not a member of the graph.
	// errors.Is(ErrSourceNotFound, ErrNotFound) holds.
	ErrSourceNotFound = fmt.Errorf("%w: source", ErrNotFound)
)

// Vertex is the static part of a graph node.
//
// Name uniquely identifies the Vertex within its Graph. Location is meaningful
// only when Geocoded is true and is used by collaborators (distance matrix
// clients, map export), never by the algorithms.
type Vertex struct {
	// Index is the stable arena position of the vertex.
	Index int

	// Name is the unique identifier of the vertex.
	Name string

	// Location holds longitude (X) and latitude (Y).
	Location orb.Point

	// Geocoded reports whether Location was provided.
	Geocoded bool
}

// Longitude returns the X coordinate of Location.
func (v Vertex) Longitude() float64 { return v.Location.Lon() }

// Latitude returns the Y coordinate of Location.
func (v Vertex) Latitude() float64 { return v.Location.Lat() }

// Arc is a directed, weighted adjacency entry owned by its source vertex.
type Arc[W Weight] struct {
	// To is the index of the destination vertex.
	To int

	// Weight is the non-negative cost of traversing the arc.
	Weight W
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithLocation geocodes the vertex with the given longitude and latitude.
func WithLocation(longitude, latitude float64) VertexOption {
	return func(v *Vertex) {
		v.Location = orb.Point{longitude, latitude}
		v.Geocoded = true
	}
}

// WithPoint geocodes the vertex with an orb.Point (lon, lat).
func WithPoint(p orb.Point) VertexOption {
	return func(v *Vertex) {
		v.Location = p
		v.Geocoded = true
	}
}

// Graph is an owning collection of vertices with embedded weighted adjacency.
//
// vertices[i] is the vertex with index i; adj[i] lists its outgoing arcs in
// insertion order; arcPos[i][j] is the position of the arc i→j inside adj[i].
type Graph[W Weight] struct {
	mu sync.RWMutex

	vertices []Vertex
	byName   map[string]int
	adj      [][]Arc[W]
	arcPos   []map[int]int
	edges    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[W Weight]() *Graph[W] {
	return &Graph[W]{
		byName: make(map[string]int),
	}
}

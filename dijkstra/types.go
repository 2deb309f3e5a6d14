// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– WithStrategy:  LinearScan (default, O(V²)) or BinaryHeap (O((V+E) log V)).
//	– WithOnSettle:  hook invoked with each vertex index as it is settled.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the provided source name is empty.
//	– ErrSourceNotFound if the source vertex does not exist in the graph.
package dijkstra

import (
	"errors"

	"github.com/routegraph/routegraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex name is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex name is empty")

	// ErrSourceNotFound indicates that the source vertex is not in the graph.
	// It is core.ErrSourceNotFound, so errors.Is(err, core.ErrNotFound) also holds.
	ErrSourceNotFound = core.ErrSourceNotFound
)

// Strategy selects how the next vertex to settle is found.
type Strategy int

const (
	// LinearScan scans every unsettled vertex for the minimum tentative distance.
	// O(V²) overall; the reference behavior.
	LinearScan Strategy = iota

	// BinaryHeap keeps unsettled vertices in a min-heap keyed by (distance, index)
	// with lazy decrease-key. O((V+E) log V); yields the same distances and paths
	// as LinearScan.
	BinaryHeap
)

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear"
	case BinaryHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "linear" / "heap" back to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "linear":
		return LinearScan, nil
	case "heap":
		return BinaryHeap, nil
	default:
		return LinearScan, errors.New("dijkstra: unknown strategy " + s)
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Strategy Strategy  // vertex selection strategy
	OnSettle func(int) // optional hook, called once per settled vertex index
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy selects the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnSettle registers fn to be called with each vertex index in settle order.
func WithOnSettle(fn func(index int)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns LinearScan without hooks.
func DefaultOptions() Options {
	return Options{Strategy: LinearScan}
}

// Package tsp builds round trips over a core.Graph with the greedy
// nearest-neighbor heuristic.
//
// NearestNeighbor starts at a named vertex and repeatedly follows the cheapest
// outgoing arc to a vertex not yet visited, until every vertex is in the tour.
// It then closes the cycle with the arc back to the start.
//
// The heuristic never backtracks. If the current vertex has no arc to an
// unvisited vertex the construction fails with ErrNoUnvisitedNeighbor, and a
// missing closing arc fails with ErrNoReturnEdge. No optimality guarantee is
// made.
//
// Determinism:
//
//	Candidates are scanned in adjacency insertion order and only a strictly
//	smaller weight replaces the current best, so the first cheapest arc wins.
//
// Helpers:
//
//   - ValidateTour: closed cycle over {0..n-1} starting and ending at start.
//   - TourCost:     sum of consecutive arc weights, closing arc included.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - The graph is only read.
package tsp

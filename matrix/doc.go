// Package matrix holds the dense, square weight-matrix form of a route network
// and converts it to and from core.Graph.
//
// A weight matrix pairs an n×n Dense with n vertex names: row i and column i
// both belong to names[i], and cell (i, j) is the weight of the arc i→j.
//
// Cell policy (ToGraph):
//
//   - zero, negative, NaN or ±Inf: no arc.
//   - the diagonal is ignored.
//   - anything else becomes an arc with that weight.
//
// FromGraph writes the opposite direction: absent arcs become 0.
//
// Complexity:
//
//	At and Set run in O(1) with bounds checks. Conversions are O(n²).
package matrix

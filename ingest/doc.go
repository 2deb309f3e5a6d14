// Package ingest reads route networks from files and turns them into
// core.Graph values.
//
// Supported inputs:
//
//   - Weight-matrix CSV: a header row "label,name1,...,nameN" followed by N rows
//     "name,w1,...,wN". Cells follow the matrix package policy (zero or
//     negative means no arc, the diagonal is ignored).
//   - Locations CSV: a header row followed by "name,longitude,latitude" rows.
//     Locations feed the distance-matrix API, the geodesic builder and map export.
//   - Adjacency YAML: an ordered vertex list, each with optional coordinates
//     and a list of (destination, weight) pairs.
//
// Parsing does not stop at the first bad cell: every problem found in a file
// is collected with go-multierror and returned as one error, each entry
// wrapping a sentinel from this package.
package ingest

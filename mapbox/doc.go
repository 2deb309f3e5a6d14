// Package mapbox fetches travel-time and travel-distance matrices from the
// Mapbox Directions Matrix API and converts them into route graphs.
//
// A request covers 1 to MaxCoordinates geocoded locations. The response matrix
// is square in request order; cell (i, j) becomes the arc i→j. Cells that are
// null (no route), zero or on the diagonal produce no arc.
//
// The client never logs the access token.
package mapbox

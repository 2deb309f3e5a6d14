// Package routegraph is an in-memory toolkit for route networks: named,
// optionally geocoded, directed weighted graphs with a Dijkstra shortest-path
// engine and a nearest-neighbor round-trip heuristic.
//
// Packages:
//
//	core/      Graph and Vertex arena, weights, adjacency-list construction
//	dijkstra/  single-source shortest paths (linear scan or binary heap)
//	tsp/       greedy nearest-neighbor tours, tour validation and cost
//	matrix/    dense weight matrices and conversion to and from core.Graph
//	ingest/    matrix CSV, locations CSV and adjacency YAML readers/writers
//	mapbox/    Mapbox Directions Matrix client producing graphs
//	export/    force-directed and map JSON/GeoJSON, HTML pages, Graphviz DOT
//	config/    YAML configuration with environment overrides
//
// The routegraph command in cmd/routegraph wires these together.
//
// Quick example:
//
//	g := core.NewGraph[float64]()
//	for _, n := range []string{"A", "B", "C"} {
//		_, _ = g.AddVertex(n)
//	}
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("A", "C", 1)
//	_ = g.AddEdge("C", "B", 2)
//
//	res, _ := dijkstra.ShortestPaths(g, "A")
//	d, _ := res.Distance("B")    // 3
//	path, _ := res.Path("B")     // [A C]
package routegraph

// Package export renders graphs, shortest-path trees and tours for viewing.
//
// Formats:
//
//   - Force data: {title, nodes[{id, group}], links[{source, target, value}]}
//     for a d3 force-directed diagram. Group 1 marks the source, 2 the rest.
//   - Map data: nodes with latitude/longitude plus the links of a
//     shortest-path tree, for a mapbox-gl page. GeoJSON of the same content
//     is available through orb/geojson.
//   - DOT: Graphviz source with highlighted arcs.
//   - HTML: standalone pages that load a data file written next to them.
//
// Writer puts files under one directory with random, collision-free names
// such as plotData_<uuid>.json and diagram_<uuid>.html.
package export

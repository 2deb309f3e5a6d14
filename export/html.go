package export

import (
	"html/template"
	"io"
)

var forceTmpl = template.Must(template.New("force").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  .links line { stroke: #999; stroke-opacity: 0.6; }
  .nodes circle { stroke: #fff; stroke-width: 1.5px; }
  .edge-label { font-family: sans-serif; font-size: 10px; fill: #333; }
  .node-label { font-family: sans-serif; font-size: 12px; fill: #000; }
  text { pointer-events: none; }
</style>
</head>
<body>
<h1 id="graph-title">{{.Title}}</h1>
<svg width="1600" height="900"></svg>
<script src="https://d3js.org/d3.v6.min.js"></script>
<script>
d3.json({{.DataFile}}).then(function(graph) {
  const svg = d3.select("svg"), width = +svg.attr("width"), height = +svg.attr("height");
  const simulation = d3.forceSimulation(graph.nodes)
    .force("link", d3.forceLink(graph.links).id(d => d.id).distance(100))
    .force("charge", d3.forceManyBody().strength(-300))
    .force("center", d3.forceCenter(width / 2, height / 2));
  svg.append("defs").append("marker").attr("id", "arrow").attr("viewBox", "0 -5 10 10")
    .attr("refX", 20).attr("markerWidth", 6).attr("markerHeight", 6).attr("orient", "auto")
    .append("path").attr("d", "M0,-5L10,0L0,5").attr("fill", "#999");
  const link = svg.append("g").attr("class", "links").selectAll("line").data(graph.links)
    .enter().append("line").attr("stroke-width", d => Math.max(1, Math.log(d.value + 1)))
    .attr("marker-end", "url(#arrow)");
  const edgeLabels = svg.append("g").selectAll("text").data(graph.links)
    .enter().append("text").attr("class", "edge-label").text(d => d.value);
  const node = svg.append("g").attr("class", "nodes").selectAll("circle").data(graph.nodes)
    .enter().append("circle").attr("r", 10).attr("fill", d => d3.schemeCategory10[d.group % 10])
    .call(d3.drag()
      .on("start", (e, d) => { if (!e.active) simulation.alphaTarget(0.3).restart(); d.fx = d.x; d.fy = d.y; })
      .on("drag", (e, d) => { d.fx = e.x; d.fy = e.y; })
      .on("end", (e, d) => { if (!e.active) simulation.alphaTarget(0); d.fx = null; d.fy = null; }));
  const nodeLabels = svg.append("g").selectAll("text").data(graph.nodes)
    .enter().append("text").attr("class", "node-label").attr("x", 12).attr("y", 3).text(d => d.id);
  simulation.on("tick", () => {
    link.attr("x1", d => d.source.x).attr("y1", d => d.source.y)
        .attr("x2", d => d.target.x).attr("y2", d => d.target.y);
    edgeLabels.attr("x", d => (d.source.x + d.target.x) / 2).attr("y", d => (d.source.y + d.target.y) / 2);
    node.attr("cx", d => d.x).attr("cy", d => d.y);
    nodeLabels.attr("transform", d => "translate(" + d.x + "," + d.y + ")");
  });
}).catch(function(err) {
  document.getElementById("graph-title").textContent = "Error: unable to load graph data.";
  console.error(err);
});
</script>
</body>
</html>
`))

var mapTmpl = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<script src="https://api.mapbox.com/mapbox-gl-js/v2.15.0/mapbox-gl.js"></script>
<link href="https://api.mapbox.com/mapbox-gl-js/v2.15.0/mapbox-gl.css" rel="stylesheet">
<style>body { margin: 0; } #map { position: absolute; top: 0; bottom: 0; width: 100%; }</style>
</head>
<body>
<div id="map"></div>
<script>
mapboxgl.accessToken = {{.Token}};
fetch({{.DataFile}}).then(r => r.json()).then(function(data) {
  const at = {};
  data.nodes.forEach(n => { at[n.id] = [n.longitude, n.latitude]; });
  const bounds = new mapboxgl.LngLatBounds();
  data.nodes.forEach(n => bounds.extend(at[n.id]));
  const map = new mapboxgl.Map({ container: "map", style: "mapbox://styles/mapbox/streets-v12", bounds: bounds, fitBoundsOptions: { padding: 60 } });
  map.on("load", () => {
    map.addSource("links", { type: "geojson", data: { type: "FeatureCollection", features: data.links.map(l => ({
      type: "Feature", properties: { value: l.value }, geometry: { type: "LineString", coordinates: [at[l.source], at[l.target]] } })) } });
    map.addLayer({ id: "links", type: "line", source: "links", paint: { "line-color": "#d62728", "line-width": 3 } });
    data.nodes.forEach(n => new mapboxgl.Marker().setLngLat(at[n.id]).setPopup(new mapboxgl.Popup().setText(n.id)).addTo(map));
  });
});
</script>
</body>
</html>
`))

// pageData feeds both templates.
type pageData struct {
	Title    string
	DataFile string
	Token    string
}

// ForceHTML writes a d3 force diagram page that loads dataFile.
func ForceHTML(w io.Writer, title, dataFile string) error {
	return forceTmpl.Execute(w, pageData{Title: title, DataFile: dataFile})
}

// MapHTML writes a mapbox-gl page that loads dataFile with the given public token.
func MapHTML(w io.Writer, title, dataFile, token string) error {
	return mapTmpl.Execute(w, pageData{Title: title, DataFile: dataFile, Token: token})
}

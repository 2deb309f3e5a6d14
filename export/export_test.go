package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/dijkstra"
	"github.com/routegraph/routegraph/export"
	"github.com/routegraph/routegraph/tsp"
)

// buildNetwork: A→B(2), A→C(5), B→C(1), C→A(4), all geocoded.
func buildNetwork(t *testing.T) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	_, _ = g.AddVertex("A", core.WithLocation(-94.1, 36.1))
	_, _ = g.AddVertex("B", core.WithLocation(-94.2, 36.2))
	_, _ = g.AddVertex("C", core.WithLocation(-94.3, 36.3))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 4))

	return g
}

func TestForceGraph(t *testing.T) {
	data, err := export.ForceGraph("Everything", buildNetwork(t))
	require.NoError(t, err)
	assert.Equal(t, "Everything", data.Title)
	assert.Len(t, data.Nodes, 3)
	for _, n := range data.Nodes {
		assert.Equal(t, export.GroupOther, n.Group)
	}
	assert.Equal(t, []export.Link{
		{Source: "A", Target: "B", Value: 2},
		{Source: "A", Target: "C", Value: 5},
		{Source: "B", Target: "C", Value: 1},
		{Source: "C", Target: "A", Value: 4},
	}, data.Links)

	b, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Contains(t, string(b), `{"id":"A","group":2}`)
	assert.Contains(t, string(b), `{"source":"A","target":"B","value":2}`)

	_, err = export.ForceGraph[int]("x", nil)
	require.ErrorIs(t, err, export.ErrNilInput)
}

func TestShortestPathTree(t *testing.T) {
	g := buildNetwork(t)
	_, _ = g.AddVertex("Island")
	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	data, err := export.ShortestPathTree("From A", res)
	require.NoError(t, err)
	assert.Equal(t, export.GroupSource, data.Nodes[0].Group)
	assert.Equal(t, export.GroupOther, data.Nodes[3].Group)
	// One tree arc per reachable non-source vertex.
	assert.Equal(t, []export.Link{
		{Source: "A", Target: "B", Value: 2},
		{Source: "B", Target: "C", Value: 1},
	}, data.Links)
}

func TestTourDiagram(t *testing.T) {
	g := buildNetwork(t)
	tour, err := tsp.NearestNeighbor(g, "A")
	require.NoError(t, err)

	data, err := export.TourDiagram("Round trip", g, tour)
	require.NoError(t, err)
	assert.Equal(t, export.GroupSource, data.Nodes[0].Group)
	assert.Equal(t, []export.Link{
		{Source: "A", Target: "B", Value: 2},
		{Source: "B", Target: "C", Value: 1},
		{Source: "C", Target: "A", Value: 4},
	}, data.Links)
}

func TestShortestPathMapAndGeoJSON(t *testing.T) {
	res, err := dijkstra.ShortestPaths(buildNetwork(t), "A")
	require.NoError(t, err)

	data, err := export.ShortestPathMap("Map", res)
	require.NoError(t, err)
	require.Len(t, data.Nodes, 3)
	assert.Equal(t, export.MapNode{ID: "B", Latitude: 36.2, Longitude: -94.2}, data.Nodes[1])
	assert.Len(t, data.Links, 2)

	fc := export.GeoJSON(data)
	require.Len(t, fc.Features, 5)
	assert.Equal(t, "Point", fc.Features[0].Geometry.GeoJSONType())
	assert.Equal(t, "LineString", fc.Features[3].Geometry.GeoJSONType())
	assert.Equal(t, "A", fc.Features[3].Properties["source"])

	raw, err := fc.MarshalJSON()
	require.NoError(t, err)
	back, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	assert.Len(t, back.Features, 5)
}

func TestShortestPathMap_RequiresCoordinates(t *testing.T) {
	g := buildNetwork(t)
	_, _ = g.AddVertex("Nowhere")
	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	_, err = export.ShortestPathMap("Map", res)
	require.ErrorIs(t, err, export.ErrNotGeocoded)
}

func TestDOT(t *testing.T) {
	g := buildNetwork(t)
	_, _ = g.AddVertex("Two Words")
	require.NoError(t, g.AddEdge("C", "Two Words", 7))

	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	dot, err := export.DOT(g, "A", export.TreeLinks(res))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dot, "digraph routegraph"))
	assert.Contains(t, dot, `"Two Words"`)

	parsed, err := gographviz.Read([]byte(dot))
	require.NoError(t, err)
	assert.Len(t, parsed.Nodes.Nodes, 4)
	assert.Len(t, parsed.Edges.Edges, 5)

	highlighted := 0
	for _, e := range parsed.Edges.Edges {
		if e.Attrs["penwidth"] == "2" {
			highlighted++
		}
	}
	assert.Equal(t, 3, highlighted)
}

func TestHTMLPages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.ForceHTML(&buf, "Title <1>", "plotData_x.json"))
	page := buf.String()
	assert.Contains(t, page, "<title>Title &lt;1&gt;</title>")
	assert.Contains(t, page, `d3.json("plotData_x.json")`)

	buf.Reset()
	require.NoError(t, export.MapHTML(&buf, "Map", "mapData_x.json", "pk.public"))
	assert.Contains(t, buf.String(), `mapboxgl.accessToken = "pk.public"`)
}

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := export.NewWriter(dir, nil)
	g := buildNetwork(t)

	data, err := export.ForceGraph("All", g)
	require.NoError(t, err)
	files, err := w.WriteForce(data)
	require.NoError(t, err)
	assert.Regexp(t, `plotData_[0-9a-f-]{36}\.json$`, files.Data)
	assert.Regexp(t, `diagram_[0-9a-f-]{36}\.html$`, files.Page)

	raw, err := os.ReadFile(files.Data)
	require.NoError(t, err)
	var back export.ForceData
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, data, back)

	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	mapData, err := export.ShortestPathMap("Map", res)
	require.NoError(t, err)
	mapFiles, err := w.WriteMap(mapData, "pk.public")
	require.NoError(t, err)
	assert.FileExists(t, mapFiles.Page)
	assert.FileExists(t, strings.TrimSuffix(mapFiles.Data, ".json")+".geojson")

	dot, err := export.DOT(g, "A", nil)
	require.NoError(t, err)
	dotPath, err := w.WriteDOT(dot)
	require.NoError(t, err)
	assert.FileExists(t, dotPath)

	second, err := w.WriteForce(data)
	require.NoError(t, err)
	assert.NotEqual(t, files.Data, second.Data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

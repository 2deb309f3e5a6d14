package export

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/dijkstra"
)

// MapNode is a geocoded vertex of a map document.
type MapNode struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapData is the document read by the map page.
type MapData struct {
	Title string    `json:"title"`
	Nodes []MapNode `json:"nodes"`
	Links []Link    `json:"links"`
}

// mapNodes returns one MapNode per vertex; every vertex must be geocoded.
func mapNodes[W core.Weight](g *core.Graph[W]) ([]MapNode, error) {
	verts := g.Vertices()
	nodes := make([]MapNode, len(verts))
	for i, v := range verts {
		if !v.Geocoded {
			return nil, fmt.Errorf("%w: %q", ErrNotGeocoded, v.Name)
		}
		nodes[i] = MapNode{ID: v.Name, Latitude: v.Latitude(), Longitude: v.Longitude()}
	}

	return nodes, nil
}

// ShortestPathMap exports the geocoded vertices of the graph behind res and
// the arcs of its shortest-path tree.
func ShortestPathMap[W core.Weight](title string, res *dijkstra.Result[W]) (MapData, error) {
	if res == nil || res.Graph() == nil {
		return MapData{}, ErrNilInput
	}
	nodes, err := mapNodes(res.Graph())
	if err != nil {
		return MapData{}, err
	}

	return MapData{Title: title, Nodes: nodes, Links: TreeLinks(res)}, nil
}

// GeoJSON converts map data into a feature collection: a Point per node with
// its name, and a LineString per link with source, target and value.
func GeoJSON(data MapData) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	at := make(map[string]orb.Point, len(data.Nodes))
	for _, n := range data.Nodes {
		p := orb.Point{n.Longitude, n.Latitude}
		at[n.ID] = p
		f := geojson.NewFeature(p)
		f.Properties["name"] = n.ID
		fc.Append(f)
	}
	for _, l := range data.Links {
		from, okFrom := at[l.Source]
		to, okTo := at[l.Target]
		if !okFrom || !okTo {
			continue
		}
		f := geojson.NewFeature(orb.LineString{from, to})
		f.Properties["source"] = l.Source
		f.Properties["target"] = l.Target
		f.Properties["value"] = l.Value
		fc.Append(f)
	}

	return fc
}

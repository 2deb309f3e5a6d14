package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/routegraph/routegraph/core"
)

// AdjacencyFile is the YAML document form of a route network.
//
//	vertices:
//	  - name: Fayetteville
//	    longitude: -94.1574
//	    latitude: 36.0822
//	    edges:
//	      - to: Springdale
//	        weight: 14.2
type AdjacencyFile struct {
	Vertices []AdjacencyVertex `yaml:"vertices"`
}

// AdjacencyVertex is one vertex entry of an AdjacencyFile. Longitude and
// Latitude must be both set or both omitted.
type AdjacencyVertex struct {
	Name      string          `yaml:"name"`
	Longitude *float64        `yaml:"longitude,omitempty"`
	Latitude  *float64        `yaml:"latitude,omitempty"`
	Edges     []AdjacencyEdge `yaml:"edges,omitempty"`
}

// AdjacencyEdge is one (destination, weight) pair.
type AdjacencyEdge struct {
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// ReadAdjacencyYAML decodes an AdjacencyFile and builds the graph it describes.
// Vertex order and edge order follow the document.
func ReadAdjacencyYAML(r io.Reader) (*core.Graph[float64], error) {
	var doc AdjacencyFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("ingest: decode adjacency yaml: %w", err)
	}

	entries, err := doc.Entries()
	if err != nil {
		return nil, err
	}

	return core.FromAdjacency(entries)
}

// Entries converts the document into core adjacency entries.
func (f AdjacencyFile) Entries() ([]core.AdjacencyEntry[float64], error) {
	entries := make([]core.AdjacencyEntry[float64], len(f.Vertices))
	for i, v := range f.Vertices {
		e := core.AdjacencyEntry[float64]{Name: v.Name}
		switch {
		case v.Longitude != nil && v.Latitude != nil:
			e.Location = &orb.Point{*v.Longitude, *v.Latitude}
		case v.Longitude != nil || v.Latitude != nil:
			return nil, fmt.Errorf("%w: %q has only one coordinate", ErrBlankField, v.Name)
		}
		for _, d := range v.Edges {
			e.Edges = append(e.Edges, core.Destination[float64]{To: d.To, Weight: d.Weight})
		}
		entries[i] = e
	}

	return entries, nil
}

// WriteAdjacencyYAML encodes g as an AdjacencyFile.
func WriteAdjacencyYAML[W core.Weight](w io.Writer, g *core.Graph[W]) error {
	var doc AdjacencyFile
	for _, v := range g.Vertices() {
		av := AdjacencyVertex{Name: v.Name}
		if v.Geocoded {
			lon, lat := v.Longitude(), v.Latitude()
			av.Longitude, av.Latitude = &lon, &lat
		}
		for _, a := range g.Neighbors(v.Index) {
			av.Edges = append(av.Edges, AdjacencyEdge{To: g.Name(a.To), Weight: float64(a.Weight)})
		}
		doc.Vertices = append(doc.Vertices, av)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

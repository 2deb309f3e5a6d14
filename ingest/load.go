package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/routegraph/routegraph/core"
)

// LoadFile reads a graph from path, choosing the reader by extension:
// .csv for a weight matrix, .yaml or .yml for an adjacency document.
func LoadFile(path string) (*core.Graph[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g *core.Graph[float64]
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		g, err = ReadMatrixGraph(f)
	case ".yaml", ".yml":
		g, err = ReadAdjacencyYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// LoadLocations reads a locations CSV file.
func LoadLocations(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	locs, err := ReadLocationsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return locs, nil
}

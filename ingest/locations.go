package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/paulmach/orb"

	"github.com/routegraph/routegraph/core"
)

// Location is a named point: X is longitude, Y is latitude.
type Location struct {
	Name  string
	Point orb.Point
}

// ReadLocationsCSV parses "name,longitude,latitude" rows. The first row is a
// header and is skipped. Extra columns are ignored.
func ReadLocationsCSV(r io.Reader) ([]Location, error) {
	records, err := newCSVReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read locations csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	var (
		result *multierror.Error
		out    = make([]Location, 0, len(records)-1)
		seen   = make(map[string]int, len(records)-1)
	)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 3 {
			result = multierror.Append(result, fmt.Errorf("%w: line %d has %d fields, want 3", ErrRowWidth, line, len(rec)))
			continue
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("line %d name: %w", line, ErrBlankField))
			continue
		}
		if prev, dup := seen[name]; dup {
			result = multierror.Append(result, fmt.Errorf("line %d: %w: %q (first on line %d)", line, core.ErrDuplicateVertex, name, prev))
			continue
		}
		lon, errLon := parseNumber(rec[1])
		if errLon != nil {
			result = multierror.Append(result, fmt.Errorf("line %d longitude: %w", line, errLon))
		}
		lat, errLat := parseNumber(rec[2])
		if errLat != nil {
			result = multierror.Append(result, fmt.Errorf("line %d latitude: %w", line, errLat))
		}
		if errLon != nil || errLat != nil {
			continue
		}
		if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
			result = multierror.Append(result, fmt.Errorf("%w: line %d (%g, %g)", ErrCoordinate, line, lon, lat))
			continue
		}
		seen[name] = line
		out = append(out, Location{Name: name, Point: orb.Point{lon, lat}})
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

// Geocode copies every location onto the vertex of the same name. Locations
// naming no vertex are reported together as core.ErrNotFound.
func Geocode[W core.Weight](g *core.Graph[W], locs []Location) error {
	var result *multierror.Error
	for _, l := range locs {
		if err := g.SetLocation(l.Name, l.Point); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// LocationsOf returns the geocoded vertices of g in index order.
func LocationsOf[W core.Weight](g *core.Graph[W]) []Location {
	var out []Location
	for _, v := range g.Vertices() {
		if v.Geocoded {
			out = append(out, Location{Name: v.Name, Point: v.Location})
		}
	}

	return out
}

// VertexGraph returns a graph with one geocoded vertex per location and no arcs.
func VertexGraph[W core.Weight](locs []Location) (*core.Graph[W], error) {
	g := core.NewGraph[W]()
	for _, l := range locs {
		if _, err := g.AddVertex(l.Name, core.WithPoint(l.Point)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

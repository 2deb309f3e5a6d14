package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Writer writes export files into Dir. File names carry a random UUID so
// repeated exports never overwrite each other.
type Writer struct {
	Dir    string
	Logger *slog.Logger
}

// Files lists what one export wrote.
type Files struct {
	Data string
	Page string
}

// NewWriter returns a Writer for dir, creating it on first write.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{Dir: dir, Logger: logger}
}

// write stores content under name in Dir.
func (w *Writer) write(name string, content []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", w.Dir, err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if w.Logger != nil {
		w.Logger.Info("export written", slog.String("file", path), slog.Int("bytes", len(content)))
	}

	return path, nil
}

// writeJSON stores v indented, as the data file of an export.
func (w *Writer) writeJSON(name string, v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	return w.write(name, b)
}

// WriteForce writes plotData_<id>.json and diagram_<id>.html.
func (w *Writer) WriteForce(data ForceData) (Files, error) {
	id := uuid.NewString()
	dataName := "plotData_" + id + ".json"
	dataPath, err := w.writeJSON(dataName, data)
	if err != nil {
		return Files{}, err
	}

	var page bytes.Buffer
	if err := ForceHTML(&page, data.Title, dataName); err != nil {
		return Files{}, err
	}
	pagePath, err := w.write("diagram_"+id+".html", page.Bytes())
	if err != nil {
		return Files{}, err
	}

	return Files{Data: dataPath, Page: pagePath}, nil
}

// WriteMap writes mapData_<id>.json, mapData_<id>.geojson and map_<id>.html.
// token is the public map-display token embedded in the page.
func (w *Writer) WriteMap(data MapData, token string) (Files, error) {
	id := uuid.NewString()
	dataName := "mapData_" + id + ".json"
	dataPath, err := w.writeJSON(dataName, data)
	if err != nil {
		return Files{}, err
	}

	geo, err := GeoJSON(data).MarshalJSON()
	if err != nil {
		return Files{}, err
	}
	if _, err := w.write("mapData_"+id+".geojson", geo); err != nil {
		return Files{}, err
	}

	var page bytes.Buffer
	if err := MapHTML(&page, data.Title, dataName, token); err != nil {
		return Files{}, err
	}
	pagePath, err := w.write("map_"+id+".html", page.Bytes())
	if err != nil {
		return Files{}, err
	}

	return Files{Data: dataPath, Page: pagePath}, nil
}

// WriteDOT writes graph_<id>.dot.
func (w *Writer) WriteDOT(dot string) (string, error) {
	return w.write("graph_"+uuid.NewString()+".dot", []byte(dot))
}

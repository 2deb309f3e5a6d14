package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/ingest"
	"github.com/routegraph/routegraph/mapbox"
	"github.com/routegraph/routegraph/matrix"
)

func newFetchCmd(a *app) *cobra.Command {
	var (
		out        string
		profile    string
		annotation string
		geodesic   bool
	)
	cmd := &cobra.Command{
		Use:   "fetch LOCATIONS",
		Short: "Build a graph file from a locations CSV via the Mapbox matrix API",
		Long: "Reads name,longitude,latitude rows and writes a weight matrix (.csv) or an\n" +
			"adjacency document with coordinates (.yaml). With --geodesic the weights are\n" +
			"great-circle distances in metres and no API call is made.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := ingest.LoadLocations(args[0])
			if err != nil {
				return err
			}

			var g *core.Graph[float64]
			if geodesic {
				g, err = ingest.Geodesic(locs)
			} else {
				g, err = a.fetchGraph(cmd.Context(), locs, profile, annotation)
			}
			if err != nil {
				return err
			}

			if err := writeGraphFile(out, g); err != nil {
				return err
			}
			a.log.Info("graph written", slog.String("file", out), slog.Int("arcs", g.EdgeCount()))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "graph.csv", "output file (.csv or .yaml)")
	cmd.Flags().StringVar(&profile, "profile", "", "driving, walking, cycling or driving-traffic")
	cmd.Flags().StringVar(&annotation, "annotation", "", "duration or distance")
	cmd.Flags().BoolVar(&geodesic, "geodesic", false, "use great-circle distances instead of the API")

	return cmd
}

// fetchGraph calls the matrix API with flags layered over the configuration.
func (a *app) fetchGraph(ctx context.Context, locs []ingest.Location, profile, annotation string) (*core.Graph[float64], error) {
	mc := a.cfg.Mapbox
	if profile != "" {
		mc.Profile = profile
	}
	if annotation != "" {
		mc.Annotation = annotation
	}
	p, err := mapbox.ParseProfile(mc.Profile)
	if err != nil {
		return nil, err
	}
	an, err := mapbox.ParseAnnotation(mc.Annotation)
	if err != nil {
		return nil, err
	}

	client := mapbox.NewClient(mc.Token,
		mapbox.WithBaseURL(mc.BaseURL),
		mapbox.WithProfile(p),
		mapbox.WithAnnotation(an),
		mapbox.WithHTTPClient(&http.Client{Timeout: mc.Timeout}),
		mapbox.WithLogger(a.log),
	)

	return client.Graph(ctx, locs)
}

// writeGraphFile stores g by extension: a weight matrix for .csv, an
// adjacency document (with coordinates) for .yaml and .yml.
func writeGraphFile(path string, g *core.Graph[float64]) error {
	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		names, m, err := matrix.FromGraph(g)
		if err != nil {
			return err
		}
		encode = func(f *os.File) error { return ingest.WriteMatrixCSV(f, names, m) }
	case ".yaml", ".yml":
		encode = func(f *os.File) error { return ingest.WriteAdjacencyYAML(f, g) }
	default:
		return fmt.Errorf("%w: %q", ingest.ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

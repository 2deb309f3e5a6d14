package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/routegraph/routegraph/config"
	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/dijkstra"
	"github.com/routegraph/routegraph/ingest"
	"github.com/routegraph/routegraph/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	cfgFile  string
	logLevel string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "routegraph",
		Short:         "Shortest paths and greedy tours over weighted route networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newPathsCmd(a),
		newTourCmd(a),
		newFetchCmd(a),
	)

	return root
}

// setup loads the configuration and builds the logger. Logs go to stderr so
// stdout carries only command output.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), level)
	slog.SetDefault(a.log)

	return nil
}

// strategy resolves the --strategy flag against the configured default.
func (a *app) strategy(flag string) (dijkstra.Strategy, error) {
	if flag == "" {
		flag = a.cfg.Dijkstra.Strategy
	}

	return dijkstra.ParseStrategy(flag)
}

// loadGraph reads a graph file and, when locationsFile is set, geocodes it.
func (a *app) loadGraph(file, locationsFile string) (*core.Graph[float64], error) {
	g, err := ingest.LoadFile(file)
	if err != nil {
		return nil, err
	}
	if locationsFile != "" {
		locs, err := ingest.LoadLocations(locationsFile)
		if err != nil {
			return nil, err
		}
		if err := ingest.Geocode(g, locs); err != nil {
			return nil, fmt.Errorf("%s: %w", locationsFile, err)
		}
	}
	a.log.Info("graph loaded",
		slog.String("file", file),
		slog.Int("vertices", g.Len()),
		slog.Int("arcs", g.EdgeCount()),
	)

	return g, nil
}

// exportKinds parses a comma separated --export value.
func exportKinds(s string) (map[string]bool, error) {
	kinds := map[string]bool{}
	if s == "" {
		return kinds, nil
	}
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		switch k {
		case "force", "map", "dot":
			kinds[k] = true
		default:
			return nil, fmt.Errorf("unknown export %q (want force, map or dot)", k)
		}
	}

	return kinds, nil
}

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/routegraph/routegraph/dijkstra"
	"github.com/routegraph/routegraph/export"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		source    string
		locations string
		strategy  string
		exports   string
		title     string
	)
	cmd := &cobra.Command{
		Use:   "paths GRAPH",
		Short: "Print shortest distances and paths from a source vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := exportKinds(exports)
			if err != nil {
				return err
			}
			strat, err := a.strategy(strategy)
			if err != nil {
				return err
			}
			g, err := a.loadGraph(args[0], locations)
			if err != nil {
				return err
			}

			res, err := dijkstra.ShortestPaths(g, source, dijkstra.WithStrategy(strat))
			if err != nil {
				return err
			}
			a.log.Debug("shortest paths computed",
				slog.String("source", source),
				slog.String("strategy", strat.String()),
				slog.Int("settled", len(res.Order)),
			)
			if err := writePathTable(cmd.OutOrStdout(), res); err != nil {
				return err
			}

			if title == "" {
				title = "Shortest paths from " + source
			}

			return a.exportPaths(cmd.OutOrStdout(), kinds, title, res)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex name")
	cmd.Flags().StringVar(&locations, "locations", "", "locations CSV used to geocode the graph")
	cmd.Flags().StringVar(&strategy, "strategy", "", "vertex selection: linear or heap")
	cmd.Flags().StringVar(&exports, "export", "", "comma separated: force, map, dot")
	cmd.Flags().StringVar(&title, "title", "", "diagram title")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

// writePathTable prints one row per vertex: name, distance, path, label.
func writePathTable(w io.Writer, res *dijkstra.Result[float64]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tPATH\tLABEL")
	for _, e := range res.Entries() {
		dist := "unreachable"
		if e.Reachable {
			dist = fmt.Sprintf("%g", e.Distance)
		}
		path := "-"
		if len(e.Path) > 0 {
			path = strings.Join(e.Path, " -> ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, dist, path, e.Label)
	}

	return tw.Flush()
}

func (a *app) exportPaths(out io.Writer, kinds map[string]bool, title string, res *dijkstra.Result[float64]) error {
	if len(kinds) == 0 {
		return nil
	}
	w := export.NewWriter(a.cfg.Export.Dir, a.log)

	if kinds["force"] {
		data, err := export.ShortestPathTree(title, res)
		if err != nil {
			return err
		}
		files, err := w.WriteForce(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "diagram:", files.Page)
	}
	if kinds["map"] {
		data, err := export.ShortestPathMap(title, res)
		if err != nil {
			return err
		}
		files, err := w.WriteMap(data, a.cfg.MapToken())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "map:", files.Page)
	}
	if kinds["dot"] {
		dot, err := export.DOT(res.Graph(), res.SourceName(), export.TreeLinks(res))
		if err != nil {
			return err
		}
		path, err := w.WriteDOT(dot)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "dot:", path)
	}

	return nil
}

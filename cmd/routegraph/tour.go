package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routegraph/routegraph/export"
	"github.com/routegraph/routegraph/tsp"
)

func newTourCmd(a *app) *cobra.Command {
	var (
		start   string
		exports string
		title   string
	)
	cmd := &cobra.Command{
		Use:   "tour GRAPH",
		Short: "Build a nearest-neighbor round trip from a start vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := exportKinds(exports)
			if err != nil {
				return err
			}
			if kinds["map"] {
				return fmt.Errorf("map export is not available for tours")
			}
			g, err := a.loadGraph(args[0], "")
			if err != nil {
				return err
			}

			tour, err := tsp.NearestNeighbor(g, start)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tour:", strings.Join(tour.Names, " -> "))
			fmt.Fprintf(out, "total: %g\n", tour.Total)

			if title == "" {
				title = "Nearest-neighbor tour from " + start
			}
			w := export.NewWriter(a.cfg.Export.Dir, a.log)
			if kinds["force"] {
				data, err := export.TourDiagram(title, g, tour)
				if err != nil {
					return err
				}
				files, err := w.WriteForce(data)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "diagram:", files.Page)
			}
			if kinds["dot"] {
				dot, err := export.DOT(g, start, export.TourLinks(g, tour))
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
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "start vertex name")
	cmd.Flags().StringVar(&exports, "export", "", "comma separated: force, dot")
	cmd.Flags().StringVar(&title, "title", "", "diagram title")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

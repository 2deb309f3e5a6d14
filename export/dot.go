package export

import (
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/routegraph/routegraph/core"
)

// Colors used in DOT output.
const (
	dotColorDefault   = `"#999999"`
	dotColorHighlight = `"#d62728"`
	dotColorSource    = `"#ff7f0e"`
	dotColorNode      = `"#1f77b4"`
)

// DOT renders g as a directed Graphviz graph. Arcs listed in highlight (by
// source and target name) are drawn thicker and in red; the vertex named
// source, if any, gets its own fill color.
func DOT[W core.Weight](g *core.Graph[W], source string, highlight []Link) (string, error) {
	if g == nil {
		return "", ErrNilInput
	}

	marked := make(map[[2]string]bool, len(highlight))
	for _, l := range highlight {
		marked[[2]string{l.Source, l.Target}] = true
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName("routegraph"); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	attrs := [][2]string{{"rankdir", "LR"}, {"nodesep", "0.5"}, {"ranksep", "0.4"}}
	for _, a := range attrs {
		if err := graph.AddAttr("routegraph", a[0], a[1]); err != nil {
			return "", err
		}
	}

	names := g.Names()
	for _, n := range names {
		fill := dotColorNode
		if n == source {
			fill = dotColorSource
		}
		err := graph.AddNode("routegraph", strconv.Quote(n), map[string]string{
			"label":     strconv.Quote(n),
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": fill,
			"fontcolor": `"#ffffff"`,
		})
		if err != nil {
			return "", err
		}
	}
	for u, from := range names {
		for _, a := range g.Neighbors(u) {
			to := names[a.To]
			edgeAttrs := map[string]string{
				"label": strconv.Quote(strconv.FormatFloat(float64(a.Weight), 'g', -1, 64)),
				"color": dotColorDefault,
			}
			if marked[[2]string{from, to}] {
				edgeAttrs["color"] = dotColorHighlight
				edgeAttrs["penwidth"] = "2"
			}
			if err := graph.AddEdge(strconv.Quote(from), strconv.Quote(to), true, edgeAttrs); err != nil {
				return "", err
			}
		}
	}

	return graph.String(), nil
}

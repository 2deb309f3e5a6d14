package export

import (
	"errors"

	"github.com/routegraph/routegraph/core"
	"github.com/routegraph/routegraph/dijkstra"
	"github.com/routegraph/routegraph/tsp"
)

// Node groups in force data.
const (
	GroupSource = 1
	GroupOther  = 2
)

var (
	// ErrNilInput indicates a nil graph or result.
	ErrNilInput = errors.New("export: nil input")

	// ErrNotGeocoded indicates map output for a vertex without coordinates.
	ErrNotGeocoded = errors.New("export: vertex has no coordinates")
)

// ForceNode is a node of a force diagram.
type ForceNode struct {
	ID    string `json:"id"`
	Group int    `json:"group"`
}

// Link is a weighted arc between two named vertices.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// ForceData is the document read by the force diagram page.
type ForceData struct {
	Title string      `json:"title"`
	Nodes []ForceNode `json:"nodes"`
	Links []Link      `json:"links"`
}

// forceNodes lists every vertex of g, marking source (if >= 0) as GroupSource.
func forceNodes(names []string, source int) []ForceNode {
	nodes := make([]ForceNode, len(names))
	for i, n := range names {
		group := GroupOther
		if i == source {
			group = GroupSource
		}
		nodes[i] = ForceNode{ID: n, Group: group}
	}

	return nodes
}

// ForceGraph exports every vertex and every arc of g, in index and adjacency order.
func ForceGraph[W core.Weight](title string, g *core.Graph[W]) (ForceData, error) {
	if g == nil {
		return ForceData{}, ErrNilInput
	}
	names := g.Names()
	data := ForceData{Title: title, Nodes: forceNodes(names, -1), Links: []Link{}}
	for u := range names {
		for _, a := range g.Neighbors(u) {
			data.Links = append(data.Links, Link{Source: names[u], Target: names[a.To], Value: float64(a.Weight)})
		}
	}

	return data, nil
}

// TreeLinks returns the arcs of the shortest-path tree of res: one link
// predecessor→vertex for every reachable vertex other than the source, in
// settle order.
func TreeLinks[W core.Weight](res *dijkstra.Result[W]) []Link {
	links := []Link{}
	for _, v := range res.Order {
		p := res.Prev[v]
		if v == res.Source || p < 0 {
			continue
		}
		w, _ := res.Graph().Weight(p, v)
		links = append(links, Link{Source: res.Name(p), Target: res.Name(v), Value: float64(w)})
	}

	return links
}

// ShortestPathTree exports all vertices with the source highlighted and the
// arcs of the shortest-path tree.
func ShortestPathTree[W core.Weight](title string, res *dijkstra.Result[W]) (ForceData, error) {
	if res == nil || res.Graph() == nil {
		return ForceData{}, ErrNilInput
	}
	names := make([]string, res.Len())
	for i := range names {
		names[i] = res.Name(i)
	}

	return ForceData{Title: title, Nodes: forceNodes(names, res.Source), Links: TreeLinks(res)}, nil
}

// TourLinks returns the consecutive arcs of a tour, closing arc included.
func TourLinks[W core.Weight](g *core.Graph[W], tour tsp.Tour[W]) []Link {
	links := []Link{}
	for i := 0; i+1 < len(tour.Order); i++ {
		u, v := tour.Order[i], tour.Order[i+1]
		if u == v {
			continue
		}
		w, _ := g.Weight(u, v)
		links = append(links, Link{Source: tour.Names[i], Target: tour.Names[i+1], Value: float64(w)})
	}

	return links
}

// TourDiagram exports all vertices with the tour start highlighted and the
// tour arcs.
func TourDiagram[W core.Weight](title string, g *core.Graph[W], tour tsp.Tour[W]) (ForceData, error) {
	if g == nil || len(tour.Order) == 0 {
		return ForceData{}, ErrNilInput
	}

	return ForceData{Title: title, Nodes: forceNodes(g.Names(), tour.Order[0]), Links: TourLinks(g, tour)}, nil
}

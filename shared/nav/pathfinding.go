package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/piratecove/shared/gamemath"
)

// GraphOptions tunes waypoint edges. Distances are in tiles.
type GraphOptions struct {
	TileSize            float64
	SameHeightTolerance float64 // pixels
	WalkRange           float64
	JumpRange           float64
	WalkCost            float64
	JumpCost            float64
}

// Graph is the waypoint graph built from PURPLE rects.
type Graph struct {
	Nodes []*Waypoint
	opts  GraphOptions
}

// Waypoint is a graph node. It implements astar.Pather.
type Waypoint struct {
	Index int
	Rect  gamemath.Rect
	edges []edge
	graph *Graph
}

type edge struct {
	to   *Waypoint
	cost float64
}

// NewGraph connects every pair of waypoints that a ground enemy can travel
// between: nearly level pairs within walking range cost WalkCost, pairs a
// short hop apart vertically cost JumpCost.
func NewGraph(rects []gamemath.Rect, opts GraphOptions) *Graph {
	g := &Graph{opts: opts}
	for i, r := range rects {
		g.Nodes = append(g.Nodes, &Waypoint{Index: i, Rect: r, graph: g})
	}

	tile := opts.TileSize
	for _, a := range g.Nodes {
		for _, b := range g.Nodes {
			if a == b {
				continue
			}
			dx := math.Abs(b.Rect.CenterX() - a.Rect.CenterX())
			dy := math.Abs(b.Rect.CenterY() - a.Rect.CenterY())
			switch {
			case dy <= opts.SameHeightTolerance && dx <= opts.WalkRange*tile:
				a.edges = append(a.edges, edge{to: b, cost: opts.WalkCost})
			case dy > opts.SameHeightTolerance && dy <= opts.JumpRange*tile && dx <= opts.JumpRange*tile:
				a.edges = append(a.edges, edge{to: b, cost: opts.JumpCost})
			}
		}
	}
	return g
}

// PathNeighbors returns connected waypoints (implements astar.Pather)
func (w *Waypoint) PathNeighbors() []astar.Pather {
	out := make([]astar.Pather, len(w.edges))
	for i, e := range w.edges {
		out[i] = e.to
	}
	return out
}

// PathNeighborCost returns the edge cost (implements astar.Pather)
func (w *Waypoint) PathNeighborCost(to astar.Pather) float64 {
	target := to.(*Waypoint)
	for _, e := range w.edges {
		if e.to == target {
			return e.cost
		}
	}
	return math.Inf(1)
}

// PathEstimatedCost is the Manhattan distance in tile units (implements
// astar.Pather). It can overestimate a single jump edge, so paths are not
// guaranteed optimal.
func (w *Waypoint) PathEstimatedCost(to astar.Pather) float64 {
	target := to.(*Waypoint)
	tile := w.graph.opts.TileSize
	dx := math.Abs(target.Rect.CenterX() - w.Rect.CenterX())
	dy := math.Abs(target.Rect.CenterY() - w.Rect.CenterY())
	return (dx + dy) / tile
}

// Degree returns the number of outgoing edges.
func (w *Waypoint) Degree() int {
	return len(w.edges)
}

// Nearest returns the waypoint whose centre is closest to the point.
func (g *Graph) Nearest(x, y float64) *Waypoint {
	var best *Waypoint
	bestD := math.Inf(1)
	for _, n := range g.Nodes {
		d := gamemath.Distance(x, y, n.Rect.CenterX(), n.Rect.CenterY())
		if d < bestD {
			best, bestD = n, d
		}
	}
	return best
}

// FindPath runs A* between two waypoints and returns the route start-first.
// A start equal to the goal yields a single-node path; an unreachable goal
// yields ok=false.
func (g *Graph) FindPath(from, to *Waypoint) ([]*Waypoint, bool) {
	if from == nil || to == nil {
		return nil, false
	}
	if from == to {
		return []*Waypoint{from}, true
	}

	path, _, found := astar.Path(from, to)
	if !found {
		return nil, false
	}

	// astar returns the path goal-first
	out := make([]*Waypoint, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p.(*Waypoint)
	}
	return out, true
}

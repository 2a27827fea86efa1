package factory

import (
	"fmt"

	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
)

// LevelReport summarizes what a level will spawn and what looks wrong with
// it. Problems do not stop the level from loading unless the player spawn
// is missing.
type LevelReport struct {
	Name        string
	Enemies     map[cfg.Species]int
	Pickups     int
	Checkpoints int
	LevelEnds   int
	Zones       int
	Waypoints   int
	Problems    []string
}

// OK reports whether the level has no problems.
func (r LevelReport) OK() bool {
	return len(r.Problems) == 0
}

// InspectLevel runs the same zone and graph construction CreateLevel does
// without building a world.
func InspectLevel(lvl *leveldata.Level) LevelReport {
	r := LevelReport{
		Name:        lvl.Name,
		Enemies:     map[cfg.Species]int{},
		Pickups:     len(lvl.Pickups),
		Checkpoints: len(lvl.Checkpoints),
		LevelEnds:   len(lvl.LevelEnds),
	}
	problem := func(format string, args ...any) {
		r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
	}

	if lvl.PlayerSpawn == nil {
		problem("%v", ErrNoPlayerSpawn)
	}
	if len(lvl.LevelEnds) == 0 {
		problem("no level end flag")
	}

	zones := levelZones(lvl)
	r.Zones = len(zones)
	for _, z := range zones {
		if !z.Validated {
			problem("danger zone %q has %d markers and is not a rectangle of four corners", z.Group, z.Markers)
		}
	}

	graph := levelGraph(lvl)
	r.Waypoints = len(graph.Nodes)
	for _, w := range graph.Nodes {
		if w.Degree() == 0 && len(graph.Nodes) > 1 {
			problem("waypoint at (%.0f, %.0f) has no neighbours", w.Rect.X, w.Rect.Y)
		}
	}

	for _, e := range lvl.Enemies {
		species := speciesOf(e.Kind)
		r.Enemies[species]++
		if species != cfg.SpeciesPinkStar {
			continue
		}
		x, y := e.Rect.CenterX(), e.Rect.CenterY()
		if _, ok := lairFor(zones, x, y); !ok {
			problem("pink star at (%.0f, %.0f) has no validated danger zone", e.Rect.X, e.Rect.Y)
		}
		if len(graph.Nodes) == 0 {
			problem("pink star at (%.0f, %.0f) has no waypoints to path over", e.Rect.X, e.Rect.Y)
		}
	}
	return r
}

package factory

import (
	"errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/shared/nav"
	"github.com/automoto/piratecove/storage"
	"github.com/automoto/piratecove/tags"
)

var ErrNoPlayerSpawn = errors.New("no player spawn defined in level")

// CreateLevel populates the world from a parsed level. saved, when it holds
// an unfinished run, restores the checkpoint: the player starts there and
// collected pickups and killed enemies stay gone.
//
// The sim singleton should exist first so spawns share its random source.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, index int, saved *storage.LevelProgress) (*donburi.Entry, error) {
	if lvl.PlayerSpawn == nil {
		return nil, ErrNoPlayerSpawn
	}

	cell := int(lvl.TileSize / 2)
	if cell <= 0 {
		cell = 16
	}
	CreateSpace(ecs, int(lvl.Width), int(lvl.Height), cell, cell)

	progress := components.NewProgress()
	if saved != nil && !saved.ReachedEnd {
		restoreProgress(&progress, saved)
	}

	logger := simLogger(ecs)
	zones := levelZones(lvl)
	for _, z := range zones {
		if !z.Validated {
			logger.Warn("danger zone not validated", "level", lvl.Name, "group", z.Group, "markers", z.Markers)
		}
	}
	purple := leveldata.Rects(lvl.Purple)
	graph := levelGraph(lvl)
	if len(graph.Nodes) == 0 && len(lvl.Enemies) > 0 {
		logger.Debug("level has no waypoints", "level", lvl.Name)
	}

	obstacles := leveldata.Rects(lvl.Obstacles)
	red := leveldata.Rects(lvl.Red)
	occluders := make([]gamemath.Rect, 0, len(obstacles)+len(red))
	occluders = append(occluders, obstacles...)
	occluders = append(occluders, red...)

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Level:     lvl,
		Index:     index,
		Zones:     zones,
		Graph:     graph,
		Purple:    purple,
		Occluders: occluders,
		Progress:  progress,
	})

	for _, r := range obstacles {
		CreateObstacle(ecs, r)
	}
	for _, c := range lvl.Hazards {
		CreateHazard(ecs, c.Rect)
	}
	for _, r := range red {
		CreateConstraint(ecs, r, tags.ResolvRed)
	}
	for _, r := range purple {
		CreateConstraint(ecs, r, tags.ResolvPurple)
	}
	for _, m := range lvl.Orange {
		CreateConstraint(ecs, m.Rect, tags.ResolvOrange)
	}
	for _, c := range lvl.Checkpoints {
		CreateFlag(ecs, c, false)
	}
	for _, c := range lvl.LevelEnds {
		CreateFlag(ecs, c, true)
	}
	for _, p := range lvl.Pickups {
		if progress.Collected[p.ID] {
			continue
		}
		CreatePickup(ecs, p)
	}
	for _, e := range lvl.Enemies {
		if progress.Killed[e.ID] {
			continue
		}
		CreateEnemy(ecs, e, zones)
	}

	x, bottom := lvl.PlayerSpawn.Rect.CenterX(), lvl.PlayerSpawn.Rect.Bottom()
	if progress.Checkpoint != nil {
		x, bottom = progress.Checkpoint.X, progress.Checkpoint.Y
	}
	player := CreatePlayer(ecs, x, bottom)
	if saved != nil && !saved.ReachedEnd && saved.HasCheckpoint {
		restorePlayer(player, saved)
	}

	camera := CreateCamera(ecs)
	cam := components.Camera.Get(camera)
	r := components.Object.Get(player).Rect()
	cam.Position = math.Vec2{X: r.CenterX(), Y: r.CenterY()}

	return level, nil
}

func restoreProgress(p *components.ProgressData, saved *storage.LevelProgress) {
	if saved.HasCheckpoint {
		p.Checkpoint = &math.Vec2{X: saved.CheckpointX, Y: saved.CheckpointY}
	}
	p.Coins = saved.Coins
	p.Deaths = saved.Deaths
	p.Ticks = int(saved.TimeTaken * float64(cfg.C.FPS))
	for _, id := range saved.CollectedIDs {
		p.Collected[id] = true
	}
	for _, id := range saved.KilledIDs {
		p.Killed[id] = true
	}
}

// restorePlayer carries inventory over from the checkpoint. Health comes back
// full when the save recorded a dead player.
func restorePlayer(player *donburi.Entry, saved *storage.LevelProgress) {
	p := components.Player.Get(player)
	p.Ammo = saved.Ammo
	p.Grenades = saved.Grenades
	p.Coins = saved.Coins

	if saved.Health > 0 {
		h := components.Health.Get(player)
		h.Current = min(saved.Health, h.Max)
	}
}

func levelZones(lvl *leveldata.Level) []nav.Zone {
	markers := make([]nav.Marker, len(lvl.Orange))
	for i, m := range lvl.Orange {
		markers[i] = nav.Marker{Rect: m.Rect, Group: m.Zone}
	}
	return nav.DangerZones(markers, cfg.Nav.MarkerTolerance)
}

func levelGraph(lvl *leveldata.Level) *nav.Graph {
	return nav.NewGraph(leveldata.Rects(lvl.Purple), nav.GraphOptions{
		TileSize:            lvl.TileSize,
		SameHeightTolerance: cfg.Nav.SameHeightTolerance,
		WalkRange:           cfg.Nav.WalkRangeTiles,
		JumpRange:           cfg.Nav.JumpRangeTiles,
		WalkCost:            cfg.Nav.WalkCost,
		JumpCost:            cfg.Nav.JumpCost,
	})
}

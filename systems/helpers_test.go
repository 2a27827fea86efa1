package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/shared/nav"
	"github.com/automoto/piratecove/systems/factory"
)

const (
	testWidth  = 960.0
	testHeight = 480.0
	testTile   = 48.0
	floorTop   = 400.0
)

// soundRecorder collects played sounds.
type soundRecorder struct {
	played []cfg.SoundID
}

func (r *soundRecorder) Play(id cfg.SoundID) {
	r.played = append(r.played, id)
}

type testWorld struct {
	ecs    *ecs.ECS
	sounds *soundRecorder
	level  *components.LevelData
}

// newTestWorld builds a headless world with a level component, a space and
// a floor spanning the whole width.
func newTestWorld(t *testing.T, zones ...nav.Zone) *testWorld {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	sounds := &soundRecorder{}
	factory.CreateSim(w, components.SimData{Sounds: sounds})
	factory.CreateSpace(w, int(testWidth), int(testHeight), 24, 24)

	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		Level: &leveldata.Level{
			Name:     "test",
			TileSize: testTile,
			Width:    testWidth,
			Height:   testHeight,
		},
		Zones:    zones,
		Progress: components.NewProgress(),
	})
	factory.CreateObstacle(w, gamemath.NewRect(0, floorTop, testWidth, testTile))

	level, ok := levelOf(w)
	require.True(t, ok)
	return &testWorld{ecs: w, sounds: sounds, level: level}
}

// spawnEnemy places an enemy whose feet rest on the floor, centred on x.
func (tw *testWorld) spawnEnemy(kind leveldata.EnemyKind, id int, x float64) *donburi.Entry {
	return factory.CreateEnemy(tw.ecs, leveldata.EnemySpawn{
		Cell: leveldata.Cell{ID: id, Rect: gamemath.NewRect(x-testTile/2, floorTop-testTile, testTile, testTile)},
		Kind: kind,
	}, tw.level.Zones)
}

func (tw *testWorld) spawnPlayer(x float64) *donburi.Entry {
	return factory.CreatePlayer(tw.ecs, x, floorTop)
}

func (tw *testWorld) count(tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(tw.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func (tw *testWorld) played(id cfg.SoundID) bool {
	for _, p := range tw.sounds.played {
		if p == id {
			return true
		}
	}
	return false
}

// fixedRoll is a random source that always yields the same value, so every
// chance roll either always or never succeeds.
type fixedRoll uint64

func (f fixedRoll) Uint64() uint64 { return uint64(f) }

const (
	rollLucky   fixedRoll = 1 << 10
	rollUnlucky fixedRoll = ^fixedRoll(0)
)

func (tw *testWorld) setRoll(src fixedRoll) {
	simOf(tw.ecs).Rand = rand.New(src)
}

// placePlayer moves the player so its centre is at x and its feet at bottom.
func (tw *testWorld) placePlayer(player *donburi.Entry, x, bottom float64) {
	body := components.Body.Get(player)
	obj := components.Object.Get(player)
	body.Position.X = x - obj.W/2
	body.Position.Y = bottom - obj.H
	syncObject(body, obj)
}

// think runs one decision step of an enemy's brain.
func (tw *testWorld) think(e *donburi.Entry) {
	ctx, ok := newTickContext(tw.ecs)
	if !ok {
		return
	}
	brains[components.Enemy.Get(e).Species].think(ctx, e)
}

// touch runs the contact step of an enemy's brain.
func (tw *testWorld) touch(e *donburi.Entry) {
	ctx, ok := newTickContext(tw.ecs)
	if !ok {
		return
	}
	brains[components.Enemy.Get(e).Species].contact(ctx, e)
}

// grounded spawns an enemy already standing on the floor.
func (tw *testWorld) grounded(kind leveldata.EnemyKind, smart bool, x float64) *donburi.Entry {
	e := tw.spawnEnemy(kind, 1, x)
	components.Body.Get(e).OnGround = true
	components.Enemy.Get(e).Smart = smart
	return e
}

package systems

import (
	"math"
	"math/rand/v2"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	"github.com/automoto/piratecove/logging"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

// fallbackSim serves worlds created without a sim singleton, such as small
// test worlds.
var fallbackSim = &components.SimData{
	Rand:   rand.New(rand.NewPCG(1, 2)),
	Logger: logging.Discard(),
}

func simOf(ecs *ecs.ECS) *components.SimData {
	if e, ok := components.Sim.First(ecs.World); ok {
		return components.Sim.Get(e)
	}
	return fallbackSim
}

func levelOf(ecs *ecs.ECS) (*components.LevelData, bool) {
	if e, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(e), true
	}
	return nil, false
}

func playerOf(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

// tickContext is the per-tick snapshot the enemy brains read.
type tickContext struct {
	ecs   *ecs.ECS
	sim   *components.SimData
	level *components.LevelData

	player      *donburi.Entry
	playerRect  gamemath.Rect
	playerAlive bool
	worldW      float64
}

func newTickContext(ecs *ecs.ECS) (*tickContext, bool) {
	level, ok := levelOf(ecs)
	if !ok {
		return nil, false
	}
	ctx := &tickContext{
		ecs:    ecs,
		sim:    simOf(ecs),
		level:  level,
		worldW: level.Level.Width,
	}
	if p, ok := playerOf(ecs); ok {
		ctx.player = p
		ctx.playerRect = components.Object.Get(p).Rect()
		ctx.playerAlive = components.Health.Get(p).Alive && !components.Player.Get(p).Dying
	}
	return ctx, true
}

func (c *tickContext) rand() *rand.Rand {
	if c.sim.Rand != nil {
		return c.sim.Rand
	}
	return fallbackSim.Rand
}

// behind reports whether other lies behind r for the given facing, by more
// than margin pixels.
func behind(r gamemath.Rect, facing float64, other gamemath.Rect, margin float64) bool {
	dx := other.CenterX() - r.CenterX()
	if facing < 0 {
		return dx > margin
	}
	return dx < -margin
}

// facingToward returns the facing that points from r to other, keeping
// current when they are level.
func facingToward(r, other gamemath.Rect, current float64) float64 {
	dx := other.CenterX() - r.CenterX()
	if dx == 0 {
		return current
	}
	return math.Copysign(1, dx)
}

// tickDown decrements every positive counter.
func tickDown(counters ...*int) {
	for _, c := range counters {
		if *c > 0 {
			*c--
		}
	}
}

package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

// enemyBrain is the per-species behaviour. think runs before movement and
// sets facing and speed; contact runs after movement against the player.
type enemyBrain interface {
	think(ctx *tickContext, e *donburi.Entry)
	contact(ctx *tickContext, e *donburi.Entry)
	sheet(e *donburi.Entry) string
}

var brains = map[cfg.Species]enemyBrain{
	cfg.SpeciesFierceTooth: fierceToothBrain{},
	cfg.SpeciesSeashell:    seashellBrain{},
	cfg.SpeciesPinkStar:    pinkStarBrain{},
}

// UpdateEnemies is the first gameplay system of a tick and advances the
// sim clock.
func UpdateEnemies(ecs *ecs.ECS) {
	ctx, ok := newTickContext(ecs)
	if !ok {
		return
	}
	ctx.sim.Tick++

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		en := components.Enemy.Get(e)
		h := components.Health.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		tickDown(&h.BarTimer, &h.HitStun)

		// Corpses keep falling until the death system removes them.
		if !h.Alive {
			StepVertical(body, obj)
			sprite.Update(body.Facing)
			return
		}

		brain := brains[en.Species]
		brain.think(ctx, e)
		moveEnemy(ctx, e)
		brain.contact(ctx, e)

		sprite.SetSheet(brain.sheet(e))
		sprite.Update(body.Facing)
	})
}

// moveEnemy integrates the enemy. Walls flip it without stopping it; the
// world edges flip and stop it.
func moveEnemy(ctx *tickContext, e *donburi.Entry) {
	en := components.Enemy.Get(e)
	body := components.Body.Get(e)
	obj := components.Object.Get(e)

	StepVertical(body, obj)
	if contact := StepHorizontal(body, obj, body.Facing*en.Speed); contact != 0 {
		body.Facing = -contact
	}

	switch {
	case body.Position.X < 0:
		body.Position.X = 0
		body.Facing = cfg.DirectionRight
		body.Velocity.X = 0
	case body.Position.X+obj.W > ctx.worldW:
		body.Position.X = ctx.worldW - obj.W
		body.Facing = cfg.DirectionLeft
		body.Velocity.X = 0
	default:
		return
	}
	syncObject(body, obj)
}

// patrol toggles Idle and Running when the dwell runs out. Leaving Idle may
// turn the enemy around unless random turns are suppressed.
func patrol(ctx *tickContext, en *components.EnemyData, body *components.BodyData) {
	if !en.FSM.Is(cfg.StateIdle, cfg.StateRunning) {
		return
	}
	en.Dwell--
	if en.Dwell > 0 {
		return
	}
	wasIdle := en.FSM.Is(cfg.StateIdle)
	en.FSM.Fire(cfg.EventDwellElapsed)
	en.Dwell = randDwell(ctx)
	if wasIdle && en.SuppressRandomTurns == 0 && ctx.rand().Float64() < cfg.Enemy.RandomTurnChance {
		body.Facing = -body.Facing
	}
}

func randDwell(ctx *tickContext) int {
	lo, hi := cfg.Enemy.DwellMin, cfg.Enemy.DwellMax
	if hi <= lo {
		return lo
	}
	return lo + ctx.rand().IntN(hi-lo+1)
}

// canSee is the vision test: the player centre inside the cone and no
// occluder on the segment between centres.
func canSee(ctx *tickContext, r gamemath.Rect, facing, halfAngle, rangePx float64) bool {
	if !ctx.playerAlive {
		return false
	}
	ox, oy := r.CenterX(), r.CenterY()
	px, py := ctx.playerRect.CenterX(), ctx.playerRect.CenterY()
	if !gamemath.InCone(ox, oy, facing, px, py, halfAngle, rangePx) {
		return false
	}
	return gamemath.LineOfSight(ox, oy, px, py, ctx.level.Occluders)
}

// trackLostVision is the smart reaction to losing sight: inside the window,
// a player behind gets a turn; one ahead suppresses random turns.
func trackLostVision(ctx *tickContext, en *components.EnemyData, body *components.BodyData, r gamemath.Rect,
	prevSeen, seen bool, window, turnCooldown, suppress int, margin float64) bool {
	if prevSeen && !seen {
		en.LostVisionTimer = window
	}
	if seen || en.LostVisionTimer == 0 || !ctx.playerAlive {
		return false
	}
	if behind(r, body.Facing, ctx.playerRect, margin) {
		if en.TurnCooldown == 0 {
			body.Facing = -body.Facing
			en.TurnCooldown = turnCooldown
			return true
		}
		return false
	}
	en.SuppressRandomTurns = suppress
	return false
}

// nearestGrenade finds a live grenade inside the cone within rangePx.
func nearestGrenade(ctx *tickContext, r gamemath.Rect, facing, halfAngle, rangePx float64) (gamemath.Rect, bool) {
	var (
		best  gamemath.Rect
		found bool
		bestD = rangePx
	)
	tags.Grenade.Each(ctx.ecs.World, func(g *donburi.Entry) {
		if components.Grenade.Get(g).Blasting {
			return
		}
		gr := components.Object.Get(g).Rect()
		if !gamemath.InCone(r.CenterX(), r.CenterY(), facing, gr.CenterX(), gr.CenterY(), halfAngle, rangePx) {
			return
		}
		if d := gamemath.CenterDistance(r, gr); d <= bestD {
			best, bestD, found = gr, d, true
		}
	})
	return best, found
}

// stomped handles an enemy landing on the player from above. It snaps the
// enemy onto the player's head and reports whether it happened.
func stomped(ctx *tickContext, e *donburi.Entry, damage int) bool {
	body := components.Body.Get(e)
	obj := components.Object.Get(e)
	r := obj.Rect()
	p := ctx.playerRect
	if body.Velocity.Y <= 0 || r.CenterY() >= p.CenterY() || r.Bottom() < p.Top() {
		return false
	}
	body.Position.Y = p.Top() - obj.H
	body.Velocity.Y = 0
	syncObject(body, obj)
	ApplyHit(ctx.ecs, ctx.player, e, damage)
	simOf(ctx.ecs).Play(cfg.SoundStomp)
	return true
}

// movingSheet picks the sheet for a walking species.
func movingSheet(en *components.EnemyData, body *components.BodyData) string {
	switch {
	case en.FSM.Is(cfg.StateHit):
		return cfg.SheetHit
	case en.FSM.Is(cfg.StateAttack, cfg.StateRecover):
		return cfg.SheetAttack
	case !body.OnGround && body.Velocity.Y < 0:
		return cfg.SheetJump
	case !body.OnGround && body.Velocity.Y > 0:
		return cfg.SheetFall
	case en.Speed > 0:
		return cfg.SheetRun
	}
	return cfg.SheetIdle
}

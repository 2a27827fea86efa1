package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/systems/factory"
)

// seashellBrain never walks. It fires pearls down a narrow cone and bites
// when the player comes close.
type seashellBrain struct{}

func (seashellBrain) think(ctx *tickContext, e *donburi.Entry) {
	c := cfg.Seashell
	en := components.Enemy.Get(e)
	ss := components.Seashell.Get(e)
	body := components.Body.Get(e)
	h := components.Health.Get(e)
	r := components.Object.Get(e).Rect()

	en.Speed = 0
	tickDown(&ss.FireCooldown, &ss.BiteCooldown, &en.TurnCooldown, &en.LostVisionTimer, &en.SuppressRandomTurns)
	en.FSM.Tick()

	seen := canSee(ctx, r, body.Facing, c.VisionHalfAngle, c.VisionRange)
	// Shells only see at or above their own base.
	if seen && ctx.playerRect.Bottom() > r.Bottom() {
		seen = false
	}
	prevSeen := en.PlayerSeen
	en.PlayerSeen = seen
	dist := gamemath.CenterDistance(r, ctx.playerRect)

	if h.Stunned() {
		en.FSM.Fire(cfg.EventStunned)
		ss.BiteCooldown = c.HitBiteCooldown
		return
	}
	en.FSM.Fire(cfg.EventStunOver)

	if en.WasHitFromBehind {
		en.WasHitFromBehind = false
		firePearl(ctx, r, body.Facing)
		ss.FireCooldown = c.FireCooldown
	}

	if en.Smart {
		watchGrenades(ctx, body, r)
		trackLostVision(ctx, en, body, r, prevSeen, seen,
			c.LostVisionWindow, c.TurnCooldown, 0, c.BehindMargin)
	}

	if en.FSM.Is(cfg.StateBite) {
		if en.FSM.Ticks >= c.BiteTicks {
			en.FSM.Fire(cfg.EventBiteOver)
		} else {
			bite(ctx, e, ss, dist)
		}
		return
	}

	switch {
	case seen && dist <= c.BiteRange:
		en.FSM.Fire(cfg.EventPlayerInReach)
	case seen:
		en.FSM.Fire(cfg.EventSpotPlayer)
	default:
		en.FSM.Fire(cfg.EventLosePlayer)
	}

	switch {
	case en.FSM.Is(cfg.StateBite):
		bite(ctx, e, ss, dist)
	case en.FSM.Is(cfg.StateFire) && ss.FireCooldown == 0:
		firePearl(ctx, r, body.Facing)
		ss.FireCooldown = c.FireCooldown
	}
}

func (seashellBrain) contact(ctx *tickContext, e *donburi.Entry) {
	if !ctx.playerAlive || !Collide(e, ctx.player) {
		return
	}
	c := cfg.Seashell
	en := components.Enemy.Get(e)
	ss := components.Seashell.Get(e)
	body := components.Body.Get(e)
	h := components.Health.Get(e)
	r := components.Object.Get(e).Rect()

	if en.Smart && !h.Stunned() && en.TurnCooldown == 0 && !en.FSM.Is(cfg.StateBite) &&
		behind(r, body.Facing, ctx.playerRect, c.BehindMargin) {
		body.Facing = -body.Facing
		en.TurnCooldown = c.TurnCooldown
		ss.BiteCooldown = 0
		en.FSM.Fire(cfg.EventPlayerInReach)
	}
}

func (seashellBrain) sheet(e *donburi.Entry) string {
	en := components.Enemy.Get(e)
	switch {
	case en.FSM.Is(cfg.StateHit):
		return cfg.SheetHit
	case en.FSM.Is(cfg.StateBite):
		return cfg.SheetBite
	case en.FSM.Is(cfg.StateFire):
		return cfg.SheetFire
	}
	return cfg.SheetIdle
}

func bite(ctx *tickContext, e *donburi.Entry, ss *components.SeashellData, dist float64) {
	if ss.BiteCooldown > 0 || !ctx.playerAlive || dist > cfg.Seashell.BiteRange {
		return
	}
	ss.BiteCooldown = cfg.Seashell.BiteCooldown
	ApplyHit(ctx.ecs, ctx.player, e, cfg.Seashell.BiteDamage)
}

func firePearl(ctx *tickContext, r gamemath.Rect, facing float64) {
	x := r.CenterX() + facing*r.W/2
	factory.CreateProjectile(ctx.ecs, components.ProjectilePearl, x, r.CenterY(), facing)
	ctx.sim.Play(cfg.SoundPearl)
}

// watchGrenades faces the side a nearby grenade is on. Shells notice
// grenades all around them, not just inside the cone.
func watchGrenades(ctx *tickContext, body *components.BodyData, r gamemath.Rect) {
	g, ok := nearestGrenade(ctx, r, body.Facing, 180, cfg.Seashell.GrenadeAlertRange)
	if ok {
		body.Facing = facingToward(r, g, body.Facing)
	}
}

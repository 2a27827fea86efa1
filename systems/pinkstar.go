package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
)

// pinkStarBrain guards a danger zone. It chases only while the player is
// inside its lair, walking the PURPLE waypoint graph, and falls back to a
// straight run at the player when no path exists.
type pinkStarBrain struct{}

func (pinkStarBrain) think(ctx *tickContext, e *donburi.Entry) {
	c := cfg.PinkStar
	en := components.Enemy.Get(e)
	ps := components.PinkStar.Get(e)
	body := components.Body.Get(e)
	h := components.Health.Get(e)
	r := components.Object.Get(e).Rect()

	tickDown(&en.AttackCooldown, &ps.RepathTimer, &en.SuppressRandomTurns)
	en.FSM.Tick()

	if h.Stunned() {
		en.FSM.Fire(cfg.EventStunned)
		en.AttackCooldown = c.HitAttackCooldown
		en.Speed = 0
		ps.Chasing = false
		return
	}
	en.FSM.Fire(cfg.EventStunOver)

	if en.FSM.Is(cfg.StateRecover) {
		en.Speed = 0
		ps.Chasing = false
		if en.FSM.Ticks >= c.RecoveryTicks {
			en.FSM.Fire(cfg.EventRecovered)
			en.Dwell = randDwell(ctx)
		}
		return
	}

	p := ctx.playerRect
	dist := gamemath.CenterDistance(r, p)
	facing := p.CenterX() == r.CenterX() || math.Signbit(p.CenterX()-r.CenterX()) == math.Signbit(body.Facing)
	inReach := ctx.playerAlive && dist <= c.ReachRange && facing
	inLair := ctx.playerAlive && ps.HasLair && ps.Lair.Contains(p.CenterX(), p.CenterY())

	switch {
	case inReach:
		en.FSM.Fire(cfg.EventPlayerInReach)
	case inLair:
		en.FSM.Fire(cfg.EventSpotPlayer)
	default:
		en.FSM.Fire(cfg.EventLosePlayer)
	}
	patrol(ctx, en, body)

	switch {
	case en.FSM.Is(cfg.StateChase, cfg.StateAttack):
		en.Speed = c.ChaseSpeed
		ps.Chasing = true
		pursue(ctx, ps, body, r)
	case en.FSM.Is(cfg.StateRunning):
		en.Speed = c.PatrolSpeed
		ps.Chasing = false
		ps.Path = nil
	default:
		en.Speed = 0
		ps.Chasing = false
		ps.Path = nil
	}
}

// pursue steers along the current path, replanning on a timer or when the
// path runs out.
func pursue(ctx *tickContext, ps *components.PinkStarData, body *components.BodyData, r gamemath.Rect) {
	g := ctx.level.Graph
	if g == nil || len(g.Nodes) == 0 {
		directChase(ctx, body, r)
		return
	}

	if _, ok := ps.NextWaypoint(); !ok || ps.RepathTimer == 0 {
		from := g.Nearest(r.CenterX(), r.CenterY())
		to := g.Nearest(ctx.playerRect.CenterX(), ctx.playerRect.CenterY())
		ps.Path, ps.PathIndex = nil, 0
		if path, found := g.FindPath(from, to); found {
			ps.Path = path
		}
		ps.RepathTimer = cfg.PinkStar.RepathTicks
	}

	wp, ok := ps.NextWaypoint()
	for ok && r.Overlaps(wp.Rect) {
		ps.PathIndex++
		wp, ok = ps.NextWaypoint()
	}
	if !ok {
		directChase(ctx, body, r)
		return
	}

	body.Facing = facingToward(r, wp.Rect, body.Facing)
	rise := r.Bottom() - wp.Rect.Bottom()
	if body.OnGround && rise > cfg.PinkStar.JumpThreshold &&
		math.Abs(wp.Rect.CenterX()-r.CenterX()) <= ctx.level.Level.TileSize*cfg.Nav.JumpRangeTiles {
		Jump(body)
	}
}

// directChase runs straight at the player.
func directChase(ctx *tickContext, body *components.BodyData, r gamemath.Rect) {
	body.Facing = facingToward(r, ctx.playerRect, body.Facing)
	if body.OnGround && r.Bottom()-ctx.playerRect.Bottom() > cfg.PinkStar.JumpThreshold &&
		math.Abs(ctx.playerRect.CenterX()-r.CenterX()) <= ctx.level.Level.TileSize {
		Jump(body)
	}
}

func (pinkStarBrain) contact(ctx *tickContext, e *donburi.Entry) {
	if !ctx.playerAlive || !Collide(e, ctx.player) {
		return
	}
	c := cfg.PinkStar
	en := components.Enemy.Get(e)
	ps := components.PinkStar.Get(e)
	h := components.Health.Get(e)

	if stomped(ctx, e, c.StompDamage) {
		en.FSM.Fire(cfg.EventAttackLanded)
		en.AttackCooldown = c.AttackCooldown
		ps.Chasing = false
		return
	}

	r := components.Object.Get(e).Rect()
	heightDiff := math.Abs(r.Bottom() - ctx.playerRect.Bottom())
	if en.FSM.Is(cfg.StateAttack) && en.AttackCooldown == 0 && !h.Stunned() && heightDiff < c.MeleeHeightTolerance {
		ApplyHit(ctx.ecs, ctx.player, e, c.MeleeDamage)
		en.FSM.Fire(cfg.EventAttackLanded)
		en.AttackCooldown = c.AttackCooldown
		ps.Chasing = false
	}
}

func (pinkStarBrain) sheet(e *donburi.Entry) string {
	return movingSheet(components.Enemy.Get(e), components.Body.Get(e))
}

package systems

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/systems/factory"
	"github.com/automoto/piratecove/tags"
)

// fierceToothBrain patrols, chases what it sees, bites up close and fires
// cannonballs from range. Smart ones also dodge shots, flee grenades and keep
// chasing a player that dropped below them.
type fierceToothBrain struct{}

func (fierceToothBrain) think(ctx *tickContext, e *donburi.Entry) {
	c := cfg.FierceTooth
	en := components.Enemy.Get(e)
	ft := components.FierceTooth.Get(e)
	body := components.Body.Get(e)
	h := components.Health.Get(e)
	r := components.Object.Get(e).Rect()

	tickDown(&ft.ShootCooldown, &ft.DodgeCooldown, &ft.FleeTimer, &ft.RecheckTimer, &ft.ContinueChase,
		&en.AttackCooldown, &en.TurnCooldown, &en.SuppressRandomTurns, &en.LostVisionTimer)
	en.FSM.Tick()

	seen := canSee(ctx, r, body.Facing, c.VisionHalfAngle, c.VisionRange)
	// Never sees a player below its feet while standing.
	if seen && body.OnGround && ctx.playerRect.Bottom() > r.Bottom() {
		seen = false
	}
	prevSeen := en.PlayerSeen
	en.PlayerSeen = seen
	dist := gamemath.CenterDistance(r, ctx.playerRect)

	if h.Stunned() {
		en.FSM.Fire(cfg.EventStunned)
		en.AttackCooldown = c.HitAttackCooldown
		en.Speed = 0
		return
	}
	en.FSM.Fire(cfg.EventStunOver)

	if en.WasHitFromBehind {
		en.WasHitFromBehind = false
		fireCannon(ctx, r, body.Facing)
		ft.ShootCooldown = c.ShootCooldown
	}

	if en.FSM.Is(cfg.StateRecover) {
		en.Speed = 0
		ft.ShootCooldown = c.RecoveryShootCooldown
		if en.FSM.Ticks >= c.RecoveryTicks {
			en.FSM.Fire(cfg.EventRecovered)
			en.Dwell = randDwell(ctx)
		}
		return
	}

	if en.Smart {
		fleeGrenades(ctx, en, ft, body, r)
		dodgeShots(ctx, ft, body, r)
		if ft.RecheckTimer == 0 {
			turned := trackLostVision(ctx, en, body, r, prevSeen, seen,
				c.LostVisionWindow, c.TurnCooldown, c.SuppressRandomTurns, c.BehindMargin)
			if turned {
				ft.RecheckTimer = c.RecheckTurn
			}
		}
		if prevSeen && !seen && body.OnGround && ctx.playerAlive && ctx.playerRect.Bottom() > r.Bottom() {
			ft.ContinueChase = c.ContinueChaseTicks
		}
	}

	if en.FSM.Is(cfg.StateFlee) {
		if ft.FleeTimer > 0 {
			en.Speed = math.Max(c.PatrolSpeed, c.FleeSpeed)
			return
		}
		en.FSM.Fire(cfg.EventFleeOver)
	}

	switch {
	case seen && dist <= c.AttackRange:
		en.FSM.Fire(cfg.EventPlayerInReach)
	case seen:
		en.FSM.Fire(cfg.EventSpotPlayer)
	case ft.ContinueChase > 0:
	default:
		en.FSM.Fire(cfg.EventLosePlayer)
	}
	patrol(ctx, en, body)

	switch {
	case en.FSM.Is(cfg.StateChase, cfg.StateAttack) || ft.ContinueChase > 0:
		en.Speed = c.ChaseSpeed
	case en.FSM.Is(cfg.StateRunning):
		en.Speed = c.PatrolSpeed
	default:
		en.Speed = 0
	}

	if ft.ContinueChase > 0 && body.OnGround && atWaypointEdge(ctx, r, body.Facing) {
		Jump(body)
	}

	if seen && dist > c.AttackRange && ft.ShootCooldown == 0 && ctx.rand().Float64() < c.ShootChance {
		fireCannon(ctx, r, body.Facing)
		ft.ShootCooldown = c.ShootCooldown
	}
}

func (fierceToothBrain) contact(ctx *tickContext, e *donburi.Entry) {
	if !ctx.playerAlive || !Collide(e, ctx.player) {
		return
	}
	c := cfg.FierceTooth
	en := components.Enemy.Get(e)
	body := components.Body.Get(e)
	h := components.Health.Get(e)

	if stomped(ctx, e, c.StompDamage) {
		en.FSM.Fire(cfg.EventAttackLanded)
		en.AttackCooldown = c.AttackCooldown
		return
	}

	r := components.Object.Get(e).Rect()
	heightDiff := math.Abs(r.Bottom() - ctx.playerRect.Bottom())
	if en.FSM.Is(cfg.StateAttack) && en.AttackCooldown == 0 && !h.Stunned() &&
		body.Velocity.Y < c.MeleeMaxYVel && heightDiff < c.MeleeHeightTolerance {
		ApplyHit(ctx.ecs, ctx.player, e, c.MeleeDamage)
		en.FSM.Fire(cfg.EventAttackLanded)
		en.AttackCooldown = c.AttackCooldown
		return
	}

	// Touched from behind: turn and go for it.
	if en.Smart && !h.Stunned() && en.TurnCooldown == 0 && !en.FSM.Is(cfg.StateFlee, cfg.StateRecover) &&
		behind(r, body.Facing, ctx.playerRect, c.BehindMargin) {
		body.Facing = -body.Facing
		en.TurnCooldown = c.TurnCooldown
		en.AttackCooldown = 0
		en.FSM.Fire(cfg.EventPlayerInReach)
	}
}

func (fierceToothBrain) sheet(e *donburi.Entry) string {
	return movingSheet(components.Enemy.Get(e), components.Body.Get(e))
}

func fireCannon(ctx *tickContext, r gamemath.Rect, facing float64) {
	x := r.CenterX() + facing*r.W/2
	factory.CreateProjectile(ctx.ecs, components.ProjectileCannonBall, x, r.CenterY(), facing)
	ctx.sim.Play(cfg.SoundCannon)
}

// fleeGrenades turns away from a grenade in view and runs; a close one is
// also jumped over.
func fleeGrenades(ctx *tickContext, en *components.EnemyData, ft *components.FierceToothData,
	body *components.BodyData, r gamemath.Rect) {
	c := cfg.FierceTooth
	if en.FSM.Is(cfg.StateFlee) {
		return
	}
	g, ok := nearestGrenade(ctx, r, body.Facing, c.VisionHalfAngle, c.GrenadeAlertRange)
	if !ok {
		return
	}
	body.Facing = -facingToward(r, g, body.Facing)
	ft.FleeTimer = c.FleeTicks
	en.FSM.Fire(cfg.EventGrenadeSpotted)

	if ft.DodgeCooldown == 0 && body.OnGround &&
		gamemath.CenterDistance(r, g) < c.FleeJumpDistance &&
		math.Abs(g.CenterY()-r.CenterY()) < c.FleeJumpHeight {
		Jump(body)
		ft.DodgeCooldown = c.DodgeCooldown
	}
}

// dodgeShots rolls a jump against purple gems flying at the enemy. Only a
// jump starts the cooldown.
func dodgeShots(ctx *tickContext, ft *components.FierceToothData, body *components.BodyData, r gamemath.Rect) {
	c := cfg.FierceTooth
	if ft.DodgeCooldown > 0 || !body.OnGround {
		return
	}
	incoming := false
	tags.Projectile.Each(ctx.ecs.World, func(s *donburi.Entry) {
		p := components.Projectile.Get(s)
		if incoming || p.TargetsPlayer || p.Exploding {
			return
		}
		sr := components.Object.Get(s).Rect()
		if gamemath.InCone(r.CenterX(), r.CenterY(), body.Facing, sr.CenterX(), sr.CenterY(), c.VisionHalfAngle, c.DodgeRange) {
			incoming = true
		}
	})
	if !incoming {
		return
	}
	if ctx.rand().Float64() < c.DodgeChance {
		Jump(body)
		ft.DodgeCooldown = c.DodgeCooldown
	}
}

// atWaypointEdge reports whether the leading edge of r has reached the far
// edge of a PURPLE rect it stands in.
func atWaypointEdge(ctx *tickContext, r gamemath.Rect, facing float64) bool {
	for _, p := range ctx.level.Purple {
		if !r.Overlaps(p) {
			continue
		}
		if facing > 0 && r.Right() >= p.Right() {
			return true
		}
		if facing < 0 && r.Left() <= p.Left() {
			return true
		}
	}
	return false
}

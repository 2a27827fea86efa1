package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

// UpdateGrenades runs grenade ballistics, the fuse and the blast. The blast
// damages everything in range exactly once, on the tick it goes off.
func UpdateGrenades(ecs *ecs.ECS) {
	level, ok := levelOf(ecs)
	if !ok {
		return
	}

	var gone []*donburi.Entry
	tags.Grenade.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Grenade.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		sprite.Update(body.Facing)

		if g.Blasting {
			g.BlastTimer--
			if g.BlastTimer <= 0 {
				gone = append(gone, e)
			}
			return
		}

		g.Fuse--
		if g.Fuse <= 0 {
			detonate(ecs, e)
			return
		}

		stepGrenade(body, obj)
		g.Rotation += body.Velocity.X * cfg.Grenade.Spin * math.Pi / 180
		sprite.Rotation = g.Rotation

		if obj.Y > level.Level.Height {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		removeEntity(ecs, e)
	}
}

// stepGrenade moves a grenade one tick: gravity and drag in the air, a
// damped bounce on landing and rolling friction on the ground.
func stepGrenade(body *components.BodyData, obj *components.ObjectData) {
	c := cfg.Grenade
	airborne := !supported(obj, tags.ResolvSolid)
	if airborne {
		body.Velocity.Y += c.Gravity
		body.Velocity.X *= c.AirDrag
	}

	if body.Velocity.X != 0 {
		body.Position.X += body.Velocity.X
		syncObject(body, obj)
		if hits := overlapping(obj, 0, 0, tags.ResolvSolid); len(hits) > 0 {
			if body.Velocity.X > 0 {
				body.Position.X = minLeft(hits) - obj.W
			} else {
				body.Position.X = maxRight(hits)
			}
			body.Velocity.X = 0
			syncObject(body, obj)
		}
	}

	grounded := !airborne
	if body.Velocity.Y != 0 {
		body.Position.Y += body.Velocity.Y
		syncObject(body, obj)
		if hits := overlapping(obj, 0, 0, tags.ResolvSolid); len(hits) > 0 {
			if body.Velocity.Y > 0 {
				body.Position.Y = minTop(hits) - obj.H
				if body.Velocity.Y > c.MinBounceSpeed {
					body.Velocity.Y = -body.Velocity.Y * c.Bounce
				} else {
					body.Velocity.Y = 0
				}
				grounded = true
			} else {
				body.Position.Y = maxBottom(hits)
				body.Velocity.Y = 0
			}
			syncObject(body, obj)
		}
	}

	if grounded && body.Velocity.Y == 0 {
		body.Velocity.X = gamemath.ApproachZero(body.Velocity.X, c.RollDecel, c.StopThreshold)
	}
}

// detonate starts the blast: a square BlastTiles wide sitting on the
// grenade's feet.
func detonate(ecs *ecs.ECS, e *donburi.Entry) {
	c := cfg.Grenade
	g := components.Grenade.Get(e)
	body := components.Body.Get(e)
	r := components.Object.Get(e).Rect()

	tile := float64(cfg.C.TileSize)
	if level, ok := levelOf(ecs); ok && level.Level.TileSize > 0 {
		tile = level.Level.TileSize
	}
	size := c.BlastTiles * tile

	g.Blasting = true
	g.BlastTimer = c.BlastTicks
	g.BlastRect = gamemath.NewRect(r.CenterX()-size/2, r.Bottom()-size, size, size)
	body.Velocity.X, body.Velocity.Y = 0, 0
	components.Sprite.Get(e).SetSheet(cfg.SheetBlast)

	applyBlast(ecs, e, g)
	simOf(ecs).Play(cfg.SoundExplosion)
	TriggerScreenShake(ecs, cfg.ScreenShake.BlastIntensity, cfg.ScreenShake.BlastDuration)
}

// applyBlast damages enemies and the player by distance band from the blast
// centre.
func applyBlast(ecs *ecs.ECS, e *donburi.Entry, g *components.GrenadeData) {
	if g.Applied {
		return
	}
	g.Applied = true

	c := cfg.Grenade
	b := g.BlastRect
	radius := gamemath.BlastRadius(b.W, b.H, c.RadiusSlack)
	cx, cy := b.CenterX(), b.CenterY()

	hit := func(target *donburi.Entry, tiers [3]int) {
		if !components.Health.Get(target).Alive {
			return
		}
		tr := components.Object.Get(target).Rect()
		d := gamemath.Distance(cx, cy, tr.CenterX(), tr.CenterY())
		if dmg := gamemath.BlastDamage(d, radius, tiers); dmg > 0 {
			ApplyHit(ecs, target, e, dmg)
		}
	}

	tags.Enemy.Each(ecs.World, func(enemy *donburi.Entry) {
		hit(enemy, c.EnemyTiers)
	})
	if player, ok := playerOf(ecs); ok {
		hit(player, c.PlayerTiers)
	}
}

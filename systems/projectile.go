package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/tags"
)

// UpdateProjectiles moves straight shots and resolves their hits. Enemy
// shots burst on the player; the purple gem vanishes on the first enemy it
// touches. Shots leaving the world are dropped.
func UpdateProjectiles(ecs *ecs.ECS) {
	level, ok := levelOf(ecs)
	if !ok {
		return
	}
	player, hasPlayer := playerOf(ecs)

	var gone []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		shot := components.Projectile.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		sprite.Update(body.Facing)

		if shot.Exploding {
			shot.ExplodeTimer--
			if shot.ExplodeTimer <= 0 {
				gone = append(gone, e)
			}
			return
		}

		body.Position.X += body.Velocity.X
		syncObject(body, obj)
		r := obj.Rect()
		if r.Right() < 0 || r.Left() > level.Level.Width || r.Bottom() < 0 || r.Top() > level.Level.Height {
			gone = append(gone, e)
			return
		}

		if shot.TargetsPlayer {
			if !hasPlayer || !components.Health.Get(player).Alive || !Collide(e, player) {
				return
			}
			ApplyHit(ecs, player, e, shot.Damage)
			burst(shot, body, obj, sprite, components.Object.Get(player).Rect().CenterX())
			return
		}

		hit := false
		tags.Enemy.Each(ecs.World, func(enemy *donburi.Entry) {
			if hit || !components.Health.Get(enemy).Alive || !Collide(e, enemy) {
				return
			}
			ApplyHit(ecs, enemy, e, shot.Damage)
			hit = true
		})
		if hit {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		removeEntity(ecs, e)
	}
}

// burst turns an enemy shot into its explosion, centred on the target.
func burst(shot *components.ProjectileData, body *components.BodyData, obj *components.ObjectData,
	sprite *components.SpriteData, targetX float64) {
	kind := cfg.Projectile.CannonBall
	if shot.Kind == components.ProjectilePearl {
		kind = cfg.Projectile.Pearl
	}
	shot.Exploding = true
	shot.ExplodeTimer = kind.ExplosionTicks
	body.Velocity.X = 0
	body.Position.X = targetX - obj.W/2
	syncObject(body, obj)
	sprite.SetSheet(cfg.SheetExplode)
}

package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/tags"
)

func projectileConfig(kind components.ProjectileKind) (cfg.ProjectileKindConfig, string) {
	switch kind {
	case components.ProjectilePearl:
		return cfg.Projectile.Pearl, SpritePearl
	case components.ProjectilePurpleGem:
		return cfg.Projectile.PurpleGem, SpritePurpleGem
	}
	return cfg.Projectile.CannonBall, SpriteCannonBall
}

// CreateProjectile fires a straight shot centred on (cx, cy) travelling in
// the facing direction. Enemy shots hit only the player, the purple gem
// only enemies.
func CreateProjectile(ecs *ecs.ECS, kind components.ProjectileKind, cx, cy, facing float64) *donburi.Entry {
	c, sprite := projectileConfig(kind)
	shot := archetypes.Projectile.Spawn(ecs)

	x, y := cx-c.Width/2, cy-c.Height/2
	newObject(ecs, shot, x, y, c.Width, c.Height, tags.ResolvShot)

	targetsPlayer := kind != components.ProjectilePurpleGem
	source := cfg.SourcePlayerShot
	if targetsPlayer {
		source = cfg.SourceEnemyShot
	}

	components.Projectile.SetValue(shot, components.ProjectileData{
		Kind:          kind,
		Damage:        c.Damage,
		TargetsPlayer: targetsPlayer,
	})
	components.Body.SetValue(shot, components.BodyData{
		Position: math.Vec2{X: x, Y: y},
		Velocity: math.Vec2{X: facing * c.Speed},
		Facing:   facing,
	})
	components.DamageSource.SetValue(shot, components.DamageSourceData{Kind: source})
	components.Sprite.SetValue(shot, newSprite(ecs, sprite, cfg.SheetFlying))

	return shot
}

// CreateGrenade throws a grenade from (cx, cy) toward facing.
func CreateGrenade(ecs *ecs.ECS, cx, cy, facing float64) *donburi.Entry {
	c := cfg.Grenade
	grenade := archetypes.Grenade.Spawn(ecs)

	x, y := cx-c.Width/2, cy-c.Height/2
	newObject(ecs, grenade, x, y, c.Width, c.Height, tags.ResolvGrenade)

	components.Grenade.SetValue(grenade, components.GrenadeData{Fuse: c.Fuse})
	components.Body.SetValue(grenade, components.BodyData{
		Position: math.Vec2{X: x, Y: y},
		Velocity: math.Vec2{X: facing * c.ThrowSpeed, Y: c.ThrowLift},
		Facing:   facing,
		Gravity:  c.Gravity,
	})
	components.DamageSource.SetValue(grenade, components.DamageSourceData{Kind: cfg.SourceGrenade})
	components.Sprite.SetValue(grenade, newSprite(ecs, SpriteGrenade, cfg.SheetFlying))

	return grenade
}

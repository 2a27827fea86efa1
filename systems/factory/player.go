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

// CreatePlayer places the player with its feet at (x, bottom), horizontally
// centred on x.
func CreatePlayer(ecs *ecs.ECS, x, bottom float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	px, py := x-w/2, bottom-h
	obj := newObject(ecs, player, px, py, w, h, tags.ResolvPlayer)
	obj.AddTags("character")

	components.Player.SetValue(player, components.PlayerData{
		Stamina:  cfg.Player.StaminaMax,
		Ammo:     cfg.Player.StartAmmo,
		Grenades: cfg.Player.StartGrenades,
	})
	components.Body.SetValue(player, components.BodyData{
		Position:         math.Vec2{X: px, Y: py},
		Facing:           cfg.DirectionRight,
		JumpImpulses:     cfg.Player.JumpImpulses,
		Gravity:          cfg.Physics.Gravity,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:      cfg.Player.Health,
		Max:          cfg.Player.Health,
		Alive:        true,
		StunDuration: cfg.Player.HitStun,
		StunSources:  cfg.NewStunSet(cfg.SourceEnemy, cfg.SourceGrenade),
	})
	components.DamageSource.SetValue(player, components.DamageSourceData{Kind: cfg.SourcePlayer})
	components.Sprite.SetValue(player, newSprite(ecs, SpritePlayer, cfg.SheetIdle))

	return player
}

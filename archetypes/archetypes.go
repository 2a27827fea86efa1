package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/tags"
)

var (
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
		components.DamageSource,
	)
	Constraint = newArchetype(
		tags.Constraint,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Health,
		components.DamageSource,
		components.Sprite,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Body,
		components.Health,
		components.DamageSource,
		components.Sprite,
		components.Death,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Body,
		components.DamageSource,
		components.Sprite,
	)
	Grenade = newArchetype(
		tags.Grenade,
		components.Grenade,
		components.Object,
		components.Body,
		components.DamageSource,
		components.Sprite,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
		components.Sprite,
	)
	Flag = newArchetype(
		tags.Flag,
		components.Flag,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Sim = newArchetype(
		components.Sim,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

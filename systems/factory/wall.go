package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

func CreateObstacle(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Obstacle.Spawn(ecs)
	newObject(ecs, wall, r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	return wall
}

// CreateHazard creates a static tile that damages the player on contact.
func CreateHazard(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	newObject(ecs, hazard, r.X, r.Y, r.W, r.H, tags.ResolvHazard)
	components.DamageSource.SetValue(hazard, components.DamageSourceData{Kind: cfg.SourceHazard})
	return hazard
}

// CreateConstraint creates an invisible RED, PURPLE or ORANGE rect. Only
// enemy logic looks at these.
func CreateConstraint(ecs *ecs.ECS, r gamemath.Rect, tag string) *donburi.Entry {
	c := archetypes.Constraint.Spawn(ecs)
	newObject(ecs, c, r.X, r.Y, r.W, r.H, tag)
	return c
}

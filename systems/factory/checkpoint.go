package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/tags"
)

// CreateFlag creates a checkpoint or, when levelEnd is set, the level exit.
func CreateFlag(ecs *ecs.ECS, cell leveldata.Cell, levelEnd bool) *donburi.Entry {
	flag := archetypes.Flag.Spawn(ecs)
	r := cell.Rect
	newObject(ecs, flag, r.X, r.Y, r.W, r.H, tags.ResolvFlag)

	components.Flag.SetValue(flag, components.FlagData{
		ID:       cell.ID,
		LevelEnd: levelEnd,
	})
	return flag
}

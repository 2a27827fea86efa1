package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/tags"
)

// CreatePickup places a collectible centred in its tile. It bobs up and down
// using a pair of tweens.
func CreatePickup(ecs *ecs.ECS, spawn leveldata.PickupSpawn) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	size := cfg.Pickup.Size
	x := spawn.Rect.CenterX() - size/2
	y := spawn.Rect.CenterY() - size/2
	newObject(ecs, pickup, x, y, size, size, tags.ResolvPickup)

	half := float32(cfg.Pickup.BobTicks) / 2
	height := float32(cfg.Pickup.BobHeight)
	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:   spawn.Kind,
		ID:     spawn.ID,
		Rise:   gween.New(0, -height, half, ease.InOutSine),
		Fall:   gween.New(-height, 0, half, ease.InOutSine),
		Rising: true,
	})
	components.Sprite.SetValue(pickup, newSprite(ecs, string(spawn.Kind), cfg.SheetIdle))

	return pickup
}

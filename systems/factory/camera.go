package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs, components.ScreenShake)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

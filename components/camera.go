package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	Shake      math.Vec2
}

// View is the point the screen centres on, shake included.
func (c *CameraData) View() math.Vec2 {
	return math.Vec2{X: c.Position.X + c.Shake.X, Y: c.Position.Y + c.Shake.Y}
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks the camera shake. A zero Duration means idle.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

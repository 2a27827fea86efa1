package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	"github.com/automoto/piratecove/config"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := playerOf(e)
	if !ok {
		return
	}
	level, ok := levelOf(e)
	if !ok {
		return
	}
	// Hold still while the death fall leaves the screen.
	if components.Player.Get(playerEntry).Dying {
		return
	}
	r := components.Object.Get(playerEntry).Rect()
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	// Only update look-ahead when player is moving - freeze offset when idle
	if player.Moving {
		targetLookAhead := body.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := r.CenterX() + camera.LookAheadX
	targetY := r.CenterY()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Camera bounds: ensure the level always fills the screen
	targetX = clampView(targetX, screenWidth, level.Level.Width)
	targetY = clampView(targetY, screenHeight, level.Level.Height)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampView keeps a view centre inside the level. Levels smaller than the
// screen are centred.
func clampView(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// updateScreenShake sets the decaying shake offset and advances the timer.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration == 0 {
		return
	}
	shake.Elapsed++

	progress := math.Max(float64(shake.Duration-shake.Elapsed)/float64(shake.Duration), 0)
	intensity := shake.Intensity * progress

	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// TriggerScreenShake starts a shake unless a stronger one is running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration > 0 && intensity <= shake.Intensity {
		return
	}
	*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
}

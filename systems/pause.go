package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/fonts"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	playerEntry, ok := playerOf(ecs)
	if !ok || !components.Input.Get(playerEntry).JustPressed(cfg.ActionPause) {
		return
	}
	pause := GetOrCreatePause(ecs)
	pause.Paused = !pause.Paused

	svc, ok := simOf(ecs).Sounds.(*AudioService)
	if !ok {
		return
	}
	if pause.Paused {
		svc.PauseMusic()
	} else {
		svc.ResumeMusic()
	}
}

// DrawPause dims the frame and writes a banner while paused.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).Paused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.DarkOverlay, false)

	drawCentered(screen, fonts.Title, "PAUSED", width/2, height/2)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.Paused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

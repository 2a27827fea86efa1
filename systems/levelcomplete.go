package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/fonts"
)

// UpdateLevelComplete starts the banner once the level end is reached and
// counts it down.
func UpdateLevelComplete(e *ecs.ECS) {
	lc := GetOrCreateLevelComplete(e)
	if !lc.Started {
		if level, ok := levelOf(e); ok && level.Progress.ReachedEnd {
			lc.Started = true
			lc.Timer = cfg.UI.LevelCompleteTicks
		}
		return
	}
	if lc.Timer > 0 {
		lc.Timer--
	}
}

// LevelCompleteDone reports whether the banner has run out and the next
// level may load.
func LevelCompleteDone(e *ecs.ECS) bool {
	lc := GetOrCreateLevelComplete(e)
	return lc.Started && lc.Timer == 0
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateLevelComplete(e).Started {
		return
	}
	level, ok := levelOf(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.DarkOverlay, false)

	p := level.Progress
	seconds := p.Ticks / max(cfg.C.FPS, 1)
	drawCentered(screen, fonts.Title, "LEVEL COMPLETE", width/2, height/2-24)
	drawCentered(screen, fonts.HUD,
		fmt.Sprintf("coins %d   kills %d   deaths %d   time %d:%02d", p.Coins, p.Kills, p.Deaths, seconds/60, seconds%60),
		width/2, height/2+16)
}

func drawCentered(screen *ebiten.Image, name fonts.FontName, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cfg.UI.TextColor)
	text.Draw(screen, s, text.NewGoXFace(name.Get()), op)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.LevelComplete))
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// WithLevelCompleteCheck wraps a system to skip execution once the level end
// is reached.
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateLevelComplete(e).Started {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or the
// level is complete.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}

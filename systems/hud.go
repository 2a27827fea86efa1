package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/fonts"
)

const hudLineGap = 6

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders the player's bars in the top-left corner and the pickup
// counters that were recently changed below them.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	m, w, h := cfg.UI.HealthBarMargin, cfg.UI.HealthBarWidth, cfg.UI.HealthBarHeight
	y := m
	drawBar(screen, m, y, w, h, float64(hp.Current)/float64(max(hp.Max, 1)), cfg.UI.HealthBarFg)
	y += h + hudLineGap

	if player.StaminaBarTimer > 0 || player.Stamina < cfg.Player.StaminaMax {
		drawBar(screen, m, y, w, h/2, player.Stamina/cfg.Player.StaminaMax, cfg.UI.StaminaFg)
		y += h/2 + hudLineGap
	}

	face := text.NewGoXFace(fonts.HUD.Get())
	lineH := face.Metrics().HAscent + face.Metrics().HDescent
	counters := []struct {
		timer int
		label string
		value int
	}{
		{player.AmmoTimer, "Ammo", player.Ammo},
		{player.GrenadeTimer, "Grenades", player.Grenades},
		{player.CoinTimer, "Coins", player.Coins},
	}
	for _, c := range counters {
		if c.timer == 0 {
			continue
		}
		hudTextOp.GeoM.Reset()
		hudTextOp.GeoM.Translate(m, y)
		hudTextOp.ColorScale.Reset()
		hudTextOp.ColorScale.ScaleWithColor(cfg.UI.TextColor)
		text.Draw(screen, fmt.Sprintf("%s: %d", c.label, c.value), face, hudTextOp)
		y += lineH + hudLineGap
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fg color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.HealthBarBg, false)
	if ratio > 0 {
		vector.FillRect(screen, float32(x), float32(y), float32(w*min(ratio, 1)), float32(h), fg, false)
	}
}

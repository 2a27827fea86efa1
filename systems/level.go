package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/tags"
)

// DrawLevel paints the sky and the static tiles under the sprites.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}

	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		if v.visible(r) {
			v.fillRect(screen, r, cfg.Sand)
		}
	})
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		if v.visible(r) {
			v.fillRect(screen, r, cfg.Red)
		}
	})
	tags.Flag.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		if !v.visible(r) {
			return
		}
		flag := components.Flag.Get(e)
		c := cfg.White
		switch {
		case flag.LevelEnd:
			c = cfg.Yellow
		case flag.Reached:
			c = cfg.Green
		}
		// Pole plus pennant.
		pole := r
		pole.X, pole.W = r.CenterX()-1, 2
		v.fillRect(screen, pole, cfg.White)
		pennant := r
		pennant.X, pennant.W, pennant.H = r.CenterX()+1, r.W/2-1, r.H/3
		v.fillRect(screen, pennant, c)
	})
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders && !cfg.Debug.DrawNav {
		return
	}
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}

	if cfg.Debug.DrawNav {
		drawNav(ecs, screen, v)
	}

	if cfg.Debug.DrawColliders {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				r := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
				if !v.visible(r) {
					continue
				}

				c := color.RGBA{0, 255, 255, 255} // Cyan default
				switch {
				case obj.HasTags(tags.ResolvSolid):
					c = color.RGBA{100, 100, 100, 255}
				case obj.HasTags(tags.ResolvPlayer):
					c = cfg.Blue
				case obj.HasTags(tags.ResolvEnemy):
					c = cfg.Red
				case obj.HasTags(tags.ResolvRed):
					c = color.RGBA{255, 80, 80, 255}
				case obj.HasTags(tags.ResolvPurple):
					c = cfg.Purple
				case obj.HasTags(tags.ResolvOrange):
					c = cfg.Orange
				case obj.HasTags(tags.ResolvShot, tags.ResolvGrenade):
					c = cfg.Yellow
				}
				vector.StrokeRect(screen, float32(r.X+v.offX), float32(r.Y+v.offY), float32(r.W), float32(r.H), 1, c, false)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  tick %d", ebiten.ActualTPS(), simOf(ecs).Tick), 4, int(v.h)-16)
}

// drawNav outlines danger zones and the waypoint graph, plus the path each
// PinkStar is following.
func drawNav(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, z := range level.Zones {
		c := cfg.Orange
		if !z.Validated {
			c = cfg.Red
		}
		vector.StrokeRect(screen, float32(z.Rect.X+v.offX), float32(z.Rect.Y+v.offY), float32(z.Rect.W), float32(z.Rect.H), 2, c, false)
	}

	if level.Graph != nil {
		for _, w := range level.Graph.Nodes {
			vector.FillCircle(screen, float32(w.Rect.CenterX()+v.offX), float32(w.Rect.CenterY()+v.offY), 3, cfg.Purple, false)
		}
	}

	components.PinkStar.Each(ecs.World, func(e *donburi.Entry) {
		ps := components.PinkStar.Get(e)
		r := components.Object.Get(e).Rect()
		fromX, fromY := r.CenterX(), r.CenterY()
		for i := ps.PathIndex; i >= 0 && i < len(ps.Path); i++ {
			to := ps.Path[i].Rect
			vector.StrokeLine(screen,
				float32(fromX+v.offX), float32(fromY+v.offY),
				float32(to.CenterX()+v.offX), float32(to.CenterY()+v.offY),
				1, cfg.Green, false)
			fromX, fromY = to.CenterX(), to.CenterY()
		}
	})
}

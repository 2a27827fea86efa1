package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/piratecove/assets"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// view is the camera transform for one frame.
type view struct {
	offX, offY float64
	w, h       float64
}

func viewOf(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	c := components.Camera.Get(cameraEntry).View()
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{offX: w/2 - c.X, offY: h/2 - c.Y, w: w, h: h}, true
}

// Viewport culling with a small padding so sprites do not pop at the edges.
func (v view) visible(r gamemath.Rect) bool {
	const padding = 64
	x, y := r.X+v.offX, r.Y+v.offY
	return x+r.W > -padding && x < v.w+padding && y+r.H > -padding && y < v.h+padding
}

func (v view) fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X+v.offX), float32(r.Y+v.offY), float32(r.W), float32(r.H), c, false)
}

// DrawSprites renders every entity with a sprite. Entities whose sprite set
// has no frames are drawn as filled collider rects.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}
	for _, tag := range []donburi.IComponentType{tags.Pickup, tags.Enemy, tags.Player, tags.Projectile, tags.Grenade} {
		donburi.NewQuery(filter.Contains(tag, components.Sprite)).Each(ecs.World, func(e *donburi.Entry) {
			drawEntity(screen, v, e)
		})
	}
}

func drawEntity(screen *ebiten.Image, v view, e *donburi.Entry) {
	r := components.Object.Get(e).Rect()
	if e.HasComponent(components.Pickup) {
		r = r.Translate(0, components.Pickup.Get(e).Offset)
	}
	if e.HasComponent(components.Grenade) {
		if g := components.Grenade.Get(e); g.Blasting {
			drawBlast(screen, v, e, g)
			return
		}
	}
	if !v.visible(r) {
		return
	}

	facing := 1.0
	if e.HasComponent(components.Body) {
		facing = components.Body.Get(e).Facing
	}
	sprite := components.Sprite.Get(e)
	frame, ok := sprite.Current(facing)
	if !ok {
		v.fillRect(screen, r, placeholderColor(e))
		return
	}

	img := frame.Image
	fw, fh := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if sprite.Rotation != 0 {
		drawOp.GeoM.Translate(-fw/2, -fh/2)
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(fw/2, fh/2)
	}
	drawOp.GeoM.Translate(r.X+v.offX, r.Y+v.offY)

	if flashing(e) && assets.FlashShader != nil {
		shaderOp.GeoM = drawOp.GeoM
		shaderOp.Images[0] = img
		shaderOp.Uniforms = map[string]any{"Flash": float32(0.7)}
		screen.DrawRectShader(int(fw), int(fh), assets.FlashShader, shaderOp)
		return
	}
	screen.DrawImage(img, drawOp)
}

// flashing blinks stunned characters every few ticks.
func flashing(e *donburi.Entry) bool {
	if !e.HasComponent(components.Health) {
		return false
	}
	h := components.Health.Get(e)
	return h.Alive && h.Stunned() && (h.HitStun/4)%2 == 0
}

func placeholderColor(e *donburi.Entry) color.Color {
	switch {
	case e.HasComponent(components.Player):
		if flashing(e) {
			return cfg.White
		}
		return cfg.Blue
	case e.HasComponent(components.Enemy):
		if flashing(e) {
			return cfg.White
		}
		switch components.Enemy.Get(e).Species {
		case cfg.SpeciesSeashell:
			return cfg.Sand
		case cfg.SpeciesPinkStar:
			return cfg.Purple
		}
		return cfg.Red
	case e.HasComponent(components.Projectile):
		if components.Projectile.Get(e).Kind == components.ProjectilePurpleGem {
			return cfg.Purple
		}
		return cfg.Orange
	case e.HasComponent(components.Grenade):
		return cfg.Orange
	case e.HasComponent(components.Pickup):
		return cfg.Yellow
	}
	return cfg.White
}

func drawBlast(screen *ebiten.Image, v view, e *donburi.Entry, g *components.GrenadeData) {
	sprite := components.Sprite.Get(e)
	if frame, ok := sprite.Current(1); ok {
		img := frame.Image
		sx := g.BlastRect.W / float64(img.Bounds().Dx())
		sy := g.BlastRect.H / float64(img.Bounds().Dy())
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(sx, sy)
		drawOp.GeoM.Translate(g.BlastRect.X+v.offX, g.BlastRect.Y+v.offY)
		screen.DrawImage(img, drawOp)
		return
	}
	alpha := uint8(160 * g.BlastTimer / max(cfg.Grenade.BlastTicks, 1))
	v.fillRect(screen, g.BlastRect, color.RGBA{R: 255, G: 140, A: alpha})
}

// DrawHealthBars shows a bar over enemies that were hit recently.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}
	w, bh := cfg.Enemy.HealthBarWidth, cfg.Enemy.HealthBarHeight
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Health.Get(e)
		if !h.Alive || h.BarTimer == 0 || !h.Damaged() {
			return
		}
		r := components.Object.Get(e).Rect()
		if !v.visible(r) {
			return
		}
		bar := gamemath.NewRect(r.CenterX()-w/2, r.Top()-bh-6, w, bh)
		v.fillRect(screen, bar, cfg.UI.HealthBarBg)
		bar.W = w * float64(h.Current) / float64(h.Max)
		v.fillRect(screen, bar, cfg.UI.HealthBarFg)
	})
}

package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/components"
	"github.com/automoto/piratecove/shared/gamemath"
)

// Collide is the two-phase hit test between two entities: their rects must
// strictly overlap, then their current frame masks must share an opaque
// pixel. A side without a sprite frame counts as fully opaque.
func Collide(a, b *donburi.Entry) bool {
	ra := components.Object.Get(a).Rect().Snap()
	rb := components.Object.Get(b).Rect().Snap()
	if !ra.Overlaps(rb) {
		return false
	}

	ma, mb := maskOf(a), maskOf(b)
	if ma == nil && mb == nil {
		return true
	}
	if ma == nil {
		ma = gamemath.FullMask(int(ra.W), int(ra.H))
	}
	if mb == nil {
		mb = gamemath.FullMask(int(rb.W), int(rb.H))
	}
	return gamemath.MasksOverlap(ma, int(ra.X), int(ra.Y), mb, int(rb.X), int(rb.Y))
}

// maskOf returns the mask of the entity's current frame, anchored at its
// rect's top-left.
func maskOf(e *donburi.Entry) *gamemath.Mask {
	if !e.HasComponent(components.Sprite) {
		return nil
	}
	facing := 1.0
	if e.HasComponent(components.Body) {
		facing = components.Body.Get(e).Facing
	}
	return components.Sprite.Get(e).Mask(facing)
}

package gamemath

import "image"

// maskAlphaThreshold matches the 8-bit alpha cut-off used when the sprite
// sheets were authored.
const maskAlphaThreshold = 127

// Mask is a per-pixel collision mask anchored at a rect's top-left.
type Mask struct {
	W, H int
	bits []bool
}

// MaskFromImage sets a bit for every pixel whose alpha exceeds the
// threshold.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := &Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.W+x] = a>>8 > maskAlphaThreshold
		}
	}
	return m
}

// FullMask returns a mask with every bit set.
func FullMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Count returns the number of set bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// MasksOverlap reports whether any set pixel of a, placed at (ax, ay),
// coincides with a set pixel of b placed at (bx, by).
func MasksOverlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	x0 := max(ax, bx)
	y0 := max(ay, by)
	x1 := min(ax+a.W, bx+b.W)
	y1 := min(ay+a.H, by+b.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.At(x-ax, y-ay) && b.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}

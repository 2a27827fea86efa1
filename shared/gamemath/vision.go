package gamemath

import "math"

const visionEpsilon = 1e-9

// InCone reports whether a target point lies inside a horizontal vision
// cone. facing is +1 for right and -1 for left. Both the angular and the
// range boundary are inclusive.
func InCone(originX, originY, facing, targetX, targetY, halfAngleDeg, rangePx float64) bool {
	dx := targetX - originX
	dy := targetY - originY
	dist := math.Hypot(dx, dy)
	if dist > rangePx+visionEpsilon {
		return false
	}
	if dist == 0 {
		return true
	}
	angle := math.Atan2(math.Abs(dy), dx*facing) * 180 / math.Pi
	return angle <= halfAngleDeg+visionEpsilon
}

// SegmentHitsRect clips the segment (x0,y0)-(x1,y1) against r with the
// Liang-Barsky algorithm and returns the parametric entry point in [0,1].
func SegmentHitsRect(x0, y0, x1, y1 float64, r Rect) (float64, bool) {
	dx := x1 - x0
	dy := y1 - y0
	tMin, tMax := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - r.Left(), r.Right() - x0, y0 - r.Top(), r.Bottom() - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > tMax {
				return 0, false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return 0, false
			}
			if t < tMax {
				tMax = t
			}
		}
	}
	return tMin, true
}

// NearestHit returns the index of the blocker the segment enters first, or
// -1 when the segment is clear.
func NearestHit(x0, y0, x1, y1 float64, blockers []Rect) int {
	best := -1
	bestT := math.Inf(1)
	for i, b := range blockers {
		if t, ok := SegmentHitsRect(x0, y0, x1, y1, b); ok && t < bestT {
			best, bestT = i, t
		}
	}
	return best
}

// LineOfSight reports whether no blocker intersects the segment.
func LineOfSight(x0, y0, x1, y1 float64, blockers []Rect) bool {
	return NearestHit(x0, y0, x1, y1, blockers) < 0
}

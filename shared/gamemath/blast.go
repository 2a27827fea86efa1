package gamemath

import "math"

// BlastRadius is the reach of an explosion whose rectangle is w x h.
func BlastRadius(w, h, slack float64) float64 {
	return math.Hypot(w/2, h/2) + slack
}

// BlastDamage maps a distance from the blast centre to the damage of its
// band: tiers[0] within half the radius, tiers[1] within three quarters,
// tiers[2] up to the radius, zero beyond.
func BlastDamage(distance, radius float64, tiers [3]int) int {
	switch {
	case distance <= radius*0.5:
		return tiers[0]
	case distance <= radius*0.75:
		return tiers[1]
	case distance <= radius:
		return tiers[2]
	}
	return 0
}

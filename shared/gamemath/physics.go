package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity accelerates a downward velocity and caps it at terminal.
func ApplyGravity(yVel, gravity, terminal float64) float64 {
	yVel += gravity
	if yVel > terminal {
		return terminal
	}
	return yVel
}

// ApproachZero reduces speed toward zero by decel and snaps to zero once
// its magnitude falls under stop.
func ApproachZero(speed, decel, stop float64) float64 {
	switch {
	case speed > 0:
		speed -= decel
		if speed < stop {
			return 0
		}
	case speed < 0:
		speed += decel
		if speed > -stop {
			return 0
		}
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

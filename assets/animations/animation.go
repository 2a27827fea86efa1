package animations

// Animation advances a frame index over a fixed number of frames.
type Animation struct {
	Frames   int
	Delay    int // ticks each frame is shown
	Hold     bool
	ticks    int
	Finished bool
}

func NewAnimation(frames, delay int, hold bool) *Animation {
	if delay <= 0 {
		delay = 1
	}
	return &Animation{Frames: frames, Delay: delay, Hold: hold}
}

// Update advances one tick.
func (a *Animation) Update() {
	a.ticks++
	if a.Frames > 0 && a.ticks >= a.Frames*a.Delay {
		a.Finished = true
	}
}

// Frame returns (ticks / delay) mod frames, or the last frame once a held
// animation has played through.
func (a *Animation) Frame() int {
	if a.Frames <= 0 {
		return 0
	}
	idx := a.ticks / a.Delay
	if a.Hold && idx >= a.Frames {
		return a.Frames - 1
	}
	return idx % a.Frames
}

func (a *Animation) Restart() {
	a.ticks = 0
	a.Finished = false
}

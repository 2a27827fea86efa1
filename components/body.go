package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the kinematic state integrated every tick. Velocity.X is the
// horizontal step; Velocity.Y is the vertical accumulator gravity feeds.
type BodyData struct {
	Position math.Vec2
	Velocity math.Vec2
	Facing   float64

	OnGround     bool
	JumpCount    int
	JumpImpulses []float64

	Gravity          float64
	TerminalVelocity float64

	// BlockedByRed makes RED constraint rects act as walls.
	BlockedByRed bool
}

// MaxJumps is the jump budget before landing.
func (b *BodyData) MaxJumps() int {
	return len(b.JumpImpulses)
}

var Body = donburi.NewComponentType[BodyData]()

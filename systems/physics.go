package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/tags"
)

// syncObject copies the body position into its collision object. Rects use
// the truncated position; the body keeps the fractional one.
func syncObject(body *components.BodyData, obj *components.ObjectData) {
	obj.X = math.Trunc(body.Position.X)
	obj.Y = math.Trunc(body.Position.Y)
	obj.Update()
}

// blockers returns the resolv tags that stop a body.
func blockers(body *components.BodyData) []string {
	if body.BlockedByRed {
		return []string{tags.ResolvSolid, tags.ResolvRed}
	}
	return []string{tags.ResolvSolid}
}

// overlapping returns the objects carrying any of the tags whose rects
// strictly overlap obj shifted by (dx, dy). Touching edges do not count.
func overlapping(obj *components.ObjectData, dx, dy float64, want ...string) []*resolv.Object {
	check := obj.Check(dx, dy, want...)
	if check == nil {
		return nil
	}
	r := obj.Rect().Translate(dx, dy)
	var out []*resolv.Object
	for _, o := range check.Objects {
		if o == obj.Object {
			continue
		}
		if r.Overlaps(gamemath.NewRect(o.X, o.Y, o.W, o.H)) {
			out = append(out, o)
		}
	}
	return out
}

// StepVertical applies gravity and moves the body by its vertical velocity.
// Landing snaps the feet to the obstacle top and clears the velocity and the
// jump count; a ceiling hit snaps the head to the obstacle bottom.
func StepVertical(body *components.BodyData, obj *components.ObjectData) {
	body.Velocity.Y = gamemath.ApplyGravity(body.Velocity.Y, body.Gravity, body.TerminalVelocity)
	body.Position.Y += body.Velocity.Y
	syncObject(body, obj)
	body.OnGround = false

	falling := body.Velocity.Y >= 0
	reach := 0.0
	if falling {
		reach = cfg.Physics.GroundReach
	}
	hits := overlapping(obj, 0, reach, blockers(body)...)
	if len(hits) == 0 {
		return
	}

	if falling {
		body.Position.Y = minTop(hits) - obj.H
		body.OnGround = true
		body.JumpCount = 0
	} else {
		body.Position.Y = maxBottom(hits)
	}
	body.Velocity.Y = 0
	syncObject(body, obj)
}

// StepHorizontal moves the body by dx and pushes it out of any obstacle it
// ran into. It returns the side of the contact: 1 for a wall on the right,
// -1 on the left, 0 for none. The velocity is left to the caller.
func StepHorizontal(body *components.BodyData, obj *components.ObjectData, dx float64) float64 {
	body.Velocity.X = dx
	if dx == 0 {
		return 0
	}
	body.Position.X += dx
	syncObject(body, obj)

	hits := overlapping(obj, 0, 0, blockers(body)...)
	if len(hits) == 0 {
		return 0
	}

	var contact float64
	if dx > 0 {
		body.Position.X = minLeft(hits) - obj.W
		contact = cfg.DirectionRight
	} else {
		body.Position.X = maxRight(hits)
		contact = cfg.DirectionLeft
	}
	syncObject(body, obj)
	return contact
}

// Jump spends the next impulse in the body's budget. It reports false once
// the budget is spent.
func Jump(body *components.BodyData) bool {
	if body.JumpCount >= body.MaxJumps() {
		return false
	}
	body.Velocity.Y = body.JumpImpulses[body.JumpCount]
	body.JumpCount++
	body.OnGround = false
	return true
}

// supported reports whether something solid lies right under obj.
func supported(obj *components.ObjectData, want ...string) bool {
	return len(overlapping(obj, 0, cfg.Physics.GroundReach, want...)) > 0
}

// removeEntity drops an entity and its collision object.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}

func minLeft(objs []*resolv.Object) float64 {
	v := math.Inf(1)
	for _, o := range objs {
		v = math.Min(v, o.X)
	}
	return v
}

func maxRight(objs []*resolv.Object) float64 {
	v := math.Inf(-1)
	for _, o := range objs {
		v = math.Max(v, o.X+o.W)
	}
	return v
}

func minTop(objs []*resolv.Object) float64 {
	v := math.Inf(1)
	for _, o := range objs {
		v = math.Min(v, o.Y)
	}
	return v
}

func maxBottom(objs []*resolv.Object) float64 {
	v := math.Inf(-1)
	for _, o := range objs {
		v = math.Max(v, o.Y+o.H)
	}
	return v
}

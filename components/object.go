package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/shared/gamemath"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broadphase holding every collidable object.
var Space = donburi.NewComponentType[resolv.Space]()

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/shared/leveldata"
)

type PickupData struct {
	Kind leveldata.PickupKind
	ID   int

	// Bob ping-pongs between the two tweens and only moves the drawn sprite
	Rise, Fall *gween.Tween
	Rising     bool
	Offset     float64
}

var Pickup = donburi.NewComponentType[PickupData]()

// FlagData marks checkpoint and level-end tiles.
type FlagData struct {
	ID       int
	LevelEnd bool
	Reached  bool
}

var Flag = donburi.NewComponentType[FlagData]()

package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/piratecove/config"
)

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

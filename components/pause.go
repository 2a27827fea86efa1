package components

import "github.com/yohamta/donburi"

type PauseData struct {
	Paused bool
}

var Pause = donburi.NewComponentType[PauseData]()

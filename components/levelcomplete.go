package components

import "github.com/yohamta/donburi"

// LevelCompleteData holds the banner shown between reaching the level end
// and the next level loading.
type LevelCompleteData struct {
	Started bool
	Timer   int
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()

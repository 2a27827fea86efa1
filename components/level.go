package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/shared/nav"
)

type LevelData struct {
	Level *leveldata.Level
	Index int

	Zones  []nav.Zone
	Graph  *nav.Graph
	Purple []gamemath.Rect
	// Occluders block enemy vision: obstacles and RED rects.
	Occluders []gamemath.Rect

	Progress ProgressData
}

// ProgressData is the run state that checkpoints persist.
type ProgressData struct {
	Checkpoint *math.Vec2
	Coins      int
	Deaths     int
	Ticks      int
	Kills      int
	Collected  map[int]bool
	Killed     map[int]bool
	ReachedEnd bool

	// Restart asks the scene to rebuild the level from the last checkpoint.
	Restart bool
}

func NewProgress() ProgressData {
	return ProgressData{Collected: map[int]bool{}, Killed: map[int]bool{}}
}

var Level = donburi.NewComponentType[LevelData]()

package components

import "github.com/yohamta/donburi"

// DeathData marks an enemy that has died. Timer counts down each tick; at
// zero the entity is removed.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()

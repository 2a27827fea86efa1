package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/nav"
)

type EnemyData struct {
	Species config.Species
	SpawnID int
	Smart   bool
	Speed   float64
	FSM     *Machine

	// Patrol
	Dwell               int
	SuppressRandomTurns int

	// Combat
	AttackCooldown   int
	TurnCooldown     int
	WasHitFromBehind bool
	PlayerSeen       bool
	LostVisionTimer  int

	DeathHandled bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

type FierceToothData struct {
	ShootCooldown int
	DodgeCooldown int
	FleeTimer     int
	RecheckTimer  int
	ContinueChase int
}

var FierceTooth = donburi.NewComponentType[FierceToothData]()

type SeashellData struct {
	FireCooldown int
	BiteCooldown int
}

var Seashell = donburi.NewComponentType[SeashellData]()

type PinkStarData struct {
	Lair        nav.Zone
	HasLair     bool
	Path        []*nav.Waypoint
	PathIndex   int
	RepathTimer int
	Chasing     bool
}

// NextWaypoint returns the waypoint being walked to, if any.
func (p *PinkStarData) NextWaypoint() (*nav.Waypoint, bool) {
	if p.PathIndex < 0 || p.PathIndex >= len(p.Path) {
		return nil, false
	}
	return p.Path[p.PathIndex], true
}

var PinkStar = donburi.NewComponentType[PinkStarData]()

package config

// Species identifies an enemy archetype.
type Species int

const (
	SpeciesFierceTooth Species = iota
	SpeciesSeashell
	SpeciesPinkStar
)

func (s Species) String() string {
	switch s {
	case SpeciesFierceTooth:
		return "FierceTooth"
	case SpeciesSeashell:
		return "SeashellPearl"
	case SpeciesPinkStar:
		return "PinkStar"
	}
	return "Unknown"
}

// StateID is an AI state. Each species uses a subset.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateRunning
	StateChase
	StateAttack
	StateRecover
	StateHit
	StateFlee
	StateFire
	StateBite
	StateDead
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateChase:
		return "Chase"
	case StateAttack:
		return "Attack"
	case StateRecover:
		return "Recover"
	case StateHit:
		return "Hit"
	case StateFlee:
		return "Flee"
	case StateFire:
		return "Fire"
	case StateBite:
		return "Bite"
	case StateDead:
		return "Dead"
	}
	return "None"
}

// EventID drives AI state transitions.
type EventID int

const (
	EventDwellElapsed EventID = iota
	EventSpotPlayer
	EventLosePlayer
	EventPlayerInReach
	EventAttackLanded
	EventRecovered
	EventStunned
	EventStunOver
	EventGrenadeSpotted
	EventFleeOver
	EventBiteOver
	EventDied
)

// DamageSourceKind tags every entity that can deal damage. Stun rules key
// off it instead of inspecting the attacker's type.
type DamageSourceKind int

const (
	SourceNone DamageSourceKind = iota
	SourcePlayer
	SourcePlayerShot
	SourceEnemy
	SourceEnemyShot
	SourceGrenade
	SourceHazard
)

// StunSet is a bit set of DamageSourceKind values.
type StunSet uint16

func NewStunSet(kinds ...DamageSourceKind) StunSet {
	var s StunSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

func (s StunSet) Has(k DamageSourceKind) bool {
	return s&(1<<uint(k)) != 0
}

// Sprite sheet names. Sheets are looked up as "<Sheet>_<left|right>".
const (
	SheetIdle    = "Idle"
	SheetRun     = "Run"
	SheetJump    = "Jump"
	SheetFall    = "Fall"
	SheetAttack  = "Attack"
	SheetHit     = "Hit"
	SheetDead    = "Dead"
	SheetFire    = "Fire"
	SheetBite    = "Bite"
	SheetFlying  = "Flying"
	SheetExplode = "Explode"
	SheetBlast   = "Blast"
)

package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/config"
)

type HealthData struct {
	Current int
	Max     int
	Alive   bool

	// BarTimer keeps the health bar visible after a hit.
	BarTimer int

	// HitStun counts down the stun window. Hits are ignored while it runs.
	HitStun      int
	StunDuration int
	StunSources  config.StunSet
}

func (h *HealthData) Stunned() bool {
	return h.HitStun > 0
}

func (h *HealthData) Damaged() bool {
	return h.Current < h.Max
}

var Health = donburi.NewComponentType[HealthData]()

// DamageSourceData tags entities that deal damage with the kind of source
// they count as.
type DamageSourceData struct {
	Kind config.DamageSourceKind
}

var DamageSource = donburi.NewComponentType[DamageSourceData]()

package components

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/storage"
)

// SoundPlayer triggers sound effects.
type SoundPlayer interface {
	Play(id config.SoundID)
}

// SimData is the singleton holding per-world services.
type SimData struct {
	Tick   int
	Rand   *rand.Rand
	Sounds SoundPlayer
	Logger *log.Logger
	Store  storage.ProgressStore
}

// Play triggers a sound when a player is attached.
func (s *SimData) Play(id config.SoundID) {
	if s.Sounds != nil {
		s.Sounds.Play(id)
	}
}

var Sim = donburi.NewComponentType[SimData]()

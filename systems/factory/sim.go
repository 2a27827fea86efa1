package factory

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	"github.com/automoto/piratecove/logging"
)

// CreateSim creates the singleton holding the world's services. A nil Rand
// gets a fixed seed so runs stay reproducible.
func CreateSim(ecs *ecs.ECS, sim components.SimData) *donburi.Entry {
	entry := archetypes.Sim.Spawn(ecs)
	if sim.Rand == nil {
		sim.Rand = rand.New(rand.NewPCG(1, 2))
	}
	if sim.Logger == nil {
		sim.Logger = logging.Discard()
	}
	components.Sim.SetValue(entry, sim)
	return entry
}

// simRand returns the shared random source.
func simRand(ecs *ecs.ECS) *rand.Rand {
	if entry, ok := components.Sim.First(ecs.World); ok {
		if r := components.Sim.Get(entry).Rand; r != nil {
			return r
		}
	}
	return rand.New(rand.NewPCG(1, 2))
}

func simLogger(ecs *ecs.ECS) *log.Logger {
	if entry, ok := components.Sim.First(ecs.World); ok {
		if l := components.Sim.Get(entry).Logger; l != nil {
			return l
		}
	}
	return logging.Discard()
}

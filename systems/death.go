package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	"github.com/automoto/piratecove/storage"
	"github.com/automoto/piratecove/tags"
)

// UpdateDeaths removes enemy corpses once they have lingered, and turns a
// finished player death into a restart from the last checkpoint.
func UpdateDeaths(ecs *ecs.ECS) {
	var gone []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Alive {
			return
		}
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		removeEntity(ecs, e)
	}

	playerEntry, ok := playerOf(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.DeathFinished {
		return
	}
	level, ok := levelOf(ecs)
	if !ok || level.Progress.Restart {
		return
	}
	handlePlayerDeath(ecs, level, playerEntry)
}

func handlePlayerDeath(ecs *ecs.ECS, level *components.LevelData, playerEntry *donburi.Entry) {
	sim := simOf(ecs)
	level.Progress.Deaths++
	level.Progress.Restart = true
	sim.Logger.Info("player died", "level", level.Level.Name, "deaths", level.Progress.Deaths)

	if sim.Store == nil {
		return
	}
	if err := sim.Store.AddTotals(storage.Totals{Deaths: 1}); err != nil {
		sim.Logger.Warn("failed to add totals", "err", err)
	}
	saveProgress(ecs, level, playerEntry)
}

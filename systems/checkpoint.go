package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/storage"
	"github.com/automoto/piratecove/tags"
)

// UpdateFlags activates checkpoints and the level end when the player
// touches them. Both save progress; the level end also folds the run into
// the lifetime totals and the level's best stats.
func UpdateFlags(ecs *ecs.ECS) {
	playerEntry, ok := playerOf(ecs)
	if !ok || !components.Health.Get(playerEntry).Alive {
		return
	}
	level, ok := levelOf(ecs)
	if !ok || level.Progress.ReachedEnd {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	for _, o := range overlapping(playerObj, 0, 0, tags.ResolvFlag) {
		flagEntry, ok := o.Data.(*donburi.Entry)
		if !ok || flagEntry == nil {
			continue
		}
		flag := components.Flag.Get(flagEntry)
		if flag.Reached {
			continue
		}
		flag.Reached = true

		r := components.Object.Get(flagEntry).Rect()
		if flag.LevelEnd {
			finishLevel(ecs, level, playerEntry)
			return
		}
		level.Progress.Checkpoint = &math.Vec2{X: r.CenterX(), Y: r.Bottom()}
		simOf(ecs).Play(cfg.SoundCheckpoint)
		saveProgress(ecs, level, playerEntry)
	}
}

func finishLevel(ecs *ecs.ECS, level *components.LevelData, playerEntry *donburi.Entry) {
	sim := simOf(ecs)
	level.Progress.ReachedEnd = true
	sim.Play(cfg.SoundLevelEnd)
	saveProgress(ecs, level, playerEntry)

	if sim.Store == nil {
		return
	}
	p := level.Progress
	seconds := float64(p.Ticks) / float64(cfg.C.FPS)
	if err := sim.Store.AddTotals(storage.Totals{
		Coins:         p.Coins,
		EnemiesKilled: p.Kills,
		TimePlayed:    seconds,
	}); err != nil {
		sim.Logger.Warn("failed to add totals", "err", err)
	}
	improved, err := sim.Store.UpdateBestStats(storage.BestStats{
		LevelID:       level.Level.Name,
		Deaths:        p.Deaths,
		Coins:         p.Coins,
		EnemiesKilled: p.Kills,
		TimeTaken:     seconds,
	})
	if err != nil {
		sim.Logger.Warn("failed to update best stats", "err", err)
		return
	}
	sim.Logger.Info("level complete", "level", level.Level.Name, "coins", p.Coins, "kills", p.Kills,
		"deaths", p.Deaths, "seconds", seconds, "best", improved)
}

// snapshotProgress captures the run for persistence.
func snapshotProgress(level *components.LevelData, playerEntry *donburi.Entry) storage.LevelProgress {
	p := level.Progress
	out := storage.LevelProgress{
		LevelID:    level.Level.Name,
		Coins:      p.Coins,
		TimeTaken:  float64(p.Ticks) / float64(cfg.C.FPS),
		Deaths:     p.Deaths,
		ReachedEnd: p.ReachedEnd,
	}
	if p.Checkpoint != nil {
		out.HasCheckpoint = true
		out.CheckpointX = p.Checkpoint.X
		out.CheckpointY = p.Checkpoint.Y
	}
	for id := range p.Collected {
		out.CollectedIDs = append(out.CollectedIDs, id)
	}
	for id := range p.Killed {
		out.KilledIDs = append(out.KilledIDs, id)
	}
	if playerEntry != nil {
		player := components.Player.Get(playerEntry)
		out.Ammo = player.Ammo
		out.Grenades = player.Grenades
		out.Health = components.Health.Get(playerEntry).Current
	}
	return out
}

func saveProgress(ecs *ecs.ECS, level *components.LevelData, playerEntry *donburi.Entry) {
	sim := simOf(ecs)
	if sim.Store == nil {
		return
	}
	if err := sim.Store.SaveLevelProgress(snapshotProgress(level, playerEntry)); err != nil {
		sim.Logger.Warn("failed to save progress", "level", level.Level.Name, "err", err)
	}
}

// SnapshotProgress returns the current run of the world's level, the same
// record a checkpoint would save.
func SnapshotProgress(ecs *ecs.ECS) (storage.LevelProgress, bool) {
	level, ok := levelOf(ecs)
	if !ok {
		return storage.LevelProgress{}, false
	}
	playerEntry, _ := playerOf(ecs)
	return snapshotProgress(level, playerEntry), true
}

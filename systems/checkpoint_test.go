package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/systems/factory"
)

func (tw *testWorld) spawnFlag(id int, x float64, levelEnd bool) {
	factory.CreateFlag(tw.ecs, leveldata.Cell{
		ID:   id,
		Rect: gamemath.NewRect(x-testTile/2, floorTop-testTile, testTile, testTile),
	}, levelEnd)
}

func TestCheckpointSavesProgress(t *testing.T) {
	tw := newTestWorld(t)
	store := tw.withStore()
	player := tw.spawnPlayer(300)
	tw.spawnFlag(1, 300, false)
	tw.level.Progress.Coins = 4
	tw.level.Progress.Collected[9] = true
	tw.level.Progress.Killed[2] = true

	UpdateFlags(tw.ecs)

	cp := tw.level.Progress.Checkpoint
	require.NotNil(t, cp)
	assert.InDelta(t, 300, cp.X, 1e-9)
	assert.InDelta(t, floorTop, cp.Y, 1e-9)
	assert.True(t, tw.played(cfg.SoundCheckpoint))
	assert.False(t, tw.level.Progress.ReachedEnd)

	require.Len(t, store.saved, 1)
	saved := store.last()
	assert.Equal(t, "test", saved.LevelID)
	assert.True(t, saved.HasCheckpoint)
	assert.InDelta(t, 300, saved.CheckpointX, 1e-9)
	assert.Equal(t, 4, saved.Coins)
	assert.Equal(t, []int{9}, saved.CollectedIDs)
	assert.Equal(t, []int{2}, saved.KilledIDs)
	assert.Equal(t, components.Health.Get(player).Current, saved.Health)

	UpdateFlags(tw.ecs)
	assert.Len(t, store.saved, 1, "a reached checkpoint only saves once")
	assert.Empty(t, store.best)
}

func TestLevelEndRecordsStats(t *testing.T) {
	tw := newTestWorld(t)
	store := tw.withStore()
	tw.spawnPlayer(500)
	tw.spawnFlag(2, 500, true)
	tw.level.Progress.Coins = 3
	tw.level.Progress.Kills = 2
	tw.level.Progress.Deaths = 1
	tw.level.Progress.Ticks = cfg.C.FPS * 10

	UpdateFlags(tw.ecs)

	assert.True(t, tw.level.Progress.ReachedEnd)
	assert.True(t, tw.played(cfg.SoundLevelEnd))
	require.Len(t, store.saved, 1)
	assert.True(t, store.last().ReachedEnd)

	assert.Equal(t, 3, store.totals.Coins)
	assert.Equal(t, 2, store.totals.EnemiesKilled)
	assert.InDelta(t, 10, store.totals.TimePlayed, 1e-9)

	require.Len(t, store.best, 1)
	assert.Equal(t, "test", store.best[0].LevelID)
	assert.Equal(t, 1, store.best[0].Deaths)
	assert.InDelta(t, 10, store.best[0].TimeTaken, 1e-9)
}

func TestFlagsIgnoredWhenOutOfReachOrDead(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		alive bool
	}{
		{name: "far away", x: 800, alive: true},
		{name: "dead player", x: 300, alive: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			store := tw.withStore()
			player := tw.spawnPlayer(300)
			components.Health.Get(player).Alive = tt.alive
			tw.spawnFlag(1, tt.x, false)

			UpdateFlags(tw.ecs)

			assert.Nil(t, tw.level.Progress.Checkpoint)
			assert.Empty(t, store.saved)
		})
	}
}

func TestSnapshotProgressWithoutStore(t *testing.T) {
	tw := newTestWorld(t)
	tw.spawnPlayer(300)
	tw.spawnFlag(1, 300, false)

	UpdateFlags(tw.ecs)

	snap, ok := SnapshotProgress(tw.ecs)
	require.True(t, ok)
	assert.True(t, snap.HasCheckpoint)
	assert.Equal(t, cfg.Player.StartAmmo, snap.Ammo)
	assert.Equal(t, cfg.Player.StartGrenades, snap.Grenades)
}

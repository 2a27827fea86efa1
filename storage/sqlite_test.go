package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "cove.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadLevelProgressDefaults(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadLevelProgress("cove_01")
	require.NoError(t, err)
	assert.Equal(t, LevelProgress{LevelID: "cove_01"}, p)
}

func TestSaveAndLoadLevelProgress(t *testing.T) {
	store := openTestStore(t)

	want := LevelProgress{
		LevelID:       "cove_01",
		HasCheckpoint: true,
		CheckpointX:   1152,
		CheckpointY:   432,
		Coins:         3,
		Ammo:          14,
		Grenades:      2,
		Health:        260,
		TimeTaken:     42.5,
		Deaths:        1,
		CollectedIDs:  []int{330, 13},
		KilledIDs:     []int{371},
	}
	require.NoError(t, store.SaveLevelProgress(want))

	got, err := store.LoadLevelProgress("cove_01")
	require.NoError(t, err)
	want.CollectedIDs = []int{13, 330}
	assert.Equal(t, want, got)

	want.ReachedEnd = true
	want.Coins = 5
	require.NoError(t, store.SaveLevelProgress(want))
	got, err = store.LoadLevelProgress("cove_01")
	require.NoError(t, err)
	assert.True(t, got.ReachedEnd)
	assert.Equal(t, 5, got.Coins)

	all, err := store.ListLevelProgress()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.ResetLevelProgress("cove_01"))
	got, err = store.LoadLevelProgress("cove_01")
	require.NoError(t, err)
	assert.False(t, got.HasCheckpoint)
}

func TestAddTotals(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.AddTotals(Totals{Coins: 3, EnemiesKilled: 2, TimePlayed: 10}))
	require.NoError(t, store.AddTotals(Totals{Deaths: 1, TimePlayed: 2.5}))

	got, err := store.Totals()
	require.NoError(t, err)
	assert.Equal(t, Totals{Coins: 3, EnemiesKilled: 2, Deaths: 1, TimePlayed: 12.5}, got)
}

func TestUpdateBestStats(t *testing.T) {
	store := openTestStore(t)

	first := BestStats{LevelID: "cove_01", Deaths: 2, Coins: 5, EnemiesKilled: 3, TimeTaken: 90}
	changed, err := store.UpdateBestStats(first)
	require.NoError(t, err)
	assert.True(t, changed)

	tests := []struct {
		name    string
		run     BestStats
		changed bool
	}{
		{"more deaths", BestStats{LevelID: "cove_01", Deaths: 3, Coins: 9, EnemiesKilled: 9, TimeTaken: 10}, false},
		{"same but slower", BestStats{LevelID: "cove_01", Deaths: 2, Coins: 5, EnemiesKilled: 3, TimeTaken: 95}, false},
		{"more coins", BestStats{LevelID: "cove_01", Deaths: 2, Coins: 6, EnemiesKilled: 0, TimeTaken: 200}, true},
		{"fewer deaths", BestStats{LevelID: "cove_01", Deaths: 0, Coins: 0, EnemiesKilled: 0, TimeTaken: 300}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed, err := store.UpdateBestStats(tt.run)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
		})
	}

	best, err := store.BestStats()
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, 0, best[0].Deaths)
}

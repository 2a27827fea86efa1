package systems

import (
	"github.com/automoto/piratecove/storage"
)

// memStore records what the systems persist.
type memStore struct {
	saved  []storage.LevelProgress
	totals storage.Totals
	best   []storage.BestStats
}

func (m *memStore) SaveLevelProgress(p storage.LevelProgress) error {
	m.saved = append(m.saved, p)
	return nil
}

func (m *memStore) LoadLevelProgress(levelID string) (storage.LevelProgress, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].LevelID == levelID {
			return m.saved[i], nil
		}
	}
	return storage.LevelProgress{LevelID: levelID}, nil
}

func (m *memStore) ResetLevelProgress(levelID string) error {
	kept := m.saved[:0]
	for _, p := range m.saved {
		if p.LevelID != levelID {
			kept = append(kept, p)
		}
	}
	m.saved = kept
	return nil
}

func (m *memStore) AddTotals(delta storage.Totals) error {
	m.totals.Coins += delta.Coins
	m.totals.EnemiesKilled += delta.EnemiesKilled
	m.totals.Deaths += delta.Deaths
	m.totals.TimePlayed += delta.TimePlayed
	return nil
}

func (m *memStore) UpdateBestStats(s storage.BestStats) (bool, error) {
	m.best = append(m.best, s)
	return len(m.best) == 1, nil
}

func (m *memStore) last() storage.LevelProgress {
	return m.saved[len(m.saved)-1]
}

// withStore attaches a recording store to the world.
func (tw *testWorld) withStore() *memStore {
	store := &memStore{}
	simOf(tw.ecs).Store = store
	return store
}

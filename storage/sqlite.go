// Package storage provides SQLite-based persistence for level progress,
// lifetime totals and per-level best runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ProgressStore is what the simulation needs from persistence.
type ProgressStore interface {
	SaveLevelProgress(p LevelProgress) error
	LoadLevelProgress(levelID string) (LevelProgress, error)
	ResetLevelProgress(levelID string) error
	AddTotals(delta Totals) error
	UpdateBestStats(s BestStats) (bool, error)
}

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

var _ ProgressStore = (*Store)(nil)

// LevelProgress is the checkpoint snapshot of a level run.
type LevelProgress struct {
	LevelID       string
	HasCheckpoint bool
	CheckpointX   float64
	CheckpointY   float64
	Coins         int
	Ammo          int
	Grenades      int
	Health        int
	TimeTaken     float64 // seconds
	Deaths        int
	CollectedIDs  []int
	KilledIDs     []int
	ReachedEnd    bool
}

// Totals are lifetime counters across all levels.
type Totals struct {
	Coins         int
	EnemiesKilled int
	Deaths        int
	TimePlayed    float64
}

// BestStats is a level's best finished run.
type BestStats struct {
	LevelID       string
	Deaths        int
	Coins         int
	EnemiesKilled int
	TimeTaken     float64
}

// Better reports whether s beats o: fewer deaths, then more coins, then
// more kills, then a faster time.
func (s BestStats) Better(o BestStats) bool {
	if s.Deaths != o.Deaths {
		return s.Deaths < o.Deaths
	}
	if s.Coins != o.Coins {
		return s.Coins > o.Coins
	}
	if s.EnemiesKilled != o.EnemiesKilled {
		return s.EnemiesKilled > o.EnemiesKilled
	}
	return s.TimeTaken < o.TimeTaken
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_progress (
			level_id TEXT PRIMARY KEY,
			has_checkpoint INTEGER NOT NULL DEFAULT 0,
			checkpoint_x REAL NOT NULL DEFAULT 0,
			checkpoint_y REAL NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			ammo INTEGER NOT NULL DEFAULT 0,
			grenades INTEGER NOT NULL DEFAULT 0,
			health INTEGER NOT NULL DEFAULT 0,
			time_taken REAL NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			collected_ids TEXT NOT NULL DEFAULT '[]',
			killed_ids TEXT NOT NULL DEFAULT '[]',
			reached_end INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS player_totals (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			coins INTEGER NOT NULL DEFAULT 0,
			enemies_killed INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			time_played REAL NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO player_totals (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS level_best (
			level_id TEXT PRIMARY KEY,
			deaths INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			enemies_killed INTEGER NOT NULL,
			time_taken REAL NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevelProgress inserts or replaces a level's progress row.
func (s *Store) SaveLevelProgress(p LevelProgress) error {
	collected, err := json.Marshal(sortedIDs(p.CollectedIDs))
	if err != nil {
		return fmt.Errorf("storage: encode collected ids: %w", err)
	}
	killed, err := json.Marshal(sortedIDs(p.KilledIDs))
	if err != nil {
		return fmt.Errorf("storage: encode killed ids: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO level_progress (
			level_id, has_checkpoint, checkpoint_x, checkpoint_y, coins, ammo, grenades,
			health, time_taken, deaths, collected_ids, killed_ids, reached_end
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(level_id) DO UPDATE SET
			has_checkpoint = excluded.has_checkpoint,
			checkpoint_x = excluded.checkpoint_x,
			checkpoint_y = excluded.checkpoint_y,
			coins = excluded.coins,
			ammo = excluded.ammo,
			grenades = excluded.grenades,
			health = excluded.health,
			time_taken = excluded.time_taken,
			deaths = excluded.deaths,
			collected_ids = excluded.collected_ids,
			killed_ids = excluded.killed_ids,
			reached_end = excluded.reached_end
	`, p.LevelID, p.HasCheckpoint, p.CheckpointX, p.CheckpointY, p.Coins, p.Ammo, p.Grenades,
		p.Health, p.TimeTaken, p.Deaths, string(collected), string(killed), p.ReachedEnd)
	if err != nil {
		return fmt.Errorf("storage: save progress %s: %w", p.LevelID, err)
	}
	return nil
}

// LoadLevelProgress returns a level's progress, or a zero record carrying
// only the level ID when none is saved.
func (s *Store) LoadLevelProgress(levelID string) (LevelProgress, error) {
	p := LevelProgress{LevelID: levelID}
	var collected, killed string
	err := s.db.QueryRow(`
		SELECT has_checkpoint, checkpoint_x, checkpoint_y, coins, ammo, grenades,
			health, time_taken, deaths, collected_ids, killed_ids, reached_end
		FROM level_progress WHERE level_id = ?
	`, levelID).Scan(&p.HasCheckpoint, &p.CheckpointX, &p.CheckpointY, &p.Coins, &p.Ammo,
		&p.Grenades, &p.Health, &p.TimeTaken, &p.Deaths, &collected, &killed, &p.ReachedEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("storage: load progress %s: %w", levelID, err)
	}
	if err := json.Unmarshal([]byte(collected), &p.CollectedIDs); err != nil {
		return p, fmt.Errorf("storage: decode collected ids: %w", err)
	}
	if err := json.Unmarshal([]byte(killed), &p.KilledIDs); err != nil {
		return p, fmt.Errorf("storage: decode killed ids: %w", err)
	}
	return p, nil
}

// ResetLevelProgress deletes a level's progress row.
func (s *Store) ResetLevelProgress(levelID string) error {
	if _, err := s.db.Exec(`DELETE FROM level_progress WHERE level_id = ?`, levelID); err != nil {
		return fmt.Errorf("storage: reset progress %s: %w", levelID, err)
	}
	return nil
}

// ListLevelProgress returns every saved progress row ordered by level.
func (s *Store) ListLevelProgress() ([]LevelProgress, error) {
	rows, err := s.db.Query(`SELECT level_id FROM level_progress ORDER BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: list progress: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: scan progress: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: list progress: %w", err)
	}

	out := make([]LevelProgress, 0, len(ids))
	for _, id := range ids {
		p, err := s.LoadLevelProgress(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// AddTotals adds delta to the lifetime counters.
func (s *Store) AddTotals(delta Totals) error {
	_, err := s.db.Exec(`
		UPDATE player_totals SET
			coins = coins + ?,
			enemies_killed = enemies_killed + ?,
			deaths = deaths + ?,
			time_played = time_played + ?
		WHERE id = 1
	`, delta.Coins, delta.EnemiesKilled, delta.Deaths, delta.TimePlayed)
	if err != nil {
		return fmt.Errorf("storage: update totals: %w", err)
	}
	return nil
}

// Totals returns the lifetime counters.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(`
		SELECT coins, enemies_killed, deaths, time_played FROM player_totals WHERE id = 1
	`).Scan(&t.Coins, &t.EnemiesKilled, &t.Deaths, &t.TimePlayed)
	if err != nil {
		return t, fmt.Errorf("storage: read totals: %w", err)
	}
	return t, nil
}

// UpdateBestStats records s if the level has no best run yet or s beats
// it. It reports whether the row changed.
func (s *Store) UpdateBestStats(b BestStats) (bool, error) {
	var cur BestStats
	err := s.db.QueryRow(`
		SELECT deaths, coins, enemies_killed, time_taken FROM level_best WHERE level_id = ?
	`, b.LevelID).Scan(&cur.Deaths, &cur.Coins, &cur.EnemiesKilled, &cur.TimeTaken)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, fmt.Errorf("storage: read best %s: %w", b.LevelID, err)
	case !b.Better(cur):
		return false, nil
	}

	_, err = s.db.Exec(`
		INSERT INTO level_best (level_id, deaths, coins, enemies_killed, time_taken)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(level_id) DO UPDATE SET
			deaths = excluded.deaths,
			coins = excluded.coins,
			enemies_killed = excluded.enemies_killed,
			time_taken = excluded.time_taken
	`, b.LevelID, b.Deaths, b.Coins, b.EnemiesKilled, b.TimeTaken)
	if err != nil {
		return false, fmt.Errorf("storage: write best %s: %w", b.LevelID, err)
	}
	return true, nil
}

// BestStats returns every level's best run ordered by level.
func (s *Store) BestStats() ([]BestStats, error) {
	rows, err := s.db.Query(`
		SELECT level_id, deaths, coins, enemies_killed, time_taken FROM level_best ORDER BY level_id
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: list best: %w", err)
	}
	defer rows.Close()

	var out []BestStats
	for rows.Next() {
		var b BestStats
		if err := rows.Scan(&b.LevelID, &b.Deaths, &b.Coins, &b.EnemiesKilled, &b.TimeTaken); err != nil {
			return nil, fmt.Errorf("storage: scan best: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func sortedIDs(ids []int) []int {
	out := append([]int{}, ids...)
	sort.Ints(out)
	return out
}

// Package leveldata parses TMX level files into plain level descriptions.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/piratecove/shared/gamemath"

// Kind classifies a tile code.
type Kind int

const (
	KindEmpty Kind = iota
	KindObstacle
	KindHazard
	KindLevelEnd
	KindCheckpoint
	KindPlayer
	KindEnemy
	KindPickup
	KindRed
	KindPurple
	KindOrange
)

// EnemyKind names an enemy species in level data.
type EnemyKind string

const (
	EnemyFierceTooth EnemyKind = "fierce_tooth"
	EnemyPinkStar    EnemyKind = "pink_star"
	EnemySeashell    EnemyKind = "seashell"
)

// PickupKind names a collectible.
type PickupKind string

const (
	PickupCoin       PickupKind = "coin"
	PickupAmmoGem    PickupKind = "ammo_gem"
	PickupHealthGem  PickupKind = "health_gem"
	PickupGrenadeBox PickupKind = "grenade_box"
)

// Cell is one placed tile. ID is row*cols+col and stays stable across loads.
type Cell struct {
	ID   int
	Code int
	Rect gamemath.Rect
}

// EnemySpawn places an enemy. Smart is nil unless the level overrides it.
type EnemySpawn struct {
	Cell
	Kind  EnemyKind
	Smart *bool
}

// PickupSpawn places a collectible.
type PickupSpawn struct {
	Cell
	Kind PickupKind
}

// Marker is an ORANGE danger-zone corner. Zone is an optional explicit
// group label.
type Marker struct {
	Cell
	Zone string
}

// Level is everything the simulation needs from a level file.
type Level struct {
	Name       string
	Cols, Rows int
	TileSize   float64
	Width      float64
	Height     float64

	Obstacles   []Cell
	Hazards     []Cell
	Checkpoints []Cell
	LevelEnds   []Cell
	PlayerSpawn *Cell
	Enemies     []EnemySpawn
	Pickups     []PickupSpawn
	Red         []Cell
	Purple      []Cell
	Orange      []Marker
}

// Rects extracts the rectangles of cells.
func Rects(cells []Cell) []gamemath.Rect {
	out := make([]gamemath.Rect, len(cells))
	for i, c := range cells {
		out[i] = c.Rect
	}
	return out
}

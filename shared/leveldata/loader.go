package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

const (
	tilesLayer   = "tiles"
	markersLayer = "markers"
	enemiesLayer = "enemies"
)

// ErrNoPlayerSpawn is returned for levels without a player tile.
var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// LoadLevel parses a TMX file from fsys. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Cols:     levelMap.Width,
		Rows:     levelMap.Height,
		TileSize: float64(levelMap.TileWidth),
		Width:    float64(levelMap.Width * levelMap.TileWidth),
		Height:   float64(levelMap.Height * levelMap.TileHeight),
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tilesLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: missing %q layer", tmxPath, tilesLayer)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			code := int(tile.ID)
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if v := tilesetTile.Properties.GetString("code"); v != "" {
					if n, err := strconv.Atoi(v); err == nil {
						code = n
					}
				}
			}
			cell := Cell{
				ID:   y*levelMap.Width + x,
				Code: code,
				Rect: gamemath.NewRect(float64(x)*tileW, float64(y)*tileH, tileW, tileH),
			}
			lvl.place(cell)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case markersLayer:
			for _, o := range og.Objects {
				lvl.labelMarker(o.X, o.Y, o.Properties.GetString("zone"))
			}
		case enemiesLayer:
			for _, o := range og.Objects {
				v := o.Properties.GetString("smart")
				if v == "" {
					continue
				}
				smart, err := strconv.ParseBool(v)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d smart=%q: %w", tmxPath, o.ID, v, err)
				}
				lvl.overrideSmart(o.X, o.Y, smart)
			}
		}
	}

	if lvl.PlayerSpawn == nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return lvl, nil
}

func (l *Level) place(c Cell) {
	switch Classify(c.Code) {
	case KindObstacle:
		l.Obstacles = append(l.Obstacles, c)
	case KindHazard:
		l.Hazards = append(l.Hazards, c)
	case KindLevelEnd:
		l.LevelEnds = append(l.LevelEnds, c)
	case KindCheckpoint:
		l.Checkpoints = append(l.Checkpoints, c)
	case KindPlayer:
		if l.PlayerSpawn == nil {
			spawn := c
			l.PlayerSpawn = &spawn
		}
	case KindEnemy:
		l.Enemies = append(l.Enemies, EnemySpawn{Cell: c, Kind: enemyKind(c.Code)})
	case KindPickup:
		l.Pickups = append(l.Pickups, PickupSpawn{Cell: c, Kind: pickupKind(c.Code)})
	case KindRed:
		l.Red = append(l.Red, c)
	case KindPurple:
		l.Purple = append(l.Purple, c)
	case KindOrange:
		l.Orange = append(l.Orange, Marker{Cell: c})
	}
}

func (l *Level) labelMarker(x, y float64, zone string) {
	if zone == "" {
		return
	}
	for i := range l.Orange {
		if l.Orange[i].Rect.Contains(x, y) {
			l.Orange[i].Zone = zone
			return
		}
	}
}

func (l *Level) overrideSmart(x, y float64, smart bool) {
	for i := range l.Enemies {
		if l.Enemies[i].Rect.Contains(x, y) {
			v := smart
			l.Enemies[i].Smart = &v
			return
		}
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

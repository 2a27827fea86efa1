package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/piratecove/shared/gamemath"
)

const tile = 48.0

func marker(col, row float64) Marker {
	return Marker{Rect: gamemath.NewRect(col*tile, row*tile, tile, tile)}
}

func TestDangerZones(t *testing.T) {
	box := gamemath.NewRect(2*tile, tile, 7*tile, 5*tile)
	tests := []struct {
		name      string
		markers   []Marker
		rects     []gamemath.Rect
		validated []bool
	}{
		{
			name:    "no markers",
			markers: nil,
		},
		{
			name:      "four corners",
			markers:   []Marker{marker(2, 1), marker(8, 1), marker(2, 5), marker(8, 5)},
			rects:     []gamemath.Rect{box},
			validated: []bool{true},
		},
		{
			name:      "three corners",
			markers:   []Marker{marker(2, 1), marker(8, 1), marker(2, 5)},
			rects:     []gamemath.Rect{box},
			validated: []bool{false},
		},
		{
			name: "two zones side by side on one floor",
			markers: []Marker{
				marker(0, 1), marker(4, 1), marker(0, 5), marker(4, 5),
				marker(10, 1), marker(14, 1), marker(10, 5), marker(14, 5),
			},
			rects: []gamemath.Rect{
				gamemath.NewRect(0, tile, 5*tile, 5*tile),
				gamemath.NewRect(10*tile, tile, 5*tile, 5*tile),
			},
			validated: []bool{true, true},
		},
		{
			name: "interleaved input order",
			markers: []Marker{
				marker(14, 5), marker(0, 5), marker(10, 1), marker(4, 1),
				marker(10, 5), marker(0, 1), marker(14, 1), marker(4, 5),
			},
			rects: []gamemath.Rect{
				gamemath.NewRect(0, tile, 5*tile, 5*tile),
				gamemath.NewRect(10*tile, tile, 5*tile, 5*tile),
			},
			validated: []bool{true, true},
		},
		{
			name: "zone beside a stray marker on its row",
			markers: []Marker{
				marker(0, 1), marker(4, 1), marker(0, 5), marker(4, 5),
				marker(9, 1),
			},
			rects: []gamemath.Rect{
				gamemath.NewRect(0, tile, 5*tile, 5*tile),
				gamemath.NewRect(9*tile, tile, tile, tile),
			},
			validated: []bool{true, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones := DangerZones(tt.markers, 1)
			require.Len(t, zones, len(tt.rects))
			for i, z := range zones {
				assert.Equal(t, tt.rects[i], z.Rect)
				assert.Equal(t, tt.validated[i], z.Validated)
			}
		})
	}
}

func TestDangerZonesToleranceAndGroups(t *testing.T) {
	off := marker(8, 5)
	off.Rect.X += 1 // within tolerance
	zones := DangerZones([]Marker{marker(2, 1), marker(8, 1), marker(2, 5), off}, 1)
	require.Len(t, zones, 1)
	assert.True(t, zones[0].Validated)

	// two separate zones far apart on different rows and columns
	a := []Marker{marker(0, 0), marker(3, 0), marker(0, 3), marker(3, 3)}
	b := []Marker{marker(10, 6), marker(14, 6), marker(10, 9), marker(14, 9)}
	for i := range b {
		b[i].Group = "cave"
	}
	zones = DangerZones(append(a, b...), 1)
	require.Len(t, zones, 2)
	assert.True(t, zones[0].Validated)
	assert.True(t, zones[1].Validated)
	assert.Equal(t, "cave", zones[1].Group)

	z, ok := ZoneAt(zones, 12*tile, 7*tile)
	require.True(t, ok)
	assert.Equal(t, "cave", z.Group)
	_, ok = ZoneAt(zones, 20*tile, 20*tile)
	assert.False(t, ok)
}

func TestZoneAtSkipsUnvalidated(t *testing.T) {
	zones := DangerZones([]Marker{marker(2, 1), marker(8, 1), marker(2, 5)}, 1)
	_, ok := ZoneAt(zones, 4*tile, 3*tile)
	assert.False(t, ok)
}

func testOptions() GraphOptions {
	return GraphOptions{
		TileSize:            tile,
		SameHeightTolerance: 12,
		WalkRange:           6,
		JumpRange:           2,
		WalkCost:            1,
		JumpCost:            2,
	}
}

func waypoint(col, row float64) gamemath.Rect {
	return gamemath.NewRect(col*tile, row*tile, tile, tile)
}

func TestGraphEdges(t *testing.T) {
	g := NewGraph([]gamemath.Rect{
		waypoint(0, 5),  // 0
		waypoint(4, 5),  // 1 same height, walkable
		waypoint(5, 3),  // 2 two tiles up from 1
		waypoint(20, 5), // 3 too far
	}, testOptions())

	assert.Equal(t, 1.0, g.Nodes[0].PathNeighborCost(g.Nodes[1]))
	assert.Equal(t, 2.0, g.Nodes[1].PathNeighborCost(g.Nodes[2]))
	assert.Equal(t, 0, g.Nodes[3].Degree())
	assert.Equal(t, 4.0, g.Nodes[0].PathEstimatedCost(g.Nodes[1]))
}

func TestFindPath(t *testing.T) {
	g := NewGraph([]gamemath.Rect{
		waypoint(0, 5),
		waypoint(4, 5),
		waypoint(5, 3),
		waypoint(9, 3),
		waypoint(30, 0),
	}, testOptions())

	t.Run("start equals goal", func(t *testing.T) {
		path, ok := g.FindPath(g.Nodes[1], g.Nodes[1])
		require.True(t, ok)
		assert.Equal(t, []*Waypoint{g.Nodes[1]}, path)
	})

	t.Run("route climbs", func(t *testing.T) {
		path, ok := g.FindPath(g.Nodes[0], g.Nodes[3])
		require.True(t, ok)
		require.Len(t, path, 4)
		assert.Same(t, g.Nodes[0], path[0])
		assert.Same(t, g.Nodes[2], path[2])
		assert.Same(t, g.Nodes[3], path[3])
	})

	t.Run("disconnected", func(t *testing.T) {
		path, ok := g.FindPath(g.Nodes[0], g.Nodes[4])
		assert.False(t, ok)
		assert.Empty(t, path)
	})

	t.Run("nil endpoints", func(t *testing.T) {
		_, ok := g.FindPath(nil, g.Nodes[0])
		assert.False(t, ok)
	})
}

func TestNearest(t *testing.T) {
	g := NewGraph([]gamemath.Rect{waypoint(0, 0), waypoint(10, 0)}, testOptions())
	assert.Same(t, g.Nodes[1], g.Nearest(9*tile, 0))
	assert.Nil(t, NewGraph(nil, testOptions()).Nearest(0, 0))
}

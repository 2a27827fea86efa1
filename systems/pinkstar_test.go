package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/shared/nav"
)

func TestPinkStarChasesOnlyInsideLair(t *testing.T) {
	lair := nav.Zone{Rect: gamemath.NewRect(200, 200, 400, 200), Validated: true, Markers: 4}

	tests := []struct {
		name    string
		playerX float64
		chasing bool
		facing  float64
	}{
		{name: "player inside lair", playerX: 250, chasing: true, facing: cfg.DirectionLeft},
		{name: "player outside lair", playerX: 100, chasing: false, facing: cfg.DirectionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t, lair)
			star := tw.spawnEnemy(leveldata.EnemyPinkStar, 1, 500)
			tw.spawnPlayer(tt.playerX)

			ps := components.PinkStar.Get(star)
			require.True(t, ps.HasLair)
			en := components.Enemy.Get(star)
			en.Dwell = 1000 // no patrol turns during the test
			startX := components.Object.Get(star).Rect().CenterX()

			UpdateEnemies(tw.ecs)

			assert.Equal(t, tt.chasing, ps.Chasing)
			assert.Equal(t, tt.facing, components.Body.Get(star).Facing)
			if tt.chasing {
				assert.True(t, en.FSM.Is(cfg.StateChase))
				assert.InDelta(t, startX-cfg.PinkStar.ChaseSpeed, components.Object.Get(star).Rect().CenterX(), 1)
			} else {
				assert.False(t, en.FSM.Is(cfg.StateChase, cfg.StateAttack))
			}
		})
	}
}

func TestPinkStarFollowsWaypoints(t *testing.T) {
	lair := nav.Zone{Rect: gamemath.NewRect(0, 0, testWidth, testHeight), Validated: true, Markers: 4}
	tw := newTestWorld(t, lair)

	// The waypoint nearest the star lies to its right while the player is
	// to its left, so the path decides the facing.
	wps := []gamemath.Rect{
		gamemath.NewRect(530, floorTop-testTile, testTile, testTile),
		gamemath.NewRect(300, floorTop-testTile, testTile, testTile),
	}
	tw.level.Graph = nav.NewGraph(wps, nav.GraphOptions{
		TileSize:            testTile,
		SameHeightTolerance: cfg.Nav.SameHeightTolerance,
		WalkRange:           cfg.Nav.WalkRangeTiles,
		JumpRange:           cfg.Nav.JumpRangeTiles,
		WalkCost:            cfg.Nav.WalkCost,
		JumpCost:            cfg.Nav.JumpCost,
	})

	star := tw.spawnEnemy(leveldata.EnemyPinkStar, 1, 500)
	components.Body.Get(star).Facing = cfg.DirectionLeft
	components.Enemy.Get(star).Dwell = 1000
	tw.spawnPlayer(324)

	UpdateEnemies(tw.ecs)

	ps := components.PinkStar.Get(star)
	require.True(t, ps.Chasing)
	require.NotEmpty(t, ps.Path)
	assert.Equal(t, cfg.DirectionRight, components.Body.Get(star).Facing, "heads for the first waypoint")
	assert.Equal(t, cfg.PinkStar.RepathTicks, ps.RepathTimer)
}

func TestPinkStarStunnedStopsChasing(t *testing.T) {
	lair := nav.Zone{Rect: gamemath.NewRect(0, 0, testWidth, testHeight), Validated: true, Markers: 4}
	tw := newTestWorld(t, lair)
	star := tw.spawnEnemy(leveldata.EnemyPinkStar, 1, 500)
	tw.spawnPlayer(300)
	components.Enemy.Get(star).Dwell = 1000

	UpdateEnemies(tw.ecs)
	require.True(t, components.PinkStar.Get(star).Chasing)

	components.Health.Get(star).HitStun = 50
	UpdateEnemies(tw.ecs)

	assert.False(t, components.PinkStar.Get(star).Chasing)
	assert.True(t, components.Enemy.Get(star).FSM.Is(cfg.StateHit))
	assert.Zero(t, components.Enemy.Get(star).Speed)
}

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
	"github.com/automoto/piratecove/tags"
)

func TestEnemyCorpseLingers(t *testing.T) {
	tw := newTestWorld(t)
	enemy := tw.spawnEnemy(leveldata.EnemyFierceTooth, 5, 600)
	hazard := factory.CreateHazard(tw.ecs, gamemath.NewRect(0, 0, testTile, testTile))
	require.True(t, ApplyHit(tw.ecs, enemy, hazard, 1000))

	for range cfg.Enemy.DeathLinger - 1 {
		UpdateDeaths(tw.ecs)
	}
	assert.Equal(t, 1, tw.count(tags.Enemy))

	UpdateDeaths(tw.ecs)
	assert.Zero(t, tw.count(tags.Enemy))
	assert.True(t, tw.level.Progress.Killed[5], "the kill outlives the corpse")
}

func TestLivingEnemiesStay(t *testing.T) {
	tw := newTestWorld(t)
	tw.spawnEnemy(leveldata.EnemyFierceTooth, 5, 600)

	for range cfg.Enemy.DeathLinger * 2 {
		UpdateDeaths(tw.ecs)
	}
	assert.Equal(t, 1, tw.count(tags.Enemy))
}

func TestPlayerDeathRequestsRestart(t *testing.T) {
	tw := newTestWorld(t)
	store := tw.withStore()
	player := tw.spawnPlayer(300)

	UpdateDeaths(tw.ecs)
	assert.False(t, tw.level.Progress.Restart, "a living player does not restart")

	components.Player.Get(player).DeathFinished = true
	UpdateDeaths(tw.ecs)
	UpdateDeaths(tw.ecs)

	assert.True(t, tw.level.Progress.Restart)
	assert.Equal(t, 1, tw.level.Progress.Deaths, "a death counts once")
	assert.Equal(t, 1, store.totals.Deaths)
	require.Len(t, store.saved, 1)
	assert.Equal(t, 1, store.last().Deaths)
}

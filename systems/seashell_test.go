package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/tags"
)

func TestSeashellBiteHoldsAfterLosingSight(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.grounded(leveldata.EnemySeashell, false, 400)
	player := tw.spawnPlayer(430)
	en := components.Enemy.Get(e)
	h := components.Health.Get(player)

	tw.think(e)
	require.True(t, en.FSM.Is(cfg.StateBite))
	assert.Equal(t, h.Max-cfg.Seashell.BiteDamage, h.Current)

	tw.placePlayer(player, 200, floorTop)
	for i := 1; i < cfg.Seashell.BiteTicks; i++ {
		tw.think(e)
		require.True(t, en.FSM.Is(cfg.StateBite), "tick %d", i)
	}
	tw.think(e)
	assert.True(t, en.FSM.Is(cfg.StateIdle))
	assert.Equal(t, h.Max-cfg.Seashell.BiteDamage, h.Current, "bitten once")
}

func TestSeashellBitesOncePerCooldown(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.grounded(leveldata.EnemySeashell, false, 400)
	player := tw.spawnPlayer(430)
	h := components.Health.Get(player)
	h.Current, h.Max = 1000, 1000

	tick := func() {
		tw.think(e)
		h.HitStun = 0
	}
	for range cfg.Seashell.BiteCooldown {
		tick()
	}
	assert.Equal(t, 1000-cfg.Seashell.BiteDamage, h.Current)

	tick()
	assert.Equal(t, 1000-2*cfg.Seashell.BiteDamage, h.Current)
}

func TestSeashellBiteOnStunnedPlayerStillCoolsDown(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.grounded(leveldata.EnemySeashell, false, 400)
	player := tw.spawnPlayer(430)
	ss := components.Seashell.Get(e)
	h := components.Health.Get(player)
	h.HitStun = 50

	tw.think(e)
	assert.Equal(t, h.Max, h.Current)
	assert.Equal(t, cfg.Seashell.BiteCooldown, ss.BiteCooldown)

	h.HitStun = 0
	tw.think(e)
	assert.Equal(t, h.Max, h.Current, "the missed bite still used the cooldown")
}

func TestSeashellPearlCooldown(t *testing.T) {
	tw := newTestWorld(t)
	e := tw.grounded(leveldata.EnemySeashell, false, 400)
	tw.spawnPlayer(600)

	for range cfg.Seashell.FireCooldown {
		tw.think(e)
	}
	assert.True(t, components.Enemy.Get(e).FSM.Is(cfg.StateFire))
	assert.Equal(t, 1, tw.count(tags.Projectile))

	tw.think(e)
	assert.Equal(t, 2, tw.count(tags.Projectile))
	assert.True(t, tw.played(cfg.SoundPearl))
}

func TestSeashellSeesOnlyAtOrAboveItsBase(t *testing.T) {
	tests := []struct {
		name   string
		bottom float64
		fires  bool
	}{
		{name: "level with the shell", bottom: floorTop, fires: true},
		{name: "above the shell", bottom: floorTop - 20, fires: true},
		{name: "below the shell", bottom: floorTop + 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			e := tw.grounded(leveldata.EnemySeashell, false, 400)
			player := tw.spawnPlayer(600)
			tw.placePlayer(player, 600, tt.bottom)

			tw.think(e)

			assert.Equal(t, tt.fires, components.Enemy.Get(e).PlayerSeen)
			want := 0
			if tt.fires {
				want = 1
			}
			assert.Equal(t, want, tw.count(tags.Projectile))
		})
	}
}

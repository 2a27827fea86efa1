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

func TestBlastDamagesOnceByBand(t *testing.T) {
	tw := newTestWorld(t)
	near := tw.spawnEnemy(leveldata.EnemyFierceTooth, 1, 300)
	far := tw.spawnEnemy(leveldata.EnemyFierceTooth, 2, 900)
	player := tw.spawnPlayer(60)
	for _, e := range []*components.HealthData{components.Health.Get(near), components.Health.Get(far)} {
		e.Current, e.Max = 1000, 1000
	}

	nr := components.Object.Get(near).Rect()
	grenade := factory.CreateGrenade(tw.ecs, nr.CenterX(), nr.CenterY(), cfg.DirectionRight)
	detonate(tw.ecs, grenade)

	g := components.Grenade.Get(grenade)
	require.True(t, g.Blasting)
	require.True(t, g.Applied)

	size := cfg.Grenade.BlastTiles * testTile
	radius := gamemath.BlastRadius(size, size, cfg.Grenade.RadiusSlack)
	d := gamemath.Distance(g.BlastRect.CenterX(), g.BlastRect.CenterY(), nr.CenterX(), nr.CenterY())
	want := gamemath.BlastDamage(d, radius, cfg.Grenade.EnemyTiers)
	require.Positive(t, want)

	assert.Equal(t, 1000-want, components.Health.Get(near).Current)
	assert.Equal(t, 1000, components.Health.Get(far).Current, "out of range")
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current, "out of range")
	assert.True(t, tw.played(cfg.SoundExplosion))

	// Later ticks of the blast never hit again, even once the stun wears off.
	components.Health.Get(near).HitStun = 0
	applyBlast(tw.ecs, grenade, g)
	for range cfg.Grenade.BlastTicks - 1 {
		UpdateGrenades(tw.ecs)
	}
	assert.Equal(t, 1000-want, components.Health.Get(near).Current)
	assert.Equal(t, 1, tw.count(tags.Grenade))

	UpdateGrenades(tw.ecs)
	assert.Zero(t, tw.count(tags.Grenade), "removed when the blast ends")
}

func TestGrenadeFuseAndRest(t *testing.T) {
	tw := newTestWorld(t)
	grenade := factory.CreateGrenade(tw.ecs, 200, 300, cfg.DirectionRight)
	body := components.Body.Get(grenade)
	obj := components.Object.Get(grenade)

	for range cfg.Grenade.Fuse - 1 {
		UpdateGrenades(tw.ecs)
	}
	g := components.Grenade.Get(grenade)
	require.False(t, g.Blasting)
	assert.InDelta(t, floorTop, obj.Rect().Bottom(), 0.001, "settled on the floor")
	assert.Zero(t, body.Velocity.X, "rolled to a stop")
	assert.Greater(t, obj.Rect().Left(), 200.0, "travelled forward")

	UpdateGrenades(tw.ecs)
	assert.True(t, g.Blasting)
}

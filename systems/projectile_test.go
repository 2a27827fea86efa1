package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/systems/factory"
	"github.com/automoto/piratecove/tags"
)

func TestPurpleGemHitsFirstEnemyAndVanishes(t *testing.T) {
	tw := newTestWorld(t)
	first := tw.spawnEnemy(leveldata.EnemyFierceTooth, 1, 300)
	second := tw.spawnEnemy(leveldata.EnemyFierceTooth, 2, 310)
	r := components.Object.Get(first).Rect()
	factory.CreateProjectile(tw.ecs, components.ProjectilePurpleGem, 150, r.CenterY(), cfg.DirectionRight)

	for range 30 {
		UpdateProjectiles(tw.ecs)
	}

	damaged := 0
	for _, e := range []*components.HealthData{components.Health.Get(first), components.Health.Get(second)} {
		if e.Current < e.Max {
			damaged++
			assert.Equal(t, e.Max-cfg.Projectile.PurpleGem.Damage, e.Current)
		}
	}
	assert.Equal(t, 1, damaged, "one enemy per gem")
	assert.Zero(t, tw.count(tags.Projectile))
}

func TestEnemyShotBurstsOnPlayer(t *testing.T) {
	tw := newTestWorld(t)
	player := tw.spawnPlayer(400)
	r := components.Object.Get(player).Rect()
	shot := factory.CreateProjectile(tw.ecs, components.ProjectileCannonBall, 200, r.CenterY(), cfg.DirectionRight)

	for range 30 {
		UpdateProjectiles(tw.ecs)
		if components.Projectile.Get(shot).Exploding {
			break
		}
	}

	p := components.Projectile.Get(shot)
	require.True(t, p.Exploding)
	assert.Equal(t, cfg.Player.Health-cfg.Projectile.CannonBall.Damage, components.Health.Get(player).Current)
	assert.InDelta(t, r.CenterX(), components.Object.Get(shot).Rect().CenterX(), 1, "centred on the target")

	for range cfg.Projectile.CannonBall.ExplosionTicks {
		UpdateProjectiles(tw.ecs)
	}
	assert.Zero(t, tw.count(tags.Projectile))
	assert.Equal(t, cfg.Player.Health-cfg.Projectile.CannonBall.Damage, components.Health.Get(player).Current,
		"the burst does not hit twice")
}

func TestShotsLeavingTheWorldAreRemoved(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		facing float64
	}{
		{name: "right edge", x: testWidth - 20, facing: cfg.DirectionRight},
		{name: "left edge", x: 20, facing: cfg.DirectionLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			factory.CreateProjectile(tw.ecs, components.ProjectilePearl, tt.x, 100, tt.facing)
			require.Equal(t, 1, tw.count(tags.Projectile))
			for range 20 {
				UpdateProjectiles(tw.ecs)
			}
			assert.Zero(t, tw.count(tags.Projectile))
		})
	}
}

package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/gamemath"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/systems/factory"
	"github.com/automoto/piratecove/tags"
)

func (tw *testWorld) spawnPickup(kind leveldata.PickupKind, id int, x float64) {
	factory.CreatePickup(tw.ecs, leveldata.PickupSpawn{
		Cell: leveldata.Cell{ID: id, Rect: gamemath.NewRect(x-testTile/2, floorTop-testTile, testTile, testTile)},
		Kind: kind,
	})
}

func TestUpdatePickups(t *testing.T) {
	tests := []struct {
		name  string
		kind  leveldata.PickupKind
		sound cfg.SoundID
		check func(t *testing.T, p *components.PlayerData, h *components.HealthData)
	}{
		{
			name:  "coin",
			kind:  leveldata.PickupCoin,
			sound: cfg.SoundCoin,
			check: func(t *testing.T, p *components.PlayerData, _ *components.HealthData) {
				assert.Equal(t, 1, p.Coins)
				assert.Equal(t, cfg.Player.CounterDisplay, p.CoinTimer)
			},
		},
		{
			name:  "ammo gem",
			kind:  leveldata.PickupAmmoGem,
			sound: cfg.SoundPickup,
			check: func(t *testing.T, p *components.PlayerData, _ *components.HealthData) {
				gained := p.Ammo - cfg.Player.StartAmmo
				assert.GreaterOrEqual(t, gained, cfg.Pickup.AmmoMin)
				assert.LessOrEqual(t, gained, cfg.Pickup.AmmoMax)
				assert.Equal(t, cfg.Player.CounterDisplay, p.AmmoTimer)
			},
		},
		{
			name:  "grenade box",
			kind:  leveldata.PickupGrenadeBox,
			sound: cfg.SoundPickup,
			check: func(t *testing.T, p *components.PlayerData, _ *components.HealthData) {
				assert.Equal(t, cfg.Player.StartGrenades+cfg.Pickup.GrenadeBox, p.Grenades)
			},
		},
		{
			name:  "health gem never overheals",
			kind:  leveldata.PickupHealthGem,
			sound: cfg.SoundPickup,
			check: func(t *testing.T, _ *components.PlayerData, h *components.HealthData) {
				assert.Equal(t, h.Max, h.Current)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			player := tw.spawnPlayer(200)
			tw.spawnPickup(tt.kind, 11, 200)

			UpdatePickups(tw.ecs)

			tt.check(t, components.Player.Get(player), components.Health.Get(player))
			assert.True(t, tw.played(tt.sound))
			assert.True(t, tw.level.Progress.Collected[11])
			assert.Zero(t, tw.count(tags.Pickup))
		})
	}
}

func TestUpdatePickupsOutOfReach(t *testing.T) {
	tw := newTestWorld(t)
	player := tw.spawnPlayer(200)
	tw.spawnPickup(leveldata.PickupCoin, 3, 700)

	for range 30 {
		UpdatePickups(tw.ecs)
	}

	assert.Zero(t, components.Player.Get(player).Coins)
	assert.Equal(t, 1, tw.count(tags.Pickup))
	assert.Empty(t, tw.level.Progress.Collected)
}

func TestUpdatePickupsIgnoresDeadPlayer(t *testing.T) {
	tw := newTestWorld(t)
	player := tw.spawnPlayer(200)
	components.Health.Get(player).Alive = false
	tw.spawnPickup(leveldata.PickupCoin, 3, 200)

	UpdatePickups(tw.ecs)

	assert.Zero(t, components.Player.Get(player).Coins)
	assert.Equal(t, 1, tw.count(tags.Pickup))
}

func TestUpdateHazardsCooldown(t *testing.T) {
	tw := newTestWorld(t)
	player := tw.spawnPlayer(200)
	factory.CreateHazard(tw.ecs, gamemath.NewRect(176, floorTop-testTile, testTile, testTile))
	h := components.Health.Get(player)
	p := components.Player.Get(player)

	UpdateHazards(tw.ecs)
	assert.Equal(t, h.Max-cfg.Hazard.Damage, h.Current)
	assert.Equal(t, cfg.Player.HazardCooldown, p.HazardCooldown)

	UpdateHazards(tw.ecs)
	assert.Equal(t, h.Max-cfg.Hazard.Damage, h.Current, "no second hit while cooling down")

	p.HazardCooldown = 0
	UpdateHazards(tw.ecs)
	assert.Equal(t, max(0, h.Max-2*cfg.Hazard.Damage), h.Current)
}

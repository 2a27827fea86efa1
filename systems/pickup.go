package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/tags"
)

// UpdatePickups bobs collectibles and hands them to the player on touch.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, hasPlayer := playerOf(ecs)
	if hasPlayer && !components.Health.Get(playerEntry).Alive {
		hasPlayer = false
	}

	var taken []*donburi.Entry
	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		bob(pickup)
		components.Sprite.Get(e).Update(1)

		if hasPlayer && Collide(playerEntry, e) {
			collect(ecs, playerEntry, pickup)
			taken = append(taken, e)
		}
	})

	for _, e := range taken {
		removeEntity(ecs, e)
	}
}

// bob advances whichever tween is active and swaps on completion.
func bob(p *components.PickupData) {
	if p.Rise == nil || p.Fall == nil {
		return
	}
	tw := p.Fall
	if p.Rising {
		tw = p.Rise
	}
	v, done := tw.Update(1)
	p.Offset = float64(v)
	if done {
		tw.Reset()
		p.Rising = !p.Rising
	}
}

func collect(ecs *ecs.ECS, playerEntry *donburi.Entry, pickup *components.PickupData) {
	c := cfg.Pickup
	player := components.Player.Get(playerEntry)
	sim := simOf(ecs)
	rng := sim.Rand
	if rng == nil {
		rng = fallbackSim.Rand
	}

	switch pickup.Kind {
	case leveldata.PickupCoin:
		player.Coins++
		player.CoinTimer = cfg.Player.CounterDisplay
		sim.Play(cfg.SoundCoin)
	case leveldata.PickupAmmoGem:
		player.Ammo += c.AmmoMin + rng.IntN(c.AmmoMax-c.AmmoMin+1)
		player.AmmoTimer = cfg.Player.CounterDisplay
		sim.Play(cfg.SoundPickup)
	case leveldata.PickupHealthGem:
		h := components.Health.Get(playerEntry)
		h.Current = min(h.Max, h.Current+c.HealthMin+rng.IntN(c.HealthMax-c.HealthMin+1))
		h.BarTimer = cfg.Enemy.HealthBarDuration
		sim.Play(cfg.SoundPickup)
	case leveldata.PickupGrenadeBox:
		player.Grenades += c.GrenadeBox
		player.GrenadeTimer = cfg.Player.CounterDisplay
		sim.Play(cfg.SoundPickup)
	}

	if level, ok := levelOf(ecs); ok {
		level.Progress.Collected[pickup.ID] = true
		level.Progress.Coins = player.Coins
	}
}

// UpdateHazards damages the player standing in a hazard tile, at most once
// per hazard cooldown.
func UpdateHazards(ecs *ecs.ECS) {
	playerEntry, ok := playerOf(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dying || player.HazardCooldown > 0 {
		return
	}
	hits := overlapping(components.Object.Get(playerEntry), 0, 0, tags.ResolvHazard)
	if len(hits) == 0 {
		return
	}
	hazard, ok := hits[0].Data.(*donburi.Entry)
	if !ok {
		return
	}
	if ApplyHit(ecs, playerEntry, hazard, cfg.Hazard.Damage) {
		player.HazardCooldown = cfg.Player.HazardCooldown
	}
}

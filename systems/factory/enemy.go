package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/piratecove/archetypes"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/shared/nav"
	"github.com/automoto/piratecove/tags"
)

// speciesOf maps level data to a species. Unknown kinds fall back to
// FierceTooth.
func speciesOf(kind leveldata.EnemyKind) cfg.Species {
	switch kind {
	case leveldata.EnemySeashell:
		return cfg.SpeciesSeashell
	case leveldata.EnemyPinkStar:
		return cfg.SpeciesPinkStar
	}
	return cfg.SpeciesFierceTooth
}

// CreateEnemy spawns an enemy standing on the bottom edge of its spawn tile.
// zones are the level's danger zones; PinkStar picks its lair from them.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn, zones []nav.Zone) *donburi.Entry {
	species := speciesOf(spawn.Kind)

	var (
		w, h    float64
		health  int
		stun    int
		smart   bool
		jump    float64
		sources cfg.StunSet
		extra   donburi.IComponentType
		sprite  string
	)
	switch species {
	case cfg.SpeciesSeashell:
		c := cfg.Seashell
		w, h, health, stun, smart = c.Width, c.Height, c.Health, c.HitStun, c.Smart
		sources = cfg.NewStunSet(cfg.SourcePlayer, cfg.SourceGrenade)
		extra, sprite = components.Seashell, SpriteSeashell
	case cfg.SpeciesPinkStar:
		c := cfg.PinkStar
		w, h, health, stun, jump = c.Width, c.Height, c.Health, c.HitStun, c.JumpImpulse
		sources = cfg.NewStunSet(cfg.SourceGrenade)
		extra, sprite = components.PinkStar, SpritePinkStar
	default:
		c := cfg.FierceTooth
		w, h, health, stun, smart, jump = c.Width, c.Height, c.Health, c.HitStun, c.Smart, c.JumpImpulse
		sources = cfg.NewStunSet(cfg.SourcePlayer, cfg.SourceGrenade)
		extra, sprite = components.FierceTooth, SpriteFierceTooth
	}
	if spawn.Smart != nil {
		smart = *spawn.Smart
	}

	enemy := archetypes.Enemy.Spawn(ecs, extra)

	x := spawn.Rect.CenterX() - w/2
	y := spawn.Rect.Bottom() - h
	obj := newObject(ecs, enemy, x, y, w, h, tags.ResolvEnemy)
	obj.AddTags("character")

	rng := simRand(ecs)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Species: species,
		SpawnID: spawn.ID,
		Smart:   smart,
		FSM:     components.NewMachine(components.TransitionsFor(species), cfg.StateIdle),
		Dwell:   cfg.Enemy.DwellMin + rng.IntN(cfg.Enemy.DwellMax-cfg.Enemy.DwellMin+1),
	})

	body := components.BodyData{
		Position:         math.Vec2{X: x, Y: y},
		Facing:           cfg.DirectionRight,
		Gravity:          cfg.Physics.Gravity,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
		BlockedByRed:     true,
	}
	if jump != 0 {
		body.JumpImpulses = []float64{jump}
	}
	components.Body.SetValue(enemy, body)

	components.Health.SetValue(enemy, components.HealthData{
		Current:      health,
		Max:          health,
		Alive:        true,
		StunDuration: stun,
		StunSources:  sources,
	})
	components.DamageSource.SetValue(enemy, components.DamageSourceData{Kind: cfg.SourceEnemy})
	components.Sprite.SetValue(enemy, newSprite(ecs, sprite, cfg.SheetIdle))

	if species == cfg.SpeciesPinkStar {
		lair, ok := lairFor(zones, spawn.Rect.CenterX(), spawn.Rect.CenterY())
		components.PinkStar.SetValue(enemy, components.PinkStarData{Lair: lair, HasLair: ok})
	}

	return enemy
}

// lairFor picks the validated zone holding the spawn point, else the first
// validated zone. Without one the PinkStar never chases.
func lairFor(zones []nav.Zone, x, y float64) (nav.Zone, bool) {
	if z, ok := nav.ZoneAt(zones, x, y); ok {
		return z, true
	}
	for _, z := range zones {
		if z.Validated {
			return z, true
		}
	}
	return nav.Zone{}, false
}

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/automoto/piratecove/config"
)

func TestMachineFire(t *testing.T) {
	tests := []struct {
		name    string
		species cfg.Species
		from    cfg.StateID
		events  []cfg.EventID
		want    cfg.StateID
	}{
		{"fierce tooth spots and attacks", cfg.SpeciesFierceTooth, cfg.StateIdle,
			[]cfg.EventID{cfg.EventSpotPlayer, cfg.EventPlayerInReach}, cfg.StateAttack},
		{"fierce tooth recovers after landing", cfg.SpeciesFierceTooth, cfg.StateAttack,
			[]cfg.EventID{cfg.EventAttackLanded, cfg.EventRecovered}, cfg.StateIdle},
		{"fierce tooth flees then runs", cfg.SpeciesFierceTooth, cfg.StateIdle,
			[]cfg.EventID{cfg.EventGrenadeSpotted, cfg.EventFleeOver}, cfg.StateRunning},
		{"seashell bite ignores sight events", cfg.SpeciesSeashell, cfg.StateIdle,
			[]cfg.EventID{cfg.EventPlayerInReach, cfg.EventSpotPlayer, cfg.EventLosePlayer}, cfg.StateBite},
		{"seashell bite ends idle", cfg.SpeciesSeashell, cfg.StateBite,
			[]cfg.EventID{cfg.EventBiteOver}, cfg.StateIdle},
		{"pink star loses the player", cfg.SpeciesPinkStar, cfg.StateIdle,
			[]cfg.EventID{cfg.EventSpotPlayer, cfg.EventLosePlayer}, cfg.StateRunning},
		{"stun then stun over", cfg.SpeciesPinkStar, cfg.StateChase,
			[]cfg.EventID{cfg.EventStunned, cfg.EventStunOver}, cfg.StateIdle},
		{"dead is final", cfg.SpeciesFierceTooth, cfg.StateIdle,
			[]cfg.EventID{cfg.EventDied, cfg.EventSpotPlayer, cfg.EventStunOver}, cfg.StateDead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(TransitionsFor(tt.species), tt.from)
			for _, ev := range tt.events {
				m.Fire(ev)
			}
			assert.Equal(t, tt.want, m.State)
		})
	}
}

func TestMachineTicksResetOnChange(t *testing.T) {
	m := NewMachine(FierceToothTransitions, cfg.StateIdle)
	m.Tick()
	m.Tick()
	assert.Equal(t, 2, m.Ticks)

	assert.False(t, m.Fire(cfg.EventBiteOver), "unknown events are ignored")
	assert.Equal(t, 2, m.Ticks)

	assert.True(t, m.Fire(cfg.EventDwellElapsed))
	assert.Equal(t, cfg.StateRunning, m.State)
	assert.Zero(t, m.Ticks)
	assert.True(t, m.Accepts(cfg.EventDwellElapsed))
	assert.False(t, m.Accepts(cfg.EventBiteOver))
}

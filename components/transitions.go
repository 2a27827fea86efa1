package components

import cfg "github.com/automoto/piratecove/config"

// FierceToothTransitions drives the patrolling melee pirate. Smart ones flee
// grenades; the table is the same for both.
var FierceToothTransitions = Transitions{
	cfg.StateIdle: {
		cfg.EventDwellElapsed:   cfg.StateRunning,
		cfg.EventSpotPlayer:     cfg.StateChase,
		cfg.EventPlayerInReach:  cfg.StateAttack,
		cfg.EventAttackLanded:   cfg.StateRecover,
		cfg.EventStunned:        cfg.StateHit,
		cfg.EventGrenadeSpotted: cfg.StateFlee,
		cfg.EventDied:           cfg.StateDead,
	},
	cfg.StateRunning: {
		cfg.EventDwellElapsed:   cfg.StateIdle,
		cfg.EventSpotPlayer:     cfg.StateChase,
		cfg.EventPlayerInReach:  cfg.StateAttack,
		cfg.EventAttackLanded:   cfg.StateRecover,
		cfg.EventStunned:        cfg.StateHit,
		cfg.EventGrenadeSpotted: cfg.StateFlee,
		cfg.EventDied:           cfg.StateDead,
	},
	cfg.StateChase: {
		cfg.EventLosePlayer:     cfg.StateRunning,
		cfg.EventPlayerInReach:  cfg.StateAttack,
		cfg.EventAttackLanded:   cfg.StateRecover,
		cfg.EventStunned:        cfg.StateHit,
		cfg.EventGrenadeSpotted: cfg.StateFlee,
		cfg.EventDied:           cfg.StateDead,
	},
	cfg.StateAttack: {
		cfg.EventLosePlayer:     cfg.StateRunning,
		cfg.EventSpotPlayer:     cfg.StateChase,
		cfg.EventAttackLanded:   cfg.StateRecover,
		cfg.EventStunned:        cfg.StateHit,
		cfg.EventGrenadeSpotted: cfg.StateFlee,
		cfg.EventDied:           cfg.StateDead,
	},
	cfg.StateRecover: {
		cfg.EventRecovered: cfg.StateIdle,
		cfg.EventStunned:   cfg.StateHit,
		cfg.EventDied:      cfg.StateDead,
	},
	cfg.StateHit: {
		cfg.EventStunOver: cfg.StateIdle,
		cfg.EventDied:     cfg.StateDead,
	},
	cfg.StateFlee: {
		cfg.EventFleeOver:     cfg.StateRunning,
		cfg.EventStunned:      cfg.StateHit,
		cfg.EventAttackLanded: cfg.StateRecover,
		cfg.EventDied:         cfg.StateDead,
	},
}

// SeashellTransitions drives the stationary turret. Bite locks the shell
// until BiteOver.
var SeashellTransitions = Transitions{
	cfg.StateIdle: {
		cfg.EventSpotPlayer:    cfg.StateFire,
		cfg.EventPlayerInReach: cfg.StateBite,
		cfg.EventStunned:       cfg.StateHit,
		cfg.EventDied:          cfg.StateDead,
	},
	cfg.StateFire: {
		cfg.EventLosePlayer:    cfg.StateIdle,
		cfg.EventPlayerInReach: cfg.StateBite,
		cfg.EventStunned:       cfg.StateHit,
		cfg.EventDied:          cfg.StateDead,
	},
	cfg.StateBite: {
		cfg.EventBiteOver: cfg.StateIdle,
		cfg.EventStunned:  cfg.StateHit,
		cfg.EventDied:     cfg.StateDead,
	},
	cfg.StateHit: {
		cfg.EventStunOver: cfg.StateIdle,
		cfg.EventDied:     cfg.StateDead,
	},
}

// PinkStarTransitions drives the lair guardian.
var PinkStarTransitions = Transitions{
	cfg.StateIdle: {
		cfg.EventDwellElapsed:  cfg.StateRunning,
		cfg.EventSpotPlayer:    cfg.StateChase,
		cfg.EventPlayerInReach: cfg.StateAttack,
		cfg.EventAttackLanded:  cfg.StateRecover,
		cfg.EventStunned:       cfg.StateHit,
		cfg.EventDied:          cfg.StateDead,
	},
	cfg.StateRunning: {
		cfg.EventDwellElapsed:  cfg.StateIdle,
		cfg.EventSpotPlayer:    cfg.StateChase,
		cfg.EventPlayerInReach: cfg.StateAttack,
		cfg.EventAttackLanded:  cfg.StateRecover,
		cfg.EventStunned:       cfg.StateHit,
		cfg.EventDied:          cfg.StateDead,
	},
	cfg.StateChase: {
		cfg.EventLosePlayer:    cfg.StateRunning,
		cfg.EventPlayerInReach: cfg.StateAttack,
		cfg.EventAttackLanded:  cfg.StateRecover,
		cfg.EventStunned:       cfg.StateHit,
		cfg.EventDied:          cfg.StateDead,
	},
	cfg.StateAttack: {
		cfg.EventLosePlayer:   cfg.StateRunning,
		cfg.EventSpotPlayer:   cfg.StateChase,
		cfg.EventAttackLanded: cfg.StateRecover,
		cfg.EventStunned:      cfg.StateHit,
		cfg.EventDied:         cfg.StateDead,
	},
	cfg.StateRecover: {
		cfg.EventRecovered: cfg.StateIdle,
		cfg.EventStunned:   cfg.StateHit,
		cfg.EventDied:      cfg.StateDead,
	},
	cfg.StateHit: {
		cfg.EventStunOver: cfg.StateIdle,
		cfg.EventDied:     cfg.StateDead,
	},
}

// TransitionsFor returns the table of a species.
func TransitionsFor(s cfg.Species) Transitions {
	switch s {
	case cfg.SpeciesSeashell:
		return SeashellTransitions
	case cfg.SpeciesPinkStar:
		return PinkStarTransitions
	}
	return FierceToothTransitions
}

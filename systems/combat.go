package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
)

// ApplyHit deals amount damage from attacker to target. It does nothing to a
// dead or stunned target and reports whether the hit landed. The target is
// stunned when the attacker's source kind is in its stun set, and dies the
// moment its health reaches zero.
func ApplyHit(ecs *ecs.ECS, target, attacker *donburi.Entry, amount int) bool {
	if !target.HasComponent(components.Health) {
		return false
	}
	h := components.Health.Get(target)
	if !h.Alive || h.Stunned() {
		return false
	}

	kind := sourceKind(attacker)
	h.Current = max(h.Current-max(amount, 0), 0)
	h.BarTimer = cfg.Enemy.HealthBarDuration
	if h.StunSources.Has(kind) {
		h.HitStun = h.StunDuration
	}
	simOf(ecs).Play(cfg.SoundHit)

	if target.HasComponent(components.Enemy) {
		reactToHit(target, attacker)
	}
	if h.Current == 0 {
		h.Alive = false
		onDeath(ecs, target)
	}
	return true
}

func sourceKind(e *donburi.Entry) cfg.DamageSourceKind {
	if e == nil || !e.Valid() || !e.HasComponent(components.DamageSource) {
		return cfg.SourceNone
	}
	return components.DamageSource.Get(e).Kind
}

// reactToHit turns a smart enemy toward any attack with a body that came
// from behind and arms its retaliation.
func reactToHit(target, attacker *donburi.Entry) {
	en := components.Enemy.Get(target)
	if !en.Smart || attacker == nil || !attacker.HasComponent(components.Object) {
		return
	}
	body := components.Body.Get(target)
	r := components.Object.Get(target).Rect()
	a := components.Object.Get(attacker).Rect()
	if behind(r, body.Facing, a, 0) {
		body.Facing = -body.Facing
		en.WasHitFromBehind = true
	}
}

func onDeath(ecs *ecs.ECS, e *donburi.Entry) {
	switch {
	case e.HasComponent(components.Enemy):
		en := components.Enemy.Get(e)
		en.FSM.Fire(cfg.EventDied)
		en.Speed = 0
		components.Death.Get(e).Timer = cfg.Enemy.DeathLinger
		components.Sprite.Get(e).SetSheet(cfg.SheetDead)
		if lvl, ok := levelOf(ecs); ok {
			lvl.Progress.Killed[en.SpawnID] = true
			lvl.Progress.Kills++
		}
		simOf(ecs).Play(cfg.SoundEnemyDeath)
	case e.HasComponent(components.Player):
		startPlayerDeath(ecs, e)
	}
}

package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/systems/factory"
	"github.com/automoto/piratecove/tags"
)

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := playerOf(ecs)
	if !ok {
		return
	}
	level, ok := levelOf(ecs)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	h := components.Health.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	sprite := components.Sprite.Get(playerEntry)

	tickDown(&h.BarTimer, &h.HitStun, &player.ShootCooldown, &player.GrenadeCooldown, &player.HazardCooldown,
		&player.StaminaBarTimer, &player.AmmoTimer, &player.GrenadeTimer, &player.CoinTimer)

	if player.Dying {
		updateDeathFall(level, player, body, obj, sprite)
		return
	}
	level.Progress.Ticks++

	input := components.Input.Get(playerEntry)
	handlePlayerMovement(ecs, input, player, body, obj, level.Level.Width)
	handleEnemyContacts(ecs, playerEntry)
	handlePlayerWeapons(ecs, input, player, body, h, obj)

	if obj.Y > level.Level.Height {
		killPlayer(ecs, playerEntry)
		return
	}

	sprite.SetSheet(playerSheet(player, body, h))
	sprite.Update(body.Facing)
}

func handlePlayerMovement(ecs *ecs.ECS, input *components.InputData, player *components.PlayerData,
	body *components.BodyData, obj *components.ObjectData, worldW float64) {
	c := cfg.Player

	var dir float64
	left, right := input.Pressed(cfg.ActionMoveLeft), input.Pressed(cfg.ActionMoveRight)
	switch {
	case left && !right:
		dir = cfg.DirectionLeft
	case right && !left:
		dir = cfg.DirectionRight
	}
	player.Moving = dir != 0
	if player.Moving {
		body.Facing = dir
	}

	player.Sprinting = input.Pressed(cfg.ActionSprint) && player.Moving && !player.SprintLocked && player.Stamina > 0
	if player.Sprinting {
		player.Stamina = math.Max(player.Stamina-c.StaminaDepletion, 0)
		player.StaminaBarTimer = c.StaminaBarDuration
		if player.Stamina == 0 {
			player.SprintLocked = true
		}
	} else {
		player.Stamina = math.Min(player.Stamina+c.StaminaRecovery, c.StaminaMax)
		if player.SprintLocked && player.Stamina >= c.SprintThreshold {
			player.SprintLocked = false
		}
		if player.Stamina < c.StaminaMax {
			player.StaminaBarTimer = c.StaminaBarDuration
		}
	}
	speed := c.Speed
	if player.Sprinting {
		speed = c.SprintSpeed
	}

	if input.JustPressed(cfg.ActionJump) && Jump(body) {
		simOf(ecs).Play(cfg.SoundJump)
	}

	StepVertical(body, obj)
	StepHorizontal(body, obj, dir*speed)

	clamped := true
	switch {
	case body.Position.X < 0:
		body.Position.X = 0
	case body.Position.X+obj.W > worldW:
		body.Position.X = worldW - obj.W
	default:
		clamped = false
	}
	if clamped {
		syncObject(body, obj)
	}
}

// handleEnemyContacts stomps enemies fallen onto from above and otherwise
// keeps the player from walking through them.
func handleEnemyContacts(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	c := cfg.Player
	body := components.Body.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Health.Get(e).Alive || !Collide(playerEntry, e) {
			return
		}
		er := components.Object.Get(e).Rect()
		pr := obj.Rect()

		if body.Velocity.Y > c.StompMinFallSpeed && math.Abs(pr.CenterX()-er.CenterX()) <= er.W/2+c.StompMargin {
			body.Velocity.Y = c.StompBounce
			body.JumpCount = 1
			if !components.Enemy.Get(e).FSM.Is(cfg.StateRecover) {
				ApplyHit(ecs, e, playerEntry, c.StompDamage)
			}
			simOf(ecs).Play(cfg.SoundStomp)
			return
		}

		switch {
		case body.Velocity.Y < 0 && pr.CenterY() > er.CenterY():
			body.Position.Y = er.Bottom()
			body.Velocity.Y = 0
		case pr.CenterX() < er.CenterX():
			body.Position.X = er.Left() - pr.W
		default:
			body.Position.X = er.Right()
		}
		syncObject(body, obj)
	})
}

func handlePlayerWeapons(ecs *ecs.ECS, input *components.InputData, player *components.PlayerData,
	body *components.BodyData, h *components.HealthData, obj *components.ObjectData) {
	if h.Stunned() {
		return
	}
	c := cfg.Player
	r := obj.Rect()
	sim := simOf(ecs)

	if input.Pressed(cfg.ActionShoot) && player.ShootCooldown == 0 && player.Ammo > 0 {
		factory.CreateProjectile(ecs, components.ProjectilePurpleGem, r.CenterX()+body.Facing*r.W/2, r.CenterY(), body.Facing)
		player.Ammo--
		player.ShootCooldown = c.ShootCooldown
		player.AmmoTimer = c.CounterDisplay
		sim.Play(cfg.SoundShoot)
	}

	if input.JustPressed(cfg.ActionThrow) && player.GrenadeCooldown == 0 && player.Grenades > 0 {
		factory.CreateGrenade(ecs, r.CenterX()+body.Facing*r.W/2, r.CenterY(), body.Facing)
		player.Grenades--
		player.GrenadeCooldown = c.GrenadeCooldown
		player.GrenadeTimer = c.CounterDisplay
		sim.Play(cfg.SoundThrow)
	}
}

// killPlayer drops health to zero outside the normal hit rules, for falls
// out of the world.
func killPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	h := components.Health.Get(e)
	if !h.Alive {
		return
	}
	h.Current = 0
	h.Alive = false
	startPlayerDeath(ecs, e)
}

// startPlayerDeath launches the player upward, spinning, with collisions
// off. The fall ends once the player leaves the bottom of the world.
func startPlayerDeath(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Dying {
		return
	}
	body := components.Body.Get(e)
	player.Dying = true
	player.Spin = cfg.Player.DeathSpin * math.Pi / 180
	body.Velocity.X = 0
	body.Velocity.Y = cfg.Player.DeathImpulse
	components.Sprite.Get(e).SetSheet(cfg.SheetDead)
	simOf(ecs).Play(cfg.SoundPlayerDeath)
}

func updateDeathFall(level *components.LevelData, player *components.PlayerData, body *components.BodyData,
	obj *components.ObjectData, sprite *components.SpriteData) {
	body.Velocity.Y = math.Min(body.Velocity.Y+body.Gravity, cfg.Player.DeathFallCap)
	body.Position.Y += body.Velocity.Y
	syncObject(body, obj)
	sprite.Rotation += player.Spin
	sprite.Update(body.Facing)

	bottom := math.Max(level.Level.Height, float64(cfg.C.Height))
	if obj.Y > bottom {
		player.DeathFinished = true
	}
}

func playerSheet(player *components.PlayerData, body *components.BodyData, h *components.HealthData) string {
	switch {
	case h.Stunned():
		return cfg.SheetHit
	case !body.OnGround && body.Velocity.Y < 0:
		return cfg.SheetJump
	case !body.OnGround && body.Velocity.Y > 0:
		return cfg.SheetFall
	case player.Moving:
		return cfg.SheetRun
	}
	return cfg.SheetIdle
}

package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tile_size"`
	FPS      int `yaml:"fps"`
}

// PhysicsConfig contains the integrator constants shared by every body.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	// GroundReach is how far below the feet a resting body looks for support.
	GroundReach float64 `yaml:"ground_reach"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Speed        float64   `yaml:"speed"`
	SprintSpeed  float64   `yaml:"sprint_speed"`
	JumpImpulses []float64 `yaml:"jump_impulses"`

	// Stamina
	StaminaMax         float64 `yaml:"stamina_max"`
	StaminaDepletion   float64 `yaml:"stamina_depletion"`
	StaminaRecovery    float64 `yaml:"stamina_recovery"`
	SprintThreshold    float64 `yaml:"sprint_threshold"`
	StaminaBarDuration int     `yaml:"stamina_bar_duration"`

	// Combat
	Health          int `yaml:"health"`
	HitStun         int `yaml:"hit_stun"`
	StartAmmo       int `yaml:"start_ammo"`
	StartGrenades   int `yaml:"start_grenades"`
	ShootCooldown   int `yaml:"shoot_cooldown"`
	GrenadeCooldown int `yaml:"grenade_cooldown"`
	HazardCooldown  int `yaml:"hazard_cooldown"`

	// Stomp
	StompMinFallSpeed float64 `yaml:"stomp_min_fall_speed"`
	StompMargin       float64 `yaml:"stomp_margin"`
	StompBounce       float64 `yaml:"stomp_bounce"`
	StompDamage       int     `yaml:"stomp_damage"`

	// Death sequence
	DeathImpulse float64 `yaml:"death_impulse"`
	DeathSpin    float64 `yaml:"death_spin"`
	DeathFallCap float64 `yaml:"death_fall_cap"`

	// CounterDisplay is how long the HUD counters stay up after a change.
	CounterDisplay int `yaml:"counter_display"`
}

// EnemyConfig contains values shared by every enemy species.
type EnemyConfig struct {
	DwellMin          int     `yaml:"dwell_min"`
	DwellMax          int     `yaml:"dwell_max"`
	RandomTurnChance  float64 `yaml:"random_turn_chance"`
	HealthBarDuration int     `yaml:"health_bar_duration"`
	DeathLinger       int     `yaml:"death_linger"`
	HealthBarWidth    float64 `yaml:"health_bar_width"`
	HealthBarHeight   float64 `yaml:"health_bar_height"`
}

// FierceToothConfig tunes the ground melee/shooter enemy.
type FierceToothConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      int     `yaml:"health"`
	Smart       bool    `yaml:"smart"`
	PatrolSpeed float64 `yaml:"patrol_speed"`
	ChaseSpeed  float64 `yaml:"chase_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`

	// Vision
	VisionRange     float64 `yaml:"vision_range"`
	VisionHalfAngle float64 `yaml:"vision_half_angle"`
	AttackRange     float64 `yaml:"attack_range"`

	// Melee
	MeleeDamage          int     `yaml:"melee_damage"`
	StompDamage          int     `yaml:"stomp_damage"`
	MeleeHeightTolerance float64 `yaml:"melee_height_tolerance"`
	MeleeMaxYVel         float64 `yaml:"melee_max_y_vel"`
	AttackCooldown       int     `yaml:"attack_cooldown"`
	RecoveryTicks        int     `yaml:"recovery_ticks"`

	// Stun
	HitStun           int `yaml:"hit_stun"`
	HitAttackCooldown int `yaml:"hit_attack_cooldown"`

	// Shooting
	ShootChance           float64 `yaml:"shoot_chance"`
	ShootCooldown         int     `yaml:"shoot_cooldown"`
	RecoveryShootCooldown int     `yaml:"recovery_shoot_cooldown"`

	// Smart mode
	LostVisionWindow    int     `yaml:"lost_vision_window"`
	RecheckTurn         int     `yaml:"recheck_turn"`
	TurnCooldown        int     `yaml:"turn_cooldown"`
	SuppressRandomTurns int     `yaml:"suppress_random_turns"`
	BehindMargin        float64 `yaml:"behind_margin"`
	DodgeRange          float64 `yaml:"dodge_range"`
	DodgeChance         float64 `yaml:"dodge_chance"`
	DodgeCooldown       int     `yaml:"dodge_cooldown"`
	GrenadeAlertRange   float64 `yaml:"grenade_alert_range"`
	FleeTicks           int     `yaml:"flee_ticks"`
	FleeSpeed           float64 `yaml:"flee_speed"`
	FleeJumpDistance    float64 `yaml:"flee_jump_distance"`
	FleeJumpHeight      float64 `yaml:"flee_jump_height"`
	ContinueChaseTicks  int     `yaml:"continue_chase_ticks"`
}

// SeashellConfig tunes the stationary pearl shooter.
type SeashellConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Health          int     `yaml:"health"`
	Smart           bool    `yaml:"smart"`
	VisionRange     float64 `yaml:"vision_range"`
	VisionHalfAngle float64 `yaml:"vision_half_angle"`
	BiteRange       float64 `yaml:"bite_range"`
	BiteTicks       int     `yaml:"bite_ticks"`
	BiteDamage      int     `yaml:"bite_damage"`
	BiteCooldown    int     `yaml:"bite_cooldown"`
	HitBiteCooldown int     `yaml:"hit_bite_cooldown"`
	FireCooldown    int     `yaml:"fire_cooldown"`
	HitStun         int     `yaml:"hit_stun"`

	LostVisionWindow  int     `yaml:"lost_vision_window"`
	TurnCooldown      int     `yaml:"turn_cooldown"`
	BehindMargin      float64 `yaml:"behind_margin"`
	GrenadeAlertRange float64 `yaml:"grenade_alert_range"`
}

// PinkStarConfig tunes the lair guardian.
type PinkStarConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      int     `yaml:"health"`
	PatrolSpeed float64 `yaml:"patrol_speed"`
	ChaseSpeed  float64 `yaml:"chase_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`

	ReachRange           float64 `yaml:"reach_range"`
	MeleeDamage          int     `yaml:"melee_damage"`
	StompDamage          int     `yaml:"stomp_damage"`
	MeleeHeightTolerance float64 `yaml:"melee_height_tolerance"`
	AttackCooldown       int     `yaml:"attack_cooldown"`
	RecoveryTicks        int     `yaml:"recovery_ticks"`
	HitStun              int     `yaml:"hit_stun"`
	HitAttackCooldown    int     `yaml:"hit_attack_cooldown"`

	// Pursuit
	RepathTicks   int     `yaml:"repath_ticks"`
	JumpThreshold float64 `yaml:"jump_threshold"`
}

// ProjectileKindConfig is shared by the straight-line shots.
type ProjectileKindConfig struct {
	Speed          float64 `yaml:"speed"`
	Damage         int     `yaml:"damage"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ExplosionTicks int     `yaml:"explosion_ticks"`
}

// ProjectileConfig groups the shot kinds.
type ProjectileConfig struct {
	CannonBall ProjectileKindConfig `yaml:"cannon_ball"`
	Pearl      ProjectileKindConfig `yaml:"pearl"`
	PurpleGem  ProjectileKindConfig `yaml:"purple_gem"`
}

// GrenadeConfig contains the thrown grenade's ballistics and blast.
type GrenadeConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ThrowSpeed     float64 `yaml:"throw_speed"`
	ThrowLift      float64 `yaml:"throw_lift"`
	Gravity        float64 `yaml:"gravity"`
	AirDrag        float64 `yaml:"air_drag"`
	Bounce         float64 `yaml:"bounce"`
	MinBounceSpeed float64 `yaml:"min_bounce_speed"`
	RollDecel      float64 `yaml:"roll_decel"`
	StopThreshold  float64 `yaml:"stop_threshold"`
	Spin           float64 `yaml:"spin"`
	Fuse           int     `yaml:"fuse"`
	BlastTicks     int     `yaml:"blast_ticks"`
	// BlastTiles is the explosion's edge length in tiles.
	BlastTiles  float64 `yaml:"blast_tiles"`
	RadiusSlack float64 `yaml:"radius_slack"`
	EnemyTiers  [3]int  `yaml:"enemy_tiers"`
	PlayerTiers [3]int  `yaml:"player_tiers"`
}

// PickupConfig tunes collectibles.
type PickupConfig struct {
	Size       float64 `yaml:"size"`
	HealthMin  int     `yaml:"health_min"`
	HealthMax  int     `yaml:"health_max"`
	AmmoMin    int     `yaml:"ammo_min"`
	AmmoMax    int     `yaml:"ammo_max"`
	GrenadeBox int     `yaml:"grenade_box"`
	BobHeight  float64 `yaml:"bob_height"`
	BobTicks   int     `yaml:"bob_ticks"`
}

// HazardConfig tunes the static hazard tiles.
type HazardConfig struct {
	Damage int `yaml:"damage"`
}

// NavConfig tunes danger zones and the waypoint graph.
type NavConfig struct {
	MarkerTolerance     float64 `yaml:"marker_tolerance"`
	SameHeightTolerance float64 `yaml:"same_height_tolerance"`
	WalkRangeTiles      float64 `yaml:"walk_range_tiles"`
	JumpRangeTiles      float64 `yaml:"jump_range_tiles"`
	WalkCost            float64 `yaml:"walk_cost"`
	JumpCost            float64 `yaml:"jump_cost"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 `yaml:"follow_smoothing"`
	LookAheadDistanceX float64 `yaml:"look_ahead_distance_x"`
	LookAheadSmoothing float64 `yaml:"look_ahead_smoothing"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	BlastIntensity float64 `yaml:"blast_intensity"`
	BlastDuration  int     `yaml:"blast_duration"`
}

// UIConfig contains HUD layout values.
type UIConfig struct {
	HealthBarWidth  float64 `yaml:"health_bar_width"`
	HealthBarHeight float64 `yaml:"health_bar_height"`
	HealthBarMargin float64 `yaml:"health_bar_margin"`
	HUDFontSize     float64 `yaml:"hud_font_size"`
	// LevelCompleteTicks holds the level complete banner before the next level loads.
	LevelCompleteTicks int        `yaml:"level_complete_ticks"`
	HealthBarBg        color.RGBA `yaml:"-"`
	HealthBarFg        color.RGBA `yaml:"-"`
	StaminaFg          color.RGBA `yaml:"-"`
	TextColor          color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool `yaml:"draw_colliders"`
	DrawNav       bool `yaml:"draw_nav"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var FierceTooth FierceToothConfig
var Seashell SeashellConfig
var PinkStar PinkStarConfig
var Projectile ProjectileConfig
var Grenade GrenadeConfig
var Pickup PickupConfig
var Hazard HazardConfig
var Nav NavConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Sand        = color.RGBA{R: 194, G: 160, B: 110, A: 255}
	Sky         = color.RGBA{R: 96, G: 160, B: 210, A: 255}
	DarkOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    960,
		Height:   540,
		TileSize: 48,
		FPS:      60,
	}

	Physics = PhysicsConfig{
		Gravity:          0.7,
		TerminalVelocity: 10,
		GroundReach:      1,
	}

	Player = PlayerConfig{
		Width:  32,
		Height: 42,

		Speed:        3,
		SprintSpeed:  5,
		JumpImpulses: []float64{-13, -8},

		StaminaMax:         100,
		StaminaDepletion:   0.6,
		StaminaRecovery:    0.3,
		SprintThreshold:    10,
		StaminaBarDuration: 180,

		Health:          400,
		HitStun:         120,
		StartAmmo:       20,
		StartGrenades:   5,
		ShootCooldown:   20,
		GrenadeCooldown: 100,
		HazardCooldown:  60,

		StompMinFallSpeed: 2,
		StompMargin:       7,
		StompBounce:       -11,
		StompDamage:       20,

		DeathImpulse: -13,
		DeathSpin:    8,
		DeathFallCap: 12,

		CounterDisplay: 180,
	}

	Enemy = EnemyConfig{
		DwellMin:          60,
		DwellMax:          180,
		RandomTurnChance:  0.5,
		HealthBarDuration: 180,
		DeathLinger:       60,
		HealthBarWidth:    40,
		HealthBarHeight:   6,
	}

	FierceTooth = FierceToothConfig{
		Width:       34,
		Height:      30,
		Health:      80,
		Smart:       true,
		PatrolSpeed: 2,
		ChaseSpeed:  3,
		JumpImpulse: -14,

		VisionRange:     350,
		VisionHalfAngle: 20,
		AttackRange:     50,

		MeleeDamage:          30,
		StompDamage:          20,
		MeleeHeightTolerance: 10,
		MeleeMaxYVel:         1,
		AttackCooldown:       60,
		RecoveryTicks:        120,

		HitStun:           120,
		HitAttackCooldown: 60,

		ShootChance:           0.5,
		ShootCooldown:         60,
		RecoveryShootCooldown: 120,

		LostVisionWindow:    30,
		RecheckTurn:         55,
		TurnCooldown:        15,
		SuppressRandomTurns: 120,
		BehindMargin:        10,
		DodgeRange:          100,
		DodgeChance:         0.3,
		DodgeCooldown:       30,
		GrenadeAlertRange:   150,
		FleeTicks:           100,
		FleeSpeed:           3,
		FleeJumpDistance:    60,
		FleeJumpHeight:      40,
		ContinueChaseTicks:  90,
	}

	Seashell = SeashellConfig{
		Width:           48,
		Height:          38,
		Health:          120,
		Smart:           true,
		VisionRange:     400,
		VisionHalfAngle: 10,
		BiteRange:       40,
		BiteTicks:       30,
		BiteDamage:      40,
		BiteCooldown:    90,
		HitBiteCooldown: 60,
		FireCooldown:    32,
		HitStun:         120,

		LostVisionWindow:  30,
		TurnCooldown:      15,
		BehindMargin:      10,
		GrenadeAlertRange: 150,
	}

	PinkStar = PinkStarConfig{
		Width:       34,
		Height:      30,
		Health:      500,
		PatrolSpeed: 3,
		ChaseSpeed:  4,
		JumpImpulse: -13,

		ReachRange:           40,
		MeleeDamage:          90,
		StompDamage:          50,
		MeleeHeightTolerance: 10,
		AttackCooldown:       100,
		RecoveryTicks:        350,
		HitStun:              300,
		HitAttackCooldown:    100,

		RepathTicks:   60,
		JumpThreshold: 8,
	}

	Projectile = ProjectileConfig{
		CannonBall: ProjectileKindConfig{Speed: 12, Damage: 10, Width: 14, Height: 14, ExplosionTicks: 24},
		Pearl:      ProjectileKindConfig{Speed: 5, Damage: 10, Width: 12, Height: 12, ExplosionTicks: 24},
		PurpleGem:  ProjectileKindConfig{Speed: 10, Damage: 20, Width: 12, Height: 10},
	}

	Grenade = GrenadeConfig{
		Width:          16,
		Height:         16,
		ThrowSpeed:     8,
		ThrowLift:      -12,
		Gravity:        0.7,
		AirDrag:        0.995,
		Bounce:         0.35,
		MinBounceSpeed: 1.2,
		RollDecel:      1.95,
		StopThreshold:  0.6,
		Spin:           2.5,
		Fuse:           100,
		BlastTicks:     18,
		BlastTiles:     4,
		RadiusSlack:    10,
		EnemyTiers:     [3]int{120, 90, 60},
		PlayerTiers:    [3]int{200, 150, 100},
	}

	Pickup = PickupConfig{
		Size:       24,
		HealthMin:  50,
		HealthMax:  150,
		AmmoMin:    20,
		AmmoMax:    40,
		GrenadeBox: 5,
		BobHeight:  4,
		BobTicks:   40,
	}

	Hazard = HazardConfig{Damage: 50}

	Nav = NavConfig{
		MarkerTolerance:     1,
		SameHeightTolerance: 12,
		WalkRangeTiles:      6,
		JumpRangeTiles:      2,
		WalkCost:            1,
		JumpCost:            2,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 60,
		LookAheadSmoothing: 0.05,
	}

	ScreenShake = ScreenShakeConfig{
		BlastIntensity: 5,
		BlastDuration:  18,
	}

	UI = UIConfig{
		HealthBarWidth:     200,
		HealthBarHeight:    14,
		HealthBarMargin:    12,
		HUDFontSize:        14,
		LevelCompleteTicks: 150,
		HealthBarBg:        color.RGBA{R: 40, G: 40, B: 40, A: 200},
		HealthBarFg:        color.RGBA{R: 220, G: 40, B: 40, A: 255},
		StaminaFg:          color.RGBA{R: 240, G: 200, B: 40, A: 255},
		TextColor:          White,
	}

	Debug = DebugConfig{}
}

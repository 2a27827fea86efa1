package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Moving    bool
	Sprinting bool

	Stamina         float64
	SprintLocked    bool
	StaminaBarTimer int

	Ammo     int
	Grenades int
	Coins    int

	ShootCooldown   int
	GrenadeCooldown int
	HazardCooldown  int

	// HUD counters stay visible while their timer runs
	AmmoTimer    int
	GrenadeTimer int
	CoinTimer    int

	// Death sequence
	Dying         bool
	DeathFinished bool
	Spin          float64
}

var Player = donburi.NewComponentType[PlayerData]()

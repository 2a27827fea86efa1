package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/piratecove/shared/gamemath"
)

type ProjectileKind int

const (
	ProjectileCannonBall ProjectileKind = iota
	ProjectilePearl
	ProjectilePurpleGem
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileCannonBall:
		return "cannonball"
	case ProjectilePearl:
		return "pearl"
	case ProjectilePurpleGem:
		return "purple_gem"
	}
	return "unknown"
}

type ProjectileData struct {
	Kind          ProjectileKind
	Damage        int
	TargetsPlayer bool
	Exploding     bool
	ExplodeTimer  int
}

var Projectile = donburi.NewComponentType[ProjectileData]()

type GrenadeData struct {
	Fuse       int
	Blasting   bool
	BlastTimer int
	BlastRect  gamemath.Rect
	Applied    bool
	Rotation   float64
}

var Grenade = donburi.NewComponentType[GrenadeData]()

package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Constraint = donburi.NewTag().SetName("Constraint")
	Projectile = donburi.NewTag().SetName("Projectile")
	Grenade    = donburi.NewTag().SetName("Grenade")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Flag       = donburi.NewTag().SetName("Flag")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvHazard  = "hazard"
	ResolvRed     = "red"
	ResolvPurple  = "purple"
	ResolvOrange  = "orange"
	ResolvFlag    = "flag"
	ResolvPickup  = "pickup"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvShot    = "shot"
	ResolvGrenade = "grenade"
)

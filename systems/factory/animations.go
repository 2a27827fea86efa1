package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/assets"
	"github.com/automoto/piratecove/components"
)

// Character keys map to images/<key>/ in the sprite file system.
const (
	SpritePlayer      = "player"
	SpriteFierceTooth = "fierce_tooth"
	SpriteSeashell    = "seashell"
	SpritePinkStar    = "pink_star"
	SpriteCannonBall  = "cannonball"
	SpritePearl       = "pearl"
	SpritePurpleGem   = "purple_gem"
	SpriteGrenade     = "grenade"
)

var sprites *assets.AnimationLoader

// SetSpriteLoader installs the loader used for every sprite created from now
// on. With no loader, entities get empty sets and render as collider rects.
func SetSpriteLoader(l *assets.AnimationLoader) {
	sprites = l
}

// PreloadAllSprites warms the loader cache so the first spawn does not stall.
func PreloadAllSprites(ecs *ecs.ECS) {
	for _, key := range []string{
		SpritePlayer, SpriteFierceTooth, SpriteSeashell, SpritePinkStar,
		SpriteCannonBall, SpritePearl, SpritePurpleGem, SpriteGrenade,
	} {
		spriteSet(ecs, key)
	}
}

// spriteSet returns the sprite set for key. Load errors are logged once and
// leave a partial set.
func spriteSet(ecs *ecs.ECS, key string) *assets.SpriteSet {
	if sprites == nil {
		return nil
	}
	set, err := sprites.Load(key)
	if err != nil {
		simLogger(ecs).Warn("sprite load failed", "key", key, "err", err)
	}
	return set
}

func newSprite(ecs *ecs.ECS, key, sheet string) components.SpriteData {
	return components.SpriteData{Set: spriteSet(ecs, key), Sheet: sheet}
}

package config

// Tile codes of the level layer. Codes are the tile's local ID within the
// level tileset.
const (
	TileObstacleFirst = 0
	TileObstacleLast  = 14
	TileHazardFirst   = 15
	TileHazardLast    = 16
	TileLevelEnd      = 17
	TilePlayer        = 18
	TileFierceTooth   = 19
	TilePinkStar      = 20
	TileSeashell      = 21
	TileCoin          = 22
	TileAmmoGem       = 23
	TileHealthGem     = 24
	TileRed           = 25
	TilePurple        = 26
	TileGrenadeBox    = 27
	TileCheckpoint    = 28
	TileOrange        = 29
)

// Tiled layer names.
const (
	LayerTiles   = "tiles"
	LayerMarkers = "markers"
	LayerEnemies = "enemies"
)

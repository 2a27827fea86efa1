package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gids are tile codes + 1 (firstgid 1).
const coveTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="6" height="4" tilewidth="48" tileheight="48" infinite="0" nextlayerid="4" nextobjectid="3">
 <tileset firstgid="1" name="cove" tilewidth="48" tileheight="48" tilecount="30" columns="10">
  <image source="cove.png" width="480" height="144"/>
 </tileset>
 <layer id="1" name="tiles" width="6" height="4">
  <data encoding="csv">
30,0,0,0,0,30,
0,19,20,27,22,0,
0,24,16,0,29,18,
1,1,1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="markers">
  <object id="1" x="10" y="10">
   <properties>
    <property name="zone" value="lair"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="enemies">
  <object id="2" x="100" y="58">
   <properties>
    <property name="smart" type="bool" value="false"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="48" tileheight="48" infinite="0">
 <tileset firstgid="1" name="cove" tilewidth="48" tileheight="48" tilecount="30" columns="10">
  <image source="cove.png" width="480" height="144"/>
 </tileset>
 <layer id="1" name="tiles" width="2" height="1">
  <data encoding="csv">1,1</data>
 </layer>
</map>
`

func TestClassify(t *testing.T) {
	tests := []struct {
		code int
		want Kind
	}{
		{0, KindObstacle},
		{14, KindObstacle},
		{15, KindHazard},
		{16, KindHazard},
		{17, KindLevelEnd},
		{18, KindPlayer},
		{19, KindEnemy},
		{21, KindEnemy},
		{22, KindPickup},
		{27, KindPickup},
		{25, KindRed},
		{26, KindPurple},
		{28, KindCheckpoint},
		{29, KindOrange},
		{30, KindEmpty},
		{-1, KindEmpty},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.code), "code %d", tt.code)
	}
}

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/cove.tmx": {Data: []byte(coveTMX)}}

	lvl, err := LoadLevel(fsys, "levels/cove.tmx")
	require.NoError(t, err)

	assert.Equal(t, "cove", lvl.Name)
	assert.Equal(t, 6, lvl.Cols)
	assert.Equal(t, 4, lvl.Rows)
	assert.Equal(t, 288.0, lvl.Width)
	assert.Equal(t, 192.0, lvl.Height)

	require.NotNil(t, lvl.PlayerSpawn)
	assert.Equal(t, 7, lvl.PlayerSpawn.ID)
	assert.Equal(t, 48.0, lvl.PlayerSpawn.Rect.X)
	assert.Equal(t, 48.0, lvl.PlayerSpawn.Rect.Y)

	assert.Len(t, lvl.Obstacles, 6)
	assert.Len(t, lvl.Hazards, 1)
	assert.Len(t, lvl.Checkpoints, 1)
	assert.Len(t, lvl.LevelEnds, 1)
	assert.Len(t, lvl.Purple, 1)

	require.Len(t, lvl.Enemies, 2)
	assert.Equal(t, EnemyFierceTooth, lvl.Enemies[0].Kind)
	require.NotNil(t, lvl.Enemies[0].Smart)
	assert.False(t, *lvl.Enemies[0].Smart)
	assert.Equal(t, EnemySeashell, lvl.Enemies[1].Kind)
	assert.Nil(t, lvl.Enemies[1].Smart)

	require.Len(t, lvl.Pickups, 1)
	assert.Equal(t, PickupAmmoGem, lvl.Pickups[0].Kind)
	assert.Equal(t, 13, lvl.Pickups[0].ID)

	require.Len(t, lvl.Orange, 2)
	assert.Equal(t, "lair", lvl.Orange[0].Zone)
	assert.Equal(t, "", lvl.Orange[1].Zone)
}

func TestLoadLevelWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/bad.tmx": {Data: []byte(noSpawnTMX)}}
	_, err := LoadLevel(fsys, "levels/bad.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(coveTMX)},
		"levels/a.tmx": {Data: []byte(coveTMX)},
	}
	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

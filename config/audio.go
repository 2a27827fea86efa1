package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundShoot
	SoundCannon
	SoundPearl
	SoundThrow
	SoundExplosion
	SoundHit
	SoundStomp
	SoundEnemyDeath
	SoundPlayerDeath
	SoundPickup
	SoundCoin
	SoundCheckpoint
	SoundLevelEnd
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int     `yaml:"sample_rate"`
	DefaultMusicVol float64 `yaml:"default_music_vol"`
	DefaultSFXVol   float64 `yaml:"default_sfx_vol"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	LevelMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		LevelMusic: "audio/music/level.ogg",
		SFXPaths: map[SoundID]string{
			SoundJump:        "audio/sfx/jump.wav",
			SoundShoot:       "audio/sfx/shoot.wav",
			SoundCannon:      "audio/sfx/cannon.wav",
			SoundPearl:       "audio/sfx/pearl.wav",
			SoundThrow:       "audio/sfx/throw.wav",
			SoundExplosion:   "audio/sfx/explosion.wav",
			SoundHit:         "audio/sfx/hit.wav",
			SoundStomp:       "audio/sfx/stomp.wav",
			SoundEnemyDeath:  "audio/sfx/enemy_death.wav",
			SoundPlayerDeath: "audio/sfx/player_death.wav",
			SoundPickup:      "audio/sfx/pickup.wav",
			SoundCoin:        "audio/sfx/coin.wav",
			SoundCheckpoint:  "audio/sfx/checkpoint.wav",
			SoundLevelEnd:    "audio/sfx/level_end.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplosion: 1.5,
			SoundHit:       1.2,
		},
	}
}

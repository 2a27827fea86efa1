package systems

import (
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/assets"
	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
)

// AudioService plays sound effects and level music. It implements
// components.SoundPlayer and is shared by every world the game builds.
type AudioService struct {
	loader *assets.AudioLoader
	logger *log.Logger

	music    *audio.Player
	musicKey string

	musicVolume float64
	sfxVolume   float64
	muted       bool

	// missing remembers sounds that failed to load so each warns once.
	missing map[string]bool
}

var _ components.SoundPlayer = (*AudioService)(nil)

// NewAudioService creates the service over an existing audio context.
// Ebitengine allows only one context per process.
func NewAudioService(ctx *audio.Context, fsys fs.FS, logger *log.Logger) *AudioService {
	return &AudioService{
		loader:      assets.NewAudioLoader(ctx, fsys),
		logger:      logger,
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
		missing:     map[string]bool{},
	}
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func (a *AudioService) PreloadAllSFX() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := a.loader.PreloadSFX(path); err != nil {
			a.warnOnce(path, err)
		}
	}
}

func (a *AudioService) Play(id cfg.SoundID) {
	if a.muted || a.sfxVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || a.missing[path] {
		return
	}
	player, err := a.loader.LoadSFX(path)
	if err != nil {
		a.warnOnce(path, err)
		return
	}
	volume := a.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping music, replacing whatever was playing.
func (a *AudioService) PlayMusic(path string) {
	if a.musicKey == path || a.missing[path] {
		return
	}
	a.StopMusic()

	player, err := a.loader.LoadMusic(path)
	if err != nil {
		a.warnOnce(path, err)
		return
	}
	player.SetVolume(a.effectiveMusicVolume())
	player.Play()
	a.music = player
	a.musicKey = path
}

func (a *AudioService) StopMusic() {
	if a.music != nil {
		_ = a.music.Close()
	}
	a.music = nil
	a.musicKey = ""
}

// PauseMusic halts the current track without rewinding it.
func (a *AudioService) PauseMusic() {
	if a.music != nil {
		a.music.Pause()
	}
}

func (a *AudioService) ResumeMusic() {
	if a.music != nil && !a.music.IsPlaying() {
		a.music.Play()
	}
}

func (a *AudioService) SetMusicVolume(v float64) {
	a.musicVolume = v
	if a.music != nil {
		a.music.SetVolume(a.effectiveMusicVolume())
	}
}

func (a *AudioService) SetSFXVolume(v float64) {
	a.sfxVolume = v
}

func (a *AudioService) MusicVolume() float64 { return a.musicVolume }
func (a *AudioService) SFXVolume() float64   { return a.sfxVolume }
func (a *AudioService) Muted() bool          { return a.muted }

// ToggleMute silences music and effects together.
func (a *AudioService) ToggleMute() {
	a.muted = !a.muted
	if a.music != nil {
		a.music.SetVolume(a.effectiveMusicVolume())
	}
}

func (a *AudioService) effectiveMusicVolume() float64 {
	if a.muted {
		return 0
	}
	return a.musicVolume
}

func (a *AudioService) warnOnce(path string, err error) {
	if a.missing[path] {
		return
	}
	a.missing[path] = true
	if a.logger != nil {
		a.logger.Warn("audio unavailable", "path", path, "err", err)
	}
}

// UpdateAudio handles the mute toggle.
func UpdateAudio(e *ecs.ECS) {
	playerEntry, ok := playerOf(e)
	if !ok {
		return
	}
	if !components.Input.Get(playerEntry).JustPressed(cfg.ActionMute) {
		return
	}
	if svc, ok := simOf(e).Sounds.(*AudioService); ok {
		svc.ToggleMute()
	}
}

package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/piratecove/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	LastLevel       int     `json:"lastLevel"`
}

// DefaultSettings are used until the player saves something.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		MusicVolume:     cfg.Audio.DefaultMusicVol,
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
}

// SettingsStore keeps window and audio settings in the per-user data
// directory. Level progress lives in the SQLite store instead.
type SettingsStore struct {
	manager *gdata.Manager
	logger  *log.Logger
}

// OpenSettings opens the settings store. A store that fails to open still
// works; it just never persists.
func OpenSettings(appName string, logger *log.Logger) *SettingsStore {
	s := &SettingsStore{logger: logger}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("could not initialize settings persistence", "err", err)
		return s
	}
	s.manager = m
	return s
}

// Load returns the saved settings, or the defaults when nothing usable is
// stored.
func (s *SettingsStore) Load() SavedSettings {
	settings := DefaultSettings()
	if s.manager == nil {
		return settings
	}
	data, err := s.manager.LoadItem("settings")
	if err != nil {
		s.logger.Warn("could not load settings", "err", err)
		return settings
	}
	if len(data) == 0 {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("could not parse saved settings", "err", err)
		return DefaultSettings()
	}
	return settings
}

func (s *SettingsStore) Save(settings SavedSettings) error {
	if s.manager == nil {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem("settings", data); err != nil {
		s.logger.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ApplySettings pushes saved settings into the window and the audio service.
func ApplySettings(saved SavedSettings, audio *AudioService) {
	if audio != nil {
		audio.SetMusicVolume(saved.MusicVolume)
		audio.SetSFXVolume(saved.SFXVolume)
		if saved.Muted != audio.Muted() {
			audio.ToggleMute()
		}
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

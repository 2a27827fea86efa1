package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// Tuning is the YAML view over every tunable section. Fields missing from a
// file keep the values assigned in init().
type Tuning struct {
	Screen      Config            `yaml:"screen"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	FierceTooth FierceToothConfig `yaml:"fierce_tooth"`
	Seashell    SeashellConfig    `yaml:"seashell"`
	PinkStar    PinkStarConfig    `yaml:"pink_star"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Grenade     GrenadeConfig     `yaml:"grenade"`
	Pickup      PickupConfig      `yaml:"pickup"`
	Hazard      HazardConfig      `yaml:"hazard"`
	Nav         NavConfig         `yaml:"nav"`
	Camera      CameraConfig      `yaml:"camera"`
	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`
	Audio       AudioConfig       `yaml:"audio"`
	Debug       DebugConfig       `yaml:"debug"`
}

// Current snapshots the active configuration.
func Current() Tuning {
	return Tuning{
		Screen:      *C,
		Physics:     Physics,
		Player:      Player,
		Enemy:       Enemy,
		FierceTooth: FierceTooth,
		Seashell:    Seashell,
		PinkStar:    PinkStar,
		Projectile:  Projectile,
		Grenade:     Grenade,
		Pickup:      Pickup,
		Hazard:      Hazard,
		Nav:         Nav,
		Camera:      Camera,
		ScreenShake: ScreenShake,
		Audio:       Audio,
		Debug:       Debug,
	}
}

// Apply makes t the active configuration.
func Apply(t Tuning) {
	screen := t.Screen
	C = &screen
	Physics = t.Physics
	Player = t.Player
	Enemy = t.Enemy
	FierceTooth = t.FierceTooth
	Seashell = t.Seashell
	PinkStar = t.PinkStar
	Projectile = t.Projectile
	Grenade = t.Grenade
	Pickup = t.Pickup
	Hazard = t.Hazard
	Nav = t.Nav
	Camera = t.Camera
	ScreenShake = t.ScreenShake
	Audio = t.Audio
	Debug = t.Debug
}

// Validate reports values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Screen.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("screen.tile_size must be positive, got %d", t.Screen.TileSize))
	}
	if t.Screen.FPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.fps must be positive, got %d", t.Screen.FPS))
	}
	if t.Enemy.DwellMin > t.Enemy.DwellMax {
		errs = append(errs, fmt.Errorf("enemy.dwell_min %d exceeds dwell_max %d", t.Enemy.DwellMin, t.Enemy.DwellMax))
	}
	if len(t.Player.JumpImpulses) == 0 {
		errs = append(errs, errors.New("player.jump_impulses must not be empty"))
	}
	if t.Pickup.HealthMin > t.Pickup.HealthMax || t.Pickup.AmmoMin > t.Pickup.AmmoMax {
		errs = append(errs, errors.New("pickup ranges must have min <= max"))
	}
	for name, hp := range map[string]int{
		"player":       t.Player.Health,
		"fierce_tooth": t.FierceTooth.Health,
		"seashell":     t.Seashell.Health,
		"pink_star":    t.PinkStar.Health,
	} {
		if hp <= 0 {
			errs = append(errs, fmt.Errorf("%s.health must be positive, got %d", name, hp))
		}
	}
	return errors.Join(errs...)
}

// Overlay decodes YAML on top of base.
func Overlay(base Tuning, data []byte) (Tuning, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, err
	}
	return base, nil
}

// Load applies a tuning file on top of the built-in defaults and returns the
// source it used.
// Search order: customPath -> ~/.piratecove/config.yaml -> ./configs/config.yaml -> embedded default
func Load(customPath string) (string, error) {
	base := Current()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		t, err := Overlay(base, data)
		if err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, use(t)
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "config.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if t, err := Overlay(base, data); err == nil {
			return path, use(t)
		}
	}

	t, err := Overlay(base, defaultTuningYAML)
	if err != nil {
		return "embedded", fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return "embedded", use(t)
}

func use(t Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	Apply(t)
	return nil
}

func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".piratecove", name)
}

package scenes

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/storage"
	"github.com/automoto/piratecove/systems"
	"github.com/automoto/piratecove/systems/factory"
)

// Services are shared by every world the scene builds. Store, Audio and
// Settings may be nil.
type Services struct {
	Levels   []*leveldata.Level
	Store    storage.ProgressStore
	Audio    *systems.AudioService
	Settings *systems.SettingsStore
	Logger   *log.Logger
	Seed     uint64
}

// PlatformerScene runs one level at a time. A player death rebuilds the
// world from the last checkpoint and reaching the level end moves on to the
// next level, wrapping after the last.
type PlatformerScene struct {
	ecs   *ecs.ECS
	svc   Services
	index int
	once  sync.Once
	err   error

	// carried over a restart when there is no store to reload from
	pending *storage.LevelProgress
}

func NewPlatformerScene(svc Services, levelIndex int) *PlatformerScene {
	if svc.Logger == nil {
		svc.Logger = log.Default()
	}
	return &PlatformerScene{svc: svc, index: levelIndex}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.load(ps.index, ps.savedProgress(ps.index)) })
	if ps.err != nil {
		return ps.err
	}

	ps.handleHotkeys()
	ps.ecs.Update()

	levelEntry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return nil
	}
	progress := components.Level.Get(levelEntry).Progress
	switch {
	case systems.LevelCompleteDone(ps.ecs):
		next := (ps.index + 1) % len(ps.svc.Levels)
		ps.svc.Logger.Info("advancing", "from", ps.svc.Levels[ps.index].Name, "to", ps.svc.Levels[next].Name)
		ps.err = ps.load(next, ps.savedProgress(next))
	case progress.Restart:
		snap, _ := systems.SnapshotProgress(ps.ecs)
		ps.pending = &snap
		ps.err = ps.load(ps.index, ps.savedProgress(ps.index))
	}
	return ps.err
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// savedProgress prefers the store and falls back to the in-memory snapshot
// taken when the player died.
func (ps *PlatformerScene) savedProgress(index int) *storage.LevelProgress {
	pending := ps.pending
	ps.pending = nil

	name := ps.svc.Levels[index].Name
	if ps.svc.Store != nil {
		p, err := ps.svc.Store.LoadLevelProgress(name)
		if err == nil {
			return &p
		}
		ps.svc.Logger.Warn("failed to load progress", "level", name, "err", err)
	}
	if pending != nil && pending.LevelID == name {
		return pending
	}
	return nil
}

func (ps *PlatformerScene) load(index int, saved *storage.LevelProgress) error {
	if len(ps.svc.Levels) == 0 {
		return fmt.Errorf("no levels to play")
	}
	lvl := ps.svc.Levels[index]

	ecs := ecs.NewECS(donburi.NewWorld())

	var sounds components.SoundPlayer
	if ps.svc.Audio != nil {
		sounds = ps.svc.Audio
	}
	factory.CreateSim(ecs, components.SimData{
		Rand:   rand.New(rand.NewPCG(ps.svc.Seed, uint64(index))),
		Sounds: sounds,
		Logger: ps.svc.Logger,
		Store:  ps.svc.Store,
	})
	if _, err := factory.CreateLevel(ecs, lvl, index, saved); err != nil {
		return fmt.Errorf("build level %s: %w", lvl.Name, err)
	}
	factory.PreloadAllSprites(ecs)

	// Input and audio run even when paused
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLevelComplete))

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGrenades))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFlags))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs
	ps.index = index

	if ps.svc.Audio != nil {
		ps.svc.Audio.PlayMusic(cfg.Sound.LevelMusic)
	}
	if ps.svc.Settings != nil {
		settings := ps.svc.Settings.Load()
		if settings.LastLevel != index {
			settings.LastLevel = index
			_ = ps.svc.Settings.Save(settings)
		}
	}
	ps.svc.Logger.Info("level loaded", "level", lvl.Name, "checkpoint", saved != nil && saved.HasCheckpoint)
	return nil
}

// handleHotkeys covers the keys that are not gameplay actions.
func (ps *PlatformerScene) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		cfg.Debug.DrawNav = !cfg.Debug.DrawNav
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		if ps.svc.Settings != nil {
			settings := ps.svc.Settings.Load()
			settings.Fullscreen = full
			_ = ps.svc.Settings.Save(settings)
		}
	}
}

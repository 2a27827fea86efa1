package main

import (
	"fmt"
	"image"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/automoto/piratecove/assets"
	"github.com/automoto/piratecove/config"
	"github.com/automoto/piratecove/fonts"
	"github.com/automoto/piratecove/logging"
	"github.com/automoto/piratecove/scenes"
	"github.com/automoto/piratecove/shared/leveldata"
	"github.com/automoto/piratecove/storage"
	"github.com/automoto/piratecove/systems"
	"github.com/automoto/piratecove/systems/factory"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// setup loads the tuning file and the logger every command shares.
func setup() (*log.Logger, error) {
	logger := logging.New(appName, flagDebug)
	source, err := config.Load(flagConfig)
	if err != nil {
		return logger, err
	}
	logger.Debug("config loaded", "source", source)
	if flagDebug {
		config.Debug.DrawColliders = true
	}
	return logger, nil
}

// assetFS returns the directory given by --assets, or the levels built into
// the binary. Without an asset directory sprites draw as rectangles and
// audio stays silent.
func assetFS() fs.FS {
	if flagAssets == "" {
		return assets.EmbeddedLevels()
	}
	return os.DirFS(flagAssets)
}

func loadLevels() ([]*leveldata.Level, error) {
	levels, err := assets.LoadLevels(assetFS())
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return levels, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := setup()
	if err != nil {
		return err
	}
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	var store storage.ProgressStore
	if s, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("progress will not be saved", "db", flagDBPath, "err", err)
	} else {
		defer s.Close()
		store = s
	}

	fsys := assetFS()
	if err := fonts.LoadFromFS(fsys, config.UI.HUDFontSize); err != nil {
		logger.Debug("using built-in font", "err", err)
	}
	if err := assets.LoadShaders(); err != nil {
		return fmt.Errorf("load shaders: %w", err)
	}
	factory.SetSpriteLoader(assets.NewAnimationLoader(fsys))

	sound := systems.NewAudioService(audio.NewContext(config.Audio.SampleRate), fsys, logger)
	sound.PreloadAllSFX()

	settingsStore := systems.OpenSettings(appName, logger)
	saved := settingsStore.Load()
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pirate Cove")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	systems.ApplySettings(saved, sound)

	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	start := saved.LastLevel
	if flagLevel >= 0 {
		start = flagLevel
	}
	if start < 0 || start >= len(levels) {
		start = 0
	}
	logger.Info("starting", "level", levels[start].Name, "seed", seed)

	scene := scenes.NewPlatformerScene(scenes.Services{
		Levels:   levels,
		Store:    store,
		Audio:    sound,
		Settings: settingsStore,
		Logger:   logger,
		Seed:     seed,
	}, start)
	return ebiten.RunGame(&Game{scene: scene})
}

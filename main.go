package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/fonts"
	"github.com/automoto/orbitrig/logger"
	"github.com/automoto/orbitrig/scenes"
	"github.com/automoto/orbitrig/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Rig config YAML (watched for changes)")
	levelPath := flag.String("level", config.Scene.LevelPath, "Skirmish TMX layout")
	debug := flag.Bool("debug", false, "Debug logging and the picking overlay")
	noPersist := flag.Bool("no-persist", false, "Do not restore or save the rig pose")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective rig config and exit")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	config.Debug.Overlay = *debug
	config.Debug.NoPersist = *noPersist

	var watcher *config.Watcher
	if *configPath != "" {
		rigCfg, err := config.LoadRigConfig(*configPath)
		if err != nil {
			logger.Log.Fatal("rig config", zap.Error(err))
		}
		config.Rig = rigCfg
	}

	if *dumpConfig {
		data, err := config.MarshalRigConfig(config.Rig)
		if err != nil {
			logger.Log.Fatal("dump config", zap.Error(err))
		}
		os.Stdout.Write(data)
		return
	}

	if *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			logger.Log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			watcher = w
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.Fatal("fonts", zap.Error(err))
	}

	options := scenes.SkirmishOptions{
		LevelPath: *levelPath,
		Watcher:   watcher,
	}
	if !config.Debug.NoPersist {
		// Initialize persistence; the rig still runs without it
		store, err := systems.OpenPoseStore(config.Scene.AppName)
		if err != nil {
			logger.Log.Warn("could not initialize persistence", zap.Error(err))
		} else {
			options.Store = store
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewSkirmishScene(options)
	err := ebiten.RunGame(NewGame(scene))
	scene.Close()
	if err != nil {
		logger.Log.Fatal("run", zap.Error(err))
	}
}

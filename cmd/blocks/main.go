package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blocks/config"
	"go.uber.org/zap"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 720
	DebugWidth   = 1280
	DebugHeight  = 800
)

func main() {
	configPath := flag.String("config", "blocks.yaml", "Settings file; missing files use the defaults.")
	seed := flag.Uint64("seed", 0, "Fix the piece sequence, overriding the settings file.")
	debug := flag.Bool("debug", false, "Enable debug logging and the inspector windows.")
	writeConfig := flag.String("write-config", "", "Write the effective settings to this path and exit.")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading settings", zap.Error(err))
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	if *writeConfig != "" {
		if err := settings.Write(*writeConfig); err != nil {
			logger.Fatal("writing settings", zap.Error(err))
		}
		logger.Info("settings written", zap.String("path", *writeConfig))
		return
	}

	app, err := newApp(settings, logger, *debug)
	if err != nil {
		logger.Fatal("starting session", zap.Error(err))
	}

	if !*debug {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("blocks")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

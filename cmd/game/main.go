package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Button-Game/internal/battle"
	"github.com/Garsondee/Button-Game/internal/game"
	"github.com/Garsondee/Button-Game/internal/logger"
)

func main() {
	var configPath string
	var logLevel string
	var logFormat string

	flag.StringVar(&configPath, "config", "", "optional battle YAML config")
	flag.StringVar(&logLevel, "log-level", "", "log level (default $LOG_LEVEL or info)")
	flag.StringVar(&logFormat, "log-format", "", "text or json (default $LOG_FORMAT or text)")
	flag.Parse()

	logger.Init(logLevel, logFormat)

	cfg := battle.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = battle.LoadConfig(configPath); err != nil {
			logger.Log.WithError(err).Fatal("load config")
		}
	}

	ebiten.SetWindowTitle("Button Game")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetTPS(game.TickRate)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		logger.Log.WithError(err).Fatal("game loop")
	}
}

package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"voidsweep/client"
	"voidsweep/config"
	"voidsweep/internal/app"
	"voidsweep/logging"
)

func main() {
	configDir := flag.String("config", ".", "directory containing voidsweep.yaml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logging.Setup("info", os.Stderr).Fatal().Err(err).Msg("loading config")
	}
	logger := logging.Setup(cfg.LogLevel, os.Stderr)

	campaign, err := app.NewCampaign(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("building campaign")
	}

	profileDir := ""
	if cfg.Debug.ShowOverlay {
		profileDir = cfg.Debug.ProfileDir
	}
	g, err := client.NewGame(campaign, client.Config{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Title:       cfg.Window.Title,
		ShowOverlay: cfg.Debug.ShowOverlay,
		ProfileDir:  profileDir,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("creating client")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}

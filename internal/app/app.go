// Package app wires configuration into a playable campaign
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"voidsweep/config"
	"voidsweep/game"
	"voidsweep/level"
)

// NewCampaign resolves the configured level and builds a campaign for it
func NewCampaign(cfg config.Config, logger zerolog.Logger) (*game.Campaign, error) {
	gc, err := cfg.Game()
	if err != nil {
		return nil, fmt.Errorf("invalid player config: %w", err)
	}

	l, err := level.Resolve(cfg.Level.File, cfg.Level.EnemyCountMultiplier)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}

	telemetry, err := game.NewTelemetry()
	if err != nil {
		return nil, err
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", seed).Str("level", l.Name).Msg("building campaign")

	return game.NewCampaign(l, cfg.Player.StartLevel, logger,
		game.WithConfig(gc),
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithTelemetry(telemetry),
	)
}

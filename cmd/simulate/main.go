// Command simulate runs a campaign without a window and logs what happens
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"voidsweep/config"
	"voidsweep/game"
	"voidsweep/internal/app"
	"voidsweep/logging"
)

type totals struct {
	fired, destroyed, collected, deaths int
}

func (t *totals) add(r game.TickReport) {
	t.fired += r.Fired
	t.destroyed += r.Destroyed
	t.collected += r.Collected
	if r.PlayerKilled {
		t.deaths++
	}
}

func main() {
	configDir := flag.String("config", ".", "directory containing voidsweep.yaml")
	seconds := flag.Float64("seconds", 60, "simulated seconds to run")
	tps := flag.Int("tps", 60, "ticks per simulated second")
	thrust := flag.Bool("thrust", false, "hold thrust for the whole run")
	fire := flag.Bool("fire", false, "hold fire for the whole run")
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

	// Point right so pointer controls have something to steer toward
	input := game.InputState{
		Thrust:           *thrust,
		Fire:             *fire,
		Pointer:          game.V(1, 0),
		PointerPrimary:   *thrust,
		PointerSecondary: *fire,
	}

	if *tps <= 0 {
		logger.Fatal().Int("tps", *tps).Msg("tps must be positive")
	}
	dt := 1 / float64(*tps)
	ticks := int(*seconds * float64(*tps))

	var sum totals
	started := time.Now()
	for i := 1; i <= ticks; i++ {
		campaign.World.SetInput(input)
		r, err := campaign.Tick(dt)
		if err != nil {
			logger.Fatal().Err(err).Msg("tick failed")
		}
		sum.add(r)

		if i%*tps == 0 {
			logSecond(logger, campaign, i / *tps, r, sum)
		}
	}

	logger.Info().
		Int("ticks", ticks).
		Dur("elapsed", time.Since(started)).
		Int("fired", sum.fired).
		Int("destroyed", sum.destroyed).
		Int("collected", sum.collected).
		Int("deaths", sum.deaths).
		Int("restarts", campaign.Restarts).
		Int("playerLevel", campaign.PlayerLevel).
		Msg("simulation finished")
}

func logSecond(logger zerolog.Logger, c *game.Campaign, second int, last game.TickReport, sum totals) {
	w := c.World
	logger.Info().
		Int("second", second).
		Int("enemies", w.RemainingEnemies()).
		Int("active", last.Active).
		Int("projectiles", len(w.Projectiles)).
		Int("bases", w.CollectedBaseCount).
		Int("fired", sum.fired).
		Int("destroyed", sum.destroyed).
		Int("deaths", sum.deaths).
		Msg("tick stats")
}

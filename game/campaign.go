package game

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Campaign replays a level, restarting on death and levelling the player up
// when they return home with more bases than their current level
type Campaign struct {
	Level       *Level
	PlayerLevel int
	World       *World

	// Restarts counts every world rebuilt after the first
	Restarts int

	opts   []Option
	logger zerolog.Logger
}

// NewCampaign builds the first world of a campaign
func NewCampaign(level *Level, startLevel int, logger zerolog.Logger, opts ...Option) (*Campaign, error) {
	c := &Campaign{
		Level:       level,
		PlayerLevel: startLevel,
		opts:        append([]Option{WithLogger(logger)}, opts...),
		logger:      logger,
	}
	if err := c.rebuild(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Campaign) rebuild() error {
	// Keep presentation state across restarts
	var speed [2]float64
	var camera Camera
	if c.World != nil {
		speed = [2]float64{c.World.PlayerSpeedMultiplier, c.World.EnemySpeedMultiplier}
		camera = c.World.Camera
	}

	w, err := NewWorld(c.Level, c.PlayerLevel, c.opts...)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}
	if c.World != nil {
		w.PlayerSpeedMultiplier, w.EnemySpeedMultiplier = speed[0], speed[1]
		w.Camera.Zoom = camera.Zoom
		c.Restarts++
	}
	c.World = w
	return nil
}

// LevelUpAvailable reports whether restarting now raises the player level
func (c *Campaign) LevelUpAvailable() bool {
	return c.World.AtHomeBase() && c.World.CollectedBaseCount > c.PlayerLevel
}

// Restart rebuilds the world. At the home base the player level rises to the
// number of bases collected, if that is higher. Returns true if the level changed.
func (c *Campaign) Restart() (bool, error) {
	levelled := false
	if c.LevelUpAvailable() {
		c.logger.Info().
			Int("from", c.PlayerLevel).
			Int("to", c.World.CollectedBaseCount).
			Msg("player level up")
		c.PlayerLevel = c.World.CollectedBaseCount
		levelled = true
	}
	if err := c.rebuild(); err != nil {
		return false, err
	}
	return levelled, nil
}

// RequestRestart restarts only when the player is at the home base
func (c *Campaign) RequestRestart() (bool, error) {
	if !c.World.AtHomeBase() {
		return false, nil
	}
	return c.Restart()
}

// Tick advances the world and restarts at the same level after a death
func (c *Campaign) Tick(dt float64) (TickReport, error) {
	r := c.World.Tick(dt)
	if c.World.Gameover {
		c.logger.Info().Int("playerLevel", c.PlayerLevel).Msg("restarting after gameover")
		if err := c.rebuild(); err != nil {
			return r, err
		}
	}
	return r, nil
}

// StatusLines returns the HUD text for the current state
func (c *Campaign) StatusLines() []string {
	w := c.World
	lines := []string{
		fmt.Sprintf("Player Level %d", c.PlayerLevel),
		fmt.Sprintf("%d / %d Bases Collected", w.CollectedBaseCount, w.BaseCount()),
	}
	if !w.AtHomeBase() {
		return lines
	}
	lines = append(lines, "At Home Base")
	if c.LevelUpAvailable() {
		lines = append(lines, fmt.Sprintf("Press return to restart and level up to %d", w.CollectedBaseCount))
	} else {
		lines = append(lines, "Press return to restart")
	}
	return lines
}

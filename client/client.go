package client

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"voidsweep/game"
	"voidsweep/scene"
)

// Config holds window and developer settings for the client
type Config struct {
	Width  int
	Height int
	Title  string

	ShowOverlay bool

	// ProfileDir receives captures on frame rate drops; empty disables profiling
	ProfileDir string
}

// lowFPS triggers a profile capture once startupGrace has passed
const (
	lowFPS       = 45.0
	startupGrace = 3 * time.Second
)

// Game adapts a campaign to ebiten's game loop
type Game struct {
	campaign *game.Campaign
	renderer *Renderer
	profiler *Profiler
	logger   zerolog.Logger

	width, height int

	paused     bool
	savedSpeed [2]float64

	lastReport     game.TickReport
	lastUpdateTime time.Time
	gameStartTime  time.Time
}

// NewGame creates the client for a campaign
func NewGame(campaign *game.Campaign, cfg Config, logger zerolog.Logger) (*Game, error) {
	g := &Game{
		campaign:       campaign,
		renderer:       NewRenderer(),
		logger:         logger,
		width:          cfg.Width,
		height:         cfg.Height,
		lastUpdateTime: time.Now(),
		gameStartTime:  time.Now(),
	}
	GetDebugState().ShowOverlay = cfg.ShowOverlay

	if cfg.ProfileDir != "" {
		p, err := NewProfiler(cfg.ProfileDir, logger)
		if err != nil {
			return nil, err
		}
		g.profiler = p
	}
	return g, nil
}

// World returns the world currently being played
func (g *Game) World() *game.World {
	return g.campaign.World
}

// Paused reports whether the simulation is frozen
func (g *Game) Paused() bool {
	return g.paused
}

// togglePause freezes both speed multipliers, restoring them on resume
func (g *Game) togglePause() {
	w := g.World()
	if g.paused {
		w.PlayerSpeedMultiplier, w.EnemySpeedMultiplier = g.savedSpeed[0], g.savedSpeed[1]
	} else {
		g.savedSpeed = [2]float64{w.PlayerSpeedMultiplier, w.EnemySpeedMultiplier}
		w.PlayerSpeedMultiplier, w.EnemySpeedMultiplier = 0, 0
	}
	g.paused = !g.paused
	g.logger.Debug().Bool("paused", g.paused).Msg("pause toggled")
}

// apply handles the frame's one-shot commands
func (g *Game) apply(cmds Commands) error {
	if cmds.ToggleDebug {
		d := GetDebugState()
		d.ShowOverlay = !d.ShowOverlay
	}
	if cmds.Zoom != 0 {
		g.World().Camera.ZoomBy(cmds.Zoom)
	}
	if cmds.TogglePause {
		g.togglePause()
	}
	if cmds.Restart {
		restarted := g.World().AtHomeBase()
		levelled, err := g.campaign.RequestRestart()
		if err != nil {
			return fmt.Errorf("restarting: %w", err)
		}
		if restarted {
			g.logger.Info().
				Bool("levelled", levelled).
				Int("playerLevel", g.campaign.PlayerLevel).
				Msg("restarted from home base")
		}
	}
	return nil
}

// step advances the campaign by dt and keeps the camera on the player
func (g *Game) step(in game.InputState, dt float64) error {
	g.World().SetInput(in)
	report, err := g.campaign.Tick(dt)
	if err != nil {
		return err
	}
	g.lastReport = report

	w := g.World()
	w.Camera.Follow(w.Player.Position, float64(g.width), float64(g.height))
	return nil
}

// Update advances the game by the wall-clock time since the last update
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if err := g.apply(ReadCommands()); err != nil {
		return err
	}
	if err := g.step(ReadInput(g.width, g.height), dt); err != nil {
		return err
	}

	g.checkFrameRate()
	return nil
}

func (g *Game) checkFrameRate() {
	if g.profiler == nil || time.Since(g.gameStartTime) < startupGrace {
		return
	}
	fps := ebiten.ActualFPS()
	if fps >= lowFPS || g.profiler.Busy() {
		return
	}

	reason := fmt.Sprintf("fps%.0f-enemies%d-projectiles%d", fps, g.World().RemainingEnemies(), len(g.World().Projectiles))
	if err := g.profiler.Capture(reason); err == nil {
		g.logger.Warn().Float64("fps", fps).Msg("frame rate drop detected, capturing profile")
	}
}

// Draw renders the world, the HUD and the optional debug overlay
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.World()
	g.renderer.Render(screen, scene.Build(w, float64(g.width), float64(g.height)))

	lines := g.campaign.StatusLines()
	if w.Won() {
		lines = append(lines, "You win")
	}
	g.renderer.RenderHUD(screen, lines)

	if GetDebugState().ShowOverlay {
		g.renderer.RenderDebug(screen, w, g.lastReport, g.paused)
	}
}

// Layout matches the screen to the window so resizing shows more of the world
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

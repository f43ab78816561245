package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// HomeBaseRadius is the radius of the restart area at the origin
const HomeBaseRadius = 100.0

// TickReport summarises what happened during one tick
type TickReport struct {
	// Fired is the number of projectiles spawned
	Fired int

	// Destroyed is the number of hostile vessels killed
	Destroyed int

	// Spent is the number of projectiles culled
	Spent int

	// Collected is the number of bases claimed
	Collected int

	// Active is the number of enemies inside the activity radius
	Active int

	PlayerKilled bool
}

// World owns all simulation state for one run of a level
type World struct {
	Config Config

	Player      Vessel
	Camera      Camera
	HomeBase    Body
	Collectors  []Collector
	Enemies     []Vessel
	Projectiles []Projectile

	Gameover           bool
	TotalEnemyCount    int
	CollectedBaseCount int

	PlayerSpeedMultiplier float64
	EnemySpeedMultiplier  float64

	LevelName   string
	PlayerLevel int

	input      InputState
	pending    []Projectile
	collisions *CollisionSystem
	rng        *rand.Rand
	logger     zerolog.Logger
	telemetry  *Telemetry
}

// Option configures a World
type Option func(*World)

// WithConfig replaces the default simulation config
func WithConfig(cfg Config) Option {
	return func(w *World) {
		w.Config = cfg
	}
}

// WithRand sets the random source used for spawn placement
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		w.rng = rng
	}
}

// WithLogger sets the world's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithTelemetry records tick counts into the given instruments
func WithTelemetry(t *Telemetry) Option {
	return func(w *World) {
		w.telemetry = t
	}
}

// ErrInvalidPlayerLevel is returned for a negative player level
var ErrInvalidPlayerLevel = errors.New("invalid player level")

// NewWorld builds a world for level with the player at the given level
func NewWorld(level *Level, playerLevel int, opts ...Option) (*World, error) {
	if playerLevel < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerLevel, playerLevel)
	}
	if level == nil {
		return nil, fmt.Errorf("%w: nil level", ErrInvalidLevel)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Config:                DefaultConfig(),
		Camera:                NewCamera(),
		PlayerSpeedMultiplier: 1,
		EnemySpeedMultiplier:  1,
		LevelName:             level.Name,
		PlayerLevel:           playerLevel,
		logger:                zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w.collisions = NewCollisionSystem(w.Config.CellSize)
	w.HomeBase = Body{
		Radius:             HomeBaseRadius,
		FrictionMultiplier: 1,
		Shapes:             []Shape{Circle(ColorBlue)},
		Health:             Invulnerable,
	}

	w.Player = NewPlayer(playerLevel, w.Config.Controls)
	if err := w.Player.Validate(); err != nil {
		return nil, fmt.Errorf("player at level %d: %w", playerLevel, err)
	}
	if w.Config.PlayerInvulnerable {
		w.Player.Health = Invulnerable
	}

	w.Collectors = make([]Collector, 0, len(level.Collectors))
	w.Enemies = make([]Vessel, 0, level.EnemyCount())
	for i, spec := range level.Collectors {
		c := NewCollector(spec.Position, spec.Population, spec.OptimalDistance, spec.MaxDistance)
		w.Enemies = append(w.Enemies, c.SpawnPopulation(CollectorRef(i), w.rng)...)
		w.Collectors = append(w.Collectors, c)
		w.logger.Debug().Int("base", i).Int("garrison", c.Count()).Msg("base spawned")
	}
	for i := range level.Spawners {
		w.Enemies = append(w.Enemies, level.Spawners[i].SpawnPopulation(w.rng)...)
	}
	for i := range w.Enemies {
		if err := w.Enemies[i].Validate(); err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
	}
	w.TotalEnemyCount = len(w.Enemies)

	w.logger.Info().
		Str("level", level.Name).
		Int("playerLevel", playerLevel).
		Int("bases", len(w.Collectors)).
		Int("enemies", w.TotalEnemyCount).
		Msg("world created")

	return w, nil
}

// SetInput stores the input snapshot used by the next tick
func (w *World) SetInput(in InputState) {
	w.input = in
}

// Tick advances the simulation by dt seconds
func (w *World) Tick(dt float64) TickReport {
	return w.TickContext(context.Background(), dt)
}

// TickContext advances the simulation by dt seconds, recording metrics against ctx.
// Decisions read the state as it was at the start of the tick; projectiles
// fired during the tick join the world after every vessel has moved.
func (w *World) TickContext(ctx context.Context, dt float64) TickReport {
	var r TickReport
	if w.Gameover {
		return r
	}

	dt = w.Config.ClampFrameTime(dt)
	playerDt := dt * w.PlayerSpeedMultiplier
	enemyDt := dt * w.EnemySpeedMultiplier
	radius := w.Config.ActivityRadius

	view := View{
		Player:      w.Player.Snapshot(),
		Projectiles: w.Projectiles,
		Collectors:  w.Collectors,
		Input:       w.input,
	}

	// Vessels
	pending := w.Player.Tick(playerDt, &view, w.pending[:0])
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if Distance(w.Player.Position, e.Position) > radius {
			continue
		}
		r.Active++
		pending = e.Tick(enemyDt, &view, pending)
		if w.collisions.Ram(&w.Player, e) {
			r.Destroyed++
		}
	}

	r.Fired = len(pending)
	w.Projectiles = append(w.Projectiles, pending...)
	w.pending = pending[:0]

	// Projectiles
	w.collisions.Index(w.Enemies)
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if Distance(w.Player.Position, p.Position) > radius {
			continue
		}
		if p.Team == w.Player.Team.Opposing() {
			p.Tick(enemyDt)
			w.collisions.HitPlayer(p, &w.Player)
		} else {
			p.Tick(playerDt)
			r.Destroyed += w.collisions.HitEnemies(p, w.Enemies)
		}
	}

	// Bases
	for i := range w.Collectors {
		c := &w.Collectors[i]
		if c.TryCollect(&w.Player.Body) {
			w.CollectedBaseCount++
			r.Collected++
			w.logger.Info().
				Int("base", i).
				Int("collected", w.CollectedBaseCount).
				Int("total", len(w.Collectors)).
				Msg("base collected")
		}
		c.Follow(&w.Player.Body)
	}

	if w.Player.IsDead() {
		w.Gameover = true
		r.PlayerKilled = true
		w.logger.Info().
			Int("collected", w.CollectedBaseCount).
			Int("remaining", len(w.Enemies)).
			Msg("player destroyed")
	}

	w.Enemies = slices.DeleteFunc(w.Enemies, func(v Vessel) bool {
		return v.IsDead()
	})
	before := len(w.Projectiles)
	w.Projectiles = slices.DeleteFunc(w.Projectiles, func(p Projectile) bool {
		return p.Spent()
	})
	r.Spent = before - len(w.Projectiles)

	if e := w.logger.Trace(); e.Enabled() {
		e.Int("active", r.Active).
			Int("enemies", len(w.Enemies)).
			Int("projectiles", len(w.Projectiles)).
			Msg("tick")
	}

	w.telemetry.Record(ctx, w.LevelName, r)
	return r
}

// Won reports whether every base has been collected
func (w *World) Won() bool {
	return len(w.Collectors) > 0 && w.CollectedBaseCount == len(w.Collectors)
}

// AtHomeBase reports whether the player is over the home base
func (w *World) AtHomeBase() bool {
	return Overlapping(&w.Player.Body, &w.HomeBase)
}

// RemainingEnemies returns the number of surviving hostile vessels
func (w *World) RemainingEnemies() int {
	return len(w.Enemies)
}

// BaseCount returns the number of bases in the level
func (w *World) BaseCount() int {
	return len(w.Collectors)
}

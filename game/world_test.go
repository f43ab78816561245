package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, level *Level, opts ...Option) *World {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	w, err := NewWorld(level, 0, opts...)
	require.NoError(t, err)
	return w
}

func hostileShot(position, velocity Vec2, lifetime float64) Projectile {
	return Projectile{
		Body: Body{
			Position:           position,
			Velocity:           velocity,
			Radius:             ProjectileRadius,
			Direction:          DirectionFromVec(velocity),
			FrictionMultiplier: 1,
			Health:             Alive,
		},
		LifetimeRemaining: lifetime,
		Team:              TeamHostile,
	}
}

func TestWorld_HostileProjectileKillsPlayer(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	w.Projectiles = append(w.Projectiles, hostileShot(V(100, 0), V(-200, 0), 5))

	for i := 0; i < 4; i++ {
		r := w.Tick(0.1)
		require.False(t, r.PlayerKilled, "tick %d", i)
	}
	require.Len(t, w.Projectiles, 1)

	r := w.Tick(0.1)
	assert.True(t, r.PlayerKilled)
	assert.True(t, w.Gameover)
	assert.True(t, w.Player.IsDead())
	assert.Equal(t, 1, r.Spent)
	assert.Empty(t, w.Projectiles)

	// A finished world no longer changes
	assert.Equal(t, TickReport{}, w.Tick(0.1))
}

func TestWorld_InvulnerablePlayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerInvulnerable = true
	w := newTestWorld(t, &Level{Name: "empty"}, WithConfig(cfg))
	w.Projectiles = append(w.Projectiles, hostileShot(V(5, 0), V(0, 0), 5))

	r := w.Tick(0.016)
	assert.False(t, w.Gameover)
	assert.Equal(t, Invulnerable, w.Player.Health)
	assert.Equal(t, 1, r.Spent, "the projectile still dies on impact")
}

func TestWorld_PlayerProjectileHitsEveryOverlap(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	a := NewEnemy(ArchetypeSlow, NoCollector, 0)
	a.Position = V(500, 30)
	b := NewEnemy(ArchetypeSlow, NoCollector, 0)
	b.Position = V(500, -30)
	w.Enemies = append(w.Enemies, a, b)

	shot := hostileShot(V(500, 0), V(0, 0), 5)
	shot.Team = TeamPlayer
	w.Projectiles = append(w.Projectiles, shot)

	r := w.Tick(0.016)
	assert.Equal(t, 2, r.Destroyed)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Projectiles)
}

func TestWorld_RammingKillsBoth(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	e := NewEnemy(ArchetypeSlow, NoCollector, 0)
	e.Position = V(40, 0)
	w.Enemies = append(w.Enemies, e)

	r := w.Tick(0.016)
	assert.Equal(t, 1, r.Destroyed)
	assert.True(t, r.PlayerKilled)
	assert.Empty(t, w.Enemies)
}

func TestWorld_ActivityRadius(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	near := NewEnemy(ArchetypeUltraLowFriction, NoCollector, 0)
	near.Position = V(2000, 0)
	near.Velocity = V(0, 100)
	far := near
	far.Position = V(4000, 0)
	w.Enemies = append(w.Enemies, near, far)

	far2 := hostileShot(V(-3500, 0), V(100, 0), 0.01)
	w.Projectiles = append(w.Projectiles, far2)

	r := w.Tick(0.1)
	assert.Equal(t, 1, r.Active)
	assert.Greater(t, w.Enemies[0].Position.Y(), 0.0)
	assert.Equal(t, V(4000, 0), w.Enemies[1].Position)

	// Frozen projectiles keep their lifetime
	require.Len(t, w.Projectiles, 1)
	assert.Equal(t, 0.01, w.Projectiles[0].LifetimeRemaining)
}

func TestWorld_FiredProjectilesJoinThisTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controls = ControlsKeyboard
	w := newTestWorld(t, &Level{Name: "empty"}, WithConfig(cfg))
	w.SetInput(InputState{Fire: true})

	r := w.Tick(0.016)
	assert.Equal(t, 1, r.Fired)
	require.Len(t, w.Projectiles, 1)

	// Spawned at the nose, then advanced once
	p := w.Projectiles[0]
	assert.Greater(t, p.Position.X(), w.Player.Radius)
	assert.Less(t, p.LifetimeRemaining, w.Player.Weapons[0].ProjectileLifetime)
	assert.Equal(t, TeamPlayer, p.Team)
}

func TestWorld_ExpiredProjectilesAreCulled(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	w.Projectiles = append(w.Projectiles, hostileShot(V(500, 500), V(0, 0), 0.05))

	r := w.Tick(0.1)
	assert.Equal(t, 1, r.Spent)
	assert.Empty(t, w.Projectiles)
}

func TestWorld_CollectsBaseOnce(t *testing.T) {
	level := &Level{
		Name: "home",
		Collectors: []CollectorSpec{
			{Position: V(0, 0), Population: map[Archetype]int{}, OptimalDistance: 50, MaxDistance: 500},
			{Position: V(5000, 0), Population: map[Archetype]int{}, OptimalDistance: 50, MaxDistance: 500},
		},
	}
	w := newTestWorld(t, level)

	r := w.Tick(0.016)
	assert.Equal(t, 1, r.Collected)
	assert.Equal(t, 1, w.CollectedBaseCount)
	assert.True(t, w.Collectors[0].Collected)
	assert.False(t, w.Won())

	r = w.Tick(0.016)
	assert.Equal(t, 0, r.Collected)
	assert.Equal(t, 1, w.CollectedBaseCount)

	// Carried with the player
	w.Player.Position = V(77, 0)
	w.Tick(0.016)
	assert.InDelta(t, w.Player.Position.X(), w.Collectors[0].Position.X(), 1e-9)
	assert.Equal(t, V(0, 0), w.Collectors[0].Anchor)
}

func TestWorld_SpawnsLevelPopulation(t *testing.T) {
	level := &Level{
		Name: "small",
		Collectors: []CollectorSpec{
			{Position: V(-1000, 0), Population: map[Archetype]int{ArchetypeSlow: 4}, OptimalDistance: 50, MaxDistance: 500},
		},
		Spawners: []Spawner{
			NewSpawner(map[Archetype]int{ArchetypeShoot: 3}, 1000, 2000),
		},
	}
	w := newTestWorld(t, level)

	assert.Equal(t, 7, w.TotalEnemyCount)
	assert.Equal(t, 7, w.RemainingEnemies())
	assert.Equal(t, 1, w.BaseCount())
	assert.True(t, w.AtHomeBase())
	assert.Equal(t, HomeBaseRadius, w.HomeBase.Radius)
	assert.Equal(t, V(0, 0), w.Player.Position)

	for _, e := range w.Enemies[:4] {
		assert.Equal(t, CollectorRef(0), e.Pilot.(PursuitPilot).Collector)
	}
}

func TestWorld_SeededWorldsMatch(t *testing.T) {
	level := &Level{
		Name:     "seeded",
		Spawners: []Spawner{NewSpawner(map[Archetype]int{ArchetypeSlow: 5, ArchetypeSniper: 5}, 100, 2000)},
	}
	a := newTestWorld(t, level)
	b := newTestWorld(t, level)

	for i := 0; i < 60; i++ {
		a.Tick(1.0 / 60)
		b.Tick(1.0 / 60)
	}
	require.Equal(t, len(a.Enemies), len(b.Enemies))
	for i := range a.Enemies {
		assert.Equal(t, a.Enemies[i].Position, b.Enemies[i].Position)
		assert.True(t, a.Enemies[i].finite())
	}
}

func TestWorld_PauseFreezesEverything(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	e := NewEnemy(ArchetypeUltraLowFriction, NoCollector, 0)
	e.Position = V(800, 0)
	e.Velocity = V(10, 0)
	w.Enemies = append(w.Enemies, e)
	w.PlayerSpeedMultiplier, w.EnemySpeedMultiplier = 0, 0

	w.Tick(0.1)
	assert.Equal(t, V(800, 0), w.Enemies[0].Position)
}

func TestWorld_ClampsFrameTime(t *testing.T) {
	w := newTestWorld(t, &Level{Name: "empty"})
	w.Player.Velocity = V(100, 0)
	w.Player.FrictionMultiplier = 1
	w.Player.FrictionConstant = 0

	w.Tick(5)
	assert.InDelta(t, 10, w.Player.Position.X(), 1e-9)
}

func TestNewWorld_RejectsInvalidLevel(t *testing.T) {
	_, err := NewWorld(nil, 0)
	require.ErrorIs(t, err, ErrInvalidLevel)

	bad := &Level{Spawners: []Spawner{NewSpawner(nil, 300, 100)}}
	_, err = NewWorld(bad, 0)
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNewWorld_RejectsNegativePlayerLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controls = ControlsKeyboard
	for _, lvl := range []int{-1, -5, -6} {
		_, err := NewWorld(&Level{Name: "empty"}, lvl, WithConfig(cfg))
		require.ErrorIs(t, err, ErrInvalidPlayerLevel, "level %d", lvl)
	}
}

func TestWorld_EnemiesSeeTickStartPlayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controls = ControlsKeyboard
	w := newTestWorld(t, &Level{Name: "empty"}, WithConfig(cfg))
	e := NewEnemy(ArchetypeSlow, NoCollector, 0)
	e.Position = V(300, 0)
	e.Direction = NewDirection(math.Pi)
	w.Enemies = append(w.Enemies, e)

	// At rest on the enemy's heading, then thrusting sideways during its own update
	w.Player.Direction = NewDirection(math.Pi / 2)
	w.Player.Thrust = 1e5
	w.Player.FrictionMultiplier = 1
	w.Player.FrictionConstant = 0
	w.SetInput(InputState{Thrust: true})
	w.Tick(0.1)

	require.Greater(t, w.Player.Position.Y(), 40.0)
	moved := DirectionFromVec(w.Player.Position.Sub(V(300, 0)))
	require.NotEqual(t, RotateNone, ShortestRotation(NewDirection(math.Pi), moved, aimEpsilon))

	// Steering used the stationary player at the origin, dead ahead
	assert.InDelta(t, math.Pi, math.Abs(w.Enemies[0].Direction.Radians()), 1e-9)
}

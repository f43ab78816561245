package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidsweep/game"
)

func writeLevel(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const sampleLevel = `
name: outpost
bases:
  - position: [100, -200]
    population:
      Slow: 3
      Turret: 1
    optimalDistance: 50
    maxDistance: 400
spawners:
  - population:
      Shoot: 4
    minDistance: 1000
    maxDistance: 2000
    center: [10, 20]
`

func TestLoad(t *testing.T) {
	l, err := Load(writeLevel(t, "outpost.yaml", sampleLevel))
	require.NoError(t, err)

	assert.Equal(t, "outpost", l.Name)
	require.Len(t, l.Collectors, 1)
	c := l.Collectors[0]
	assert.Equal(t, game.V(100, -200), c.Position)
	assert.Equal(t, map[game.Archetype]int{game.ArchetypeSlow: 3, game.ArchetypeTurret: 1}, c.Population)
	assert.InDelta(t, 50.0, c.OptimalDistance, 1e-9)
	assert.InDelta(t, 400.0, c.MaxDistance, 1e-9)

	require.Len(t, l.Spawners, 1)
	s := l.Spawners[0]
	assert.Equal(t, map[game.Archetype]int{game.ArchetypeShoot: 4}, s.Population)
	assert.Equal(t, game.V(10, 20), s.Center)
	assert.InDelta(t, 1000.0, s.MinDistance, 1e-9)
	assert.InDelta(t, 2000.0, s.MaxDistance, 1e-9)

	assert.Equal(t, 8, l.EnemyCount())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			"unknown archetype",
			"bases:\n  - position: [0, 0]\n    population: {Dragon: 1}\n    maxDistance: 10\n",
			game.ErrUnknownArchetype,
		},
		{
			"bad point",
			"bases:\n  - position: [0, 0, 1]\n    maxDistance: 10\n",
			ErrMalformedLevel,
		},
		{
			"player population",
			"spawners:\n  - population: {Player: 1}\n    maxDistance: 10\n",
			game.ErrInvalidLevel,
		},
		{
			"inverted annulus",
			"spawners:\n  - population: {Slow: 1}\n    minDistance: 20\n    maxDistance: 10\n",
			game.ErrInvalidLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeLevel(t, "level.yaml", tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	l, err := Resolve("", 1)
	require.NoError(t, err)
	assert.Equal(t, "level-1", l.Name)

	path := writeLevel(t, "unnamed.yaml", "bases: []\n")
	l, err = Resolve(path, 1)
	require.NoError(t, err)
	assert.Equal(t, path, l.Name)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Validate(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		ok    bool
	}{
		{"empty", Level{}, true},
		{
			"valid",
			Level{
				Collectors: []CollectorSpec{{Population: map[Archetype]int{ArchetypeSlow: 2}, OptimalDistance: 50, MaxDistance: 500}},
				Spawners:   []Spawner{NewSpawner(map[Archetype]int{ArchetypeShoot: 1}, 0, 10)},
			},
			true,
		},
		{
			"negative count",
			Level{Collectors: []CollectorSpec{{Population: map[Archetype]int{ArchetypeSlow: -1}, MaxDistance: 10}}},
			false,
		},
		{
			"player archetype",
			Level{Spawners: []Spawner{NewSpawner(map[Archetype]int{ArchetypePlayer: 1}, 0, 10)}},
			false,
		},
		{
			"zero max distance",
			Level{Collectors: []CollectorSpec{{OptimalDistance: 50}}},
			false,
		},
		{
			"inverted annulus",
			Level{Spawners: []Spawner{NewSpawner(nil, 20, 10)}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidLevel)
		})
	}
}

func TestLevel_EnemyCount(t *testing.T) {
	l := Level{
		Collectors: []CollectorSpec{{Population: map[Archetype]int{ArchetypeSlow: 2, ArchetypeTurret: 3}}},
		Spawners:   []Spawner{NewSpawner(map[Archetype]int{ArchetypeShoot: 4}, 0, 10)},
	}
	assert.Equal(t, 9, l.EnemyCount())
}

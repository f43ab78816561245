package level

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"voidsweep/game"
)

// ErrMalformedLevel is returned when a level file cannot be decoded
var ErrMalformedLevel = errors.New("malformed level file")

type fileBase struct {
	Position        []float64      `mapstructure:"position"`
	Population      map[string]int `mapstructure:"population"`
	OptimalDistance float64        `mapstructure:"optimalDistance"`
	MaxDistance     float64        `mapstructure:"maxDistance"`
}

type fileSpawner struct {
	Population  map[string]int `mapstructure:"population"`
	MinDistance float64        `mapstructure:"minDistance"`
	MaxDistance float64        `mapstructure:"maxDistance"`
	Center      []float64      `mapstructure:"center"`
}

type fileLevel struct {
	Name     string        `mapstructure:"name"`
	Bases    []fileBase    `mapstructure:"bases"`
	Spawners []fileSpawner `mapstructure:"spawners"`
}

// Load reads a level description from a yaml, json or toml file
func Load(path string) (*game.Level, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading level file: %w", err)
	}

	var raw fileLevel
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLevel, err)
	}

	l, err := raw.toLevel()
	if err != nil {
		return nil, err
	}
	if l.Name == "" {
		l.Name = path
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Resolve returns the level in path, or level one when path is empty
func Resolve(path string, multiplier int) (*game.Level, error) {
	if path == "" {
		return LevelOne(multiplier), nil
	}
	return Load(path)
}

func point(p []float64) (game.Vec2, error) {
	switch len(p) {
	case 0:
		return game.Vec2{}, nil
	case 2:
		return game.V(p[0], p[1]), nil
	}
	return game.Vec2{}, fmt.Errorf("%w: point needs two coordinates, got %d", ErrMalformedLevel, len(p))
}

func population(raw map[string]int) (map[game.Archetype]int, error) {
	out := make(map[game.Archetype]int, len(raw))
	for name, count := range raw {
		a, err := game.ParseArchetype(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedLevel, err)
		}
		out[a] += count
	}
	return out, nil
}

func (f fileLevel) toLevel() (*game.Level, error) {
	l := &game.Level{Name: f.Name}

	for i, b := range f.Bases {
		pos, err := point(b.Position)
		if err != nil {
			return nil, fmt.Errorf("base %d: %w", i, err)
		}
		counts, err := population(b.Population)
		if err != nil {
			return nil, fmt.Errorf("base %d: %w", i, err)
		}
		l.Collectors = append(l.Collectors, game.CollectorSpec{
			Position:        pos,
			Population:      counts,
			OptimalDistance: b.OptimalDistance,
			MaxDistance:     b.MaxDistance,
		})
	}

	for i, s := range f.Spawners {
		center, err := point(s.Center)
		if err != nil {
			return nil, fmt.Errorf("spawner %d: %w", i, err)
		}
		counts, err := population(s.Population)
		if err != nil {
			return nil, fmt.Errorf("spawner %d: %w", i, err)
		}
		sp := game.NewSpawner(counts, s.MinDistance, s.MaxDistance)
		sp.Center = center
		l.Spawners = append(l.Spawners, sp)
	}

	return l, nil
}

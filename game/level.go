package game

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a level descriptor cannot be played
var ErrInvalidLevel = errors.New("invalid level")

// CollectorSpec places one base and its garrison
type CollectorSpec struct {
	Position        Vec2
	Population      map[Archetype]int
	OptimalDistance float64
	MaxDistance     float64
}

// Level lists the bases and ambient spawners of a map
type Level struct {
	Name       string
	Collectors []CollectorSpec
	Spawners   []Spawner
}

func validatePopulation(pop map[Archetype]int) error {
	for a, n := range pop {
		if a <= ArchetypePlayer || a >= ArchetypeCount {
			return fmt.Errorf("archetype %s cannot be spawned", a)
		}
		if n < 0 {
			return fmt.Errorf("negative count %d for %s", n, a)
		}
	}
	return nil
}

// Validate checks every base and spawner
func (l *Level) Validate() error {
	for i, c := range l.Collectors {
		if err := validatePopulation(c.Population); err != nil {
			return fmt.Errorf("%w: base %d: %w", ErrInvalidLevel, i, err)
		}
		if c.OptimalDistance < 0 || c.MaxDistance <= 0 {
			return fmt.Errorf("%w: base %d: distances must be positive", ErrInvalidLevel, i)
		}
		if !Finite(c.Position) {
			return fmt.Errorf("%w: base %d: position is not finite", ErrInvalidLevel, i)
		}
	}
	for i, s := range l.Spawners {
		if err := validatePopulation(s.Population); err != nil {
			return fmt.Errorf("%w: spawner %d: %w", ErrInvalidLevel, i, err)
		}
		if s.MinDistance < 0 || s.MaxDistance <= 0 {
			return fmt.Errorf("%w: spawner %d: distances must be positive", ErrInvalidLevel, i)
		}
		if s.MinDistance > s.MaxDistance {
			return fmt.Errorf("%w: spawner %d: min distance %v exceeds max %v", ErrInvalidLevel, i, s.MinDistance, s.MaxDistance)
		}
	}
	return nil
}

// EnemyCount returns how many vessels the level spawns
func (l *Level) EnemyCount() int {
	n := 0
	for _, c := range l.Collectors {
		for _, count := range c.Population {
			n += count
		}
	}
	for i := range l.Spawners {
		n += l.Spawners[i].Count()
	}
	return n
}

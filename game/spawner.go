package game

import (
	"math"
	"math/rand"
)

// Spawner describes an unbound population scattered over an annulus
type Spawner struct {
	Population  map[Archetype]int
	MinDistance float64
	MaxDistance float64

	// Center of the annulus, the world origin by default
	Center Vec2
}

// NewSpawner creates a spawner centred on the origin
func NewSpawner(population map[Archetype]int, minDistance, maxDistance float64) Spawner {
	return Spawner{
		Population:  population,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}
}

// randomRadius draws a distance whose square is uniform over [min², max²],
// giving an even density over the annulus area
func (s *Spawner) randomRadius(rng *rand.Rand) float64 {
	lo := s.MinDistance * s.MinDistance
	hi := s.MaxDistance * s.MaxDistance
	return math.Sqrt(lo + rng.Float64()*(hi-lo))
}

// SpawnPopulation creates the spawner's vessels facing away from the centre
func (s *Spawner) SpawnPopulation(rng *rand.Rand) []Vessel {
	var out []Vessel
	for _, a := range sortedArchetypes(s.Population) {
		for i := 0; i < s.Population[a]; i++ {
			v := NewEnemy(a, NoCollector, 0)

			angle := randomAngle(rng)
			v.Direction.Set(angle)
			v.Position = s.Center.Add(NewDirection(angle).Vec().Mul(s.randomRadius(rng)))

			out = append(out, v)
		}
	}
	return out
}

// Count returns the number of vessels the spawner creates
func (s *Spawner) Count() int {
	n := 0
	for _, count := range s.Population {
		n += count
	}
	return n
}

package game

import (
	"maps"
	"math"
	"math/rand"
	"slices"
)

const (
	// CollectorRadius is the claim radius of a base
	CollectorRadius = 25.0

	// maxHeadingOffset is the widest pursuit offset handed to a garrison
	maxHeadingOffset = math.Pi / 4
)

// Collector is a base guarded by its own garrison and claimed by flying over it
type Collector struct {
	Body

	// Anchor is where the base was placed; Position follows the player once collected
	Anchor Vec2

	Population      map[Archetype]int
	OptimalDistance float64
	MaxDistance     float64
	Collected       bool
}

// NewCollector creates an uncollected base at position
func NewCollector(position Vec2, population map[Archetype]int, optimal, maxDistance float64) Collector {
	return Collector{
		Body: Body{
			Position:           position,
			Radius:             CollectorRadius,
			FrictionMultiplier: 1,
			Shapes:             []Shape{Circle(ColorRed)},
			Health:             Invulnerable,
		},
		Anchor:          position,
		Population:      population,
		OptimalDistance: optimal,
		MaxDistance:     maxDistance,
	}
}

// sortedArchetypes returns population keys in ascending order so seeded spawns repeat exactly
func sortedArchetypes(pop map[Archetype]int) []Archetype {
	return slices.Sorted(maps.Keys(pop))
}

// headingOffset spreads a garrison's pursuit angles over ±maxHeadingOffset
func headingOffset(i, count int) float64 {
	return 2 * float64(i-count/2) / float64(count) * maxHeadingOffset
}

// randomAngle draws a uniform angle in [-π, π)
func randomAngle(rng *rand.Rand) float64 {
	return rng.Float64()*2*math.Pi - math.Pi
}

// SpawnPopulation creates the garrison bound to this collector.
// Every vessel starts on the optimal circle facing outward.
func (c *Collector) SpawnPopulation(ref CollectorRef, rng *rand.Rand) []Vessel {
	out := make([]Vessel, 0, c.Count())
	for _, a := range sortedArchetypes(c.Population) {
		count := c.Population[a]
		for i := 0; i < count; i++ {
			v := NewEnemy(a, ref, headingOffset(i, count))

			angle := randomAngle(rng)
			v.Direction.Set(angle)
			v.Position = c.Anchor.Add(NewDirection(angle).Vec().Mul(c.OptimalDistance))

			out = append(out, v)
		}
	}
	return out
}

// Count returns the garrison size
func (c *Collector) Count() int {
	n := 0
	for _, count := range c.Population {
		n += count
	}
	return n
}

// TryCollect claims the base if the player is over it, returning true only on the claiming tick
func (c *Collector) TryCollect(player *Body) bool {
	if c.Collected || !Overlapping(&c.Body, player) {
		return false
	}
	c.Collected = true
	return true
}

// Follow keeps a collected base on the player
func (c *Collector) Follow(player *Body) {
	if c.Collected {
		c.Position = player.Position
	}
}

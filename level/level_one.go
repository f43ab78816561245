package level

import "voidsweep/game"

// DefaultEnemyCountMultiplier scales the ambient spawner populations of level one
const DefaultEnemyCountMultiplier = 3

type pop = map[game.Archetype]int

func base(x, y float64, population pop, optimal, maxDistance float64) game.CollectorSpec {
	return game.CollectorSpec{
		Position:        game.V(x, y),
		Population:      population,
		OptimalDistance: optimal,
		MaxDistance:     maxDistance,
	}
}

// LevelOne returns the built-in map: thirteen bases ringed by three spawn regions.
// multiplier scales the spawn region populations; values below 1 leave them empty.
func LevelOne(multiplier int) *game.Level {
	m := max(multiplier, 0)

	return &game.Level{
		Name: "level-1",
		Collectors: []game.CollectorSpec{
			base(-1000, 0, pop{game.ArchetypeSlow: 10}, 50, 500),
			base(-1000, 500, pop{game.ArchetypeSlow: 10}, 50, 500),
			base(1000, -500, pop{game.ArchetypeSlow: 10}, 50, 500),
			base(2500, 500, pop{game.ArchetypeHighFriction: 10}, 50, 1000),
			base(-2500, 0, pop{game.ArchetypeHighFriction: 10}, 50, 1000),
			base(500, 2500, pop{game.ArchetypeHighFriction: 10}, 50, 1000),
			base(500, -2500, pop{game.ArchetypeSlow: 10, game.ArchetypeTurret: 10}, 50, 1000),
			base(-1000, 4500, pop{game.ArchetypeLowFriction: 10, game.ArchetypeSniper: 10}, 50, 1200),
			base(0, 4500, pop{game.ArchetypeLowFriction: 10, game.ArchetypeSniper: 10}, 50, 1200),
			base(1000, 4500, pop{game.ArchetypeLowFriction: 10, game.ArchetypeSniper: 10}, 50, 1200),
			base(0, 4800, pop{game.ArchetypeShoot: 10, game.ArchetypeHighFriction: 10}, 50, 1500),
			base(-300, 4800, pop{game.ArchetypeSlow: 10, game.ArchetypeUltraLowFriction: 10}, 100, 1000),
			base(300, 4800, pop{game.ArchetypeSlow: 10, game.ArchetypeUltraLowFriction: 10}, 100, 1000),
		},
		Spawners: []game.Spawner{
			game.NewSpawner(pop{
				game.ArchetypeSlow:        9 * m,
				game.ArchetypeLowFriction: 5 * m,
				game.ArchetypeTurret:      2 * m,
			}, 1000, 3000),
			game.NewSpawner(pop{
				game.ArchetypeSlow:         36 * m,
				game.ArchetypeHighFriction: 36 * m,
				game.ArchetypeLowFriction:  5 * m,
				game.ArchetypeSniper:       12 * m,
			}, 3000, 6000),
			game.NewSpawner(pop{
				game.ArchetypeHighFriction:     36 * m,
				game.ArchetypeUltraLowFriction: 5 * m,
				game.ArchetypeShoot:            144 * m,
			}, 6000, 12000),
		},
	}
}

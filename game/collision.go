package game

// CollisionSystem resolves lethal overlaps using a broadphase grid over enemies
type CollisionSystem struct {
	grid *Grid
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cellSize float64) *CollisionSystem {
	return &CollisionSystem{
		grid: NewGrid(cellSize),
	}
}

// Index rebuilds the broadphase from the enemies' current positions.
// Dead enemies stay indexed until culled, so they still stop projectiles this tick.
func (c *CollisionSystem) Index(enemies []Vessel) {
	c.grid.Rebuild(enemies)
}

// kill resolves one pair and reports whether b went from alive to dead
func kill(a, b *Body) (bDied bool) {
	wasAlive := b.Health == Alive
	return ResolveCollision(a, b) && wasAlive && b.IsDead()
}

// Ram resolves a player/enemy overlap and reports whether the enemy was destroyed
func (c *CollisionSystem) Ram(player, enemy *Vessel) bool {
	return kill(&player.Body, &enemy.Body)
}

// HitEnemies checks a player projectile against every enemy it could touch.
// A projectile stays lethal for the rest of the tick after its first hit.
// Returns the number of enemies destroyed.
func (c *CollisionSystem) HitEnemies(p *Projectile, enemies []Vessel) int {
	destroyed := 0
	c.grid.Near(p.Position, p.Radius, func(i int) {
		if kill(&p.Body, &enemies[i].Body) {
			destroyed++
		}
	})
	return destroyed
}

// HitPlayer checks a hostile projectile against the player and reports whether the player died
func (c *CollisionSystem) HitPlayer(p *Projectile, player *Vessel) bool {
	return kill(&p.Body, &player.Body)
}

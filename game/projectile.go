package game

// ProjectileRadius is the radius of every fired projectile
const ProjectileRadius = 2.0

// Projectile is a short-lived body fired by a weapon
type Projectile struct {
	Body
	LifetimeRemaining float64
	Team              Team
}

// Tick integrates the projectile and burns down its lifetime
func (p *Projectile) Tick(dt float64) {
	p.Integrate(dt)
	p.LifetimeRemaining -= dt
}

// Expired reports whether the projectile ran out of lifetime
func (p *Projectile) Expired() bool {
	return p.LifetimeRemaining <= 0
}

// Spent reports whether the projectile should be culled
func (p *Projectile) Spent() bool {
	return p.IsDead() || p.Expired()
}

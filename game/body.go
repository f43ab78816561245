package game

import "math"

// HealthStatus is the damage state of a body
type HealthStatus int

const (
	// Alive bodies are killed by overlaps
	Alive HealthStatus = iota
	// Dead bodies are removed at the end of the tick
	Dead
	// Invulnerable bodies ignore kills
	Invulnerable
)

func (h HealthStatus) String() string {
	switch h {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Invulnerable:
		return "invulnerable"
	}
	return "unknown"
}

// Body is the physical state shared by vessels, projectiles and bases
type Body struct {
	Position  Vec2
	Velocity  Vec2
	Radius    float64
	Direction Direction

	// FrictionConstant is a linear drag in units per second squared
	FrictionConstant float64

	// FrictionMultiplier is the fraction of velocity kept per second (1 = no drag)
	FrictionMultiplier float64

	Shapes []Shape
	Health HealthStatus
}

// Integrate advances position and velocity by dt seconds.
// Exponential drag is applied first, then linear drag opposing the pre-step
// velocity which stops the body outright once it exceeds the remaining speed.
// Position moves by the average of the old and new velocity.
func (b *Body) Integrate(dt float64) {
	oldVel := b.Velocity
	newVel := oldVel.Mul(math.Pow(b.FrictionMultiplier, dt))

	impulse := b.FrictionConstant * dt
	if impulse >= newVel.Len() {
		newVel = Vec2{}
	} else {
		newVel = newVel.Sub(Normalize(oldVel).Mul(impulse))
	}

	b.Velocity = newVel
	b.Position = b.Position.Add(oldVel.Add(newVel).Mul(0.5 * dt))
}

// Kill marks a living body as dead
func (b *Body) Kill() {
	if b.Health == Alive {
		b.Health = Dead
	}
}

// IsDead reports whether the body has been killed
func (b *Body) IsDead() bool {
	return b.Health == Dead
}

// Heading returns the unit vector of the body's direction
func (b *Body) Heading() Vec2 {
	return b.Direction.Vec()
}

// Speed returns the magnitude of the velocity
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

// Overlapping reports whether two bodies touch
func Overlapping(a, b *Body) bool {
	return Distance(a.Position, b.Position) <= a.Radius+b.Radius
}

// ResolveCollision kills both bodies if they overlap and reports whether they did
func ResolveCollision(a, b *Body) bool {
	if !Overlapping(a, b) {
		return false
	}
	a.Kill()
	b.Kill()
	return true
}

func (b *Body) finite() bool {
	return Finite(b.Position) && Finite(b.Velocity) && !math.IsNaN(float64(b.Direction))
}

package game

import (
	"errors"
	"fmt"
)

// ErrInvalidWeapon is returned for weapons that could never finish a reload
var ErrInvalidWeapon = errors.New("invalid weapon")

// Weapon is a reloading projectile launcher mounted on a vessel
type Weapon struct {
	// ReloadTime is the delay between shots in seconds
	ReloadTime float64

	// TimeUntilReloaded counts down each tick and may go negative while firing
	TimeUntilReloaded float64

	ProjectileLifetime float64
	ProjectileSpeed    float64

	Trigger Trigger
}

// NewWeapon creates a loaded weapon
func NewWeapon(reload, lifetime, speed float64, trigger Trigger) Weapon {
	return Weapon{
		ReloadTime:         reload,
		ProjectileLifetime: lifetime,
		ProjectileSpeed:    speed,
		Trigger:            trigger,
	}
}

// Validate rejects weapons whose reload loop would not terminate
func (w *Weapon) Validate() error {
	if !(w.ReloadTime > 0) {
		return fmt.Errorf("%w: reload time %v must be positive", ErrInvalidWeapon, w.ReloadTime)
	}
	if w.Trigger == nil {
		return fmt.Errorf("%w: missing trigger", ErrInvalidWeapon)
	}
	return nil
}

// Tick advances the reload timer and appends every shot fired this tick to out.
// While the trigger is held the weapon catches up on all reloads that elapsed;
// while released the timer never banks below zero.
func (w *Weapon) Tick(dt float64, self *Vessel, view *View, out []Projectile) []Projectile {
	w.TimeUntilReloaded -= dt

	if w.Trigger == nil || !w.Trigger.Firing(self, view) {
		w.TimeUntilReloaded = max(w.TimeUntilReloaded, 0)
		return out
	}
	if !(w.ReloadTime > 0) {
		// Jammed
		w.TimeUntilReloaded = max(w.TimeUntilReloaded, 0)
		return out
	}

	for w.TimeUntilReloaded <= 0 {
		w.TimeUntilReloaded += w.ReloadTime
		out = append(out, w.spawn(self))
	}
	return out
}

// spawn builds a projectile at the firer's nose
func (w *Weapon) spawn(self *Vessel) Projectile {
	heading := self.Heading()
	velocity := self.Velocity.Add(heading.Mul(w.ProjectileSpeed))

	return Projectile{
		Body: Body{
			Position:           self.Position.Add(heading.Mul(self.Radius)),
			Velocity:           velocity,
			Radius:             ProjectileRadius,
			Direction:          DirectionFromVec(velocity),
			FrictionMultiplier: 1,
			Shapes:             []Shape{Circle(ColorBlack)},
			Health:             Alive,
		},
		LifetimeRemaining: w.ProjectileLifetime,
		Team:              self.Team,
	}
}

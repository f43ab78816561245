package game

import (
	"fmt"
	"slices"
)

// Vessel is a thrusting, turning, armed ship
type Vessel struct {
	Body

	// Thrust is the acceleration along the heading while thrusting
	Thrust float64

	// RotateSpeed is the turn rate in radians per second
	RotateSpeed float64

	Weapons   []Weapon
	Team      Team
	Pilot     Pilot
	Archetype Archetype
}

// PrimaryWeapon returns the first weapon, or nil for unarmed vessels
func (v *Vessel) PrimaryWeapon() *Weapon {
	if len(v.Weapons) == 0 {
		return nil
	}
	return &v.Weapons[0]
}

// Validate checks every mounted weapon
func (v *Vessel) Validate() error {
	for i := range v.Weapons {
		if err := v.Weapons[i].Validate(); err != nil {
			return fmt.Errorf("%s weapon %d: %w", v.Archetype, i, err)
		}
	}
	return nil
}

// Snapshot returns a copy that shares no mutable state with v
func (v *Vessel) Snapshot() Vessel {
	s := *v
	s.Weapons = slices.Clone(v.Weapons)
	s.Shapes = slices.Clone(v.Shapes)
	return s
}

// Tick applies the pilot's intent, integrates the body and ticks every weapon.
// Projectiles fired this tick are appended to out.
func (v *Vessel) Tick(dt float64, view *View, out []Projectile) []Projectile {
	pilot := v.Pilot
	if pilot == nil {
		pilot = IdlePilot{}
	}

	if pilot.Thrusting(v, view) {
		v.Velocity = v.Velocity.Add(v.Heading().Mul(v.Thrust * dt))
	}

	// Rotation is decided after thrust so it sees the new velocity
	rotation := pilot.Rotation(v, view)
	v.Direction.Add(rotation.Sign() * v.RotateSpeed * dt)

	v.Integrate(dt)

	// Triggers read only the post-integration body and weapon stats
	self := *v
	for i := range v.Weapons {
		out = v.Weapons[i].Tick(dt, &self, view, out)
	}
	return out
}

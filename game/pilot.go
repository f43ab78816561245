package game

import "math"

// aimEpsilon is the heading tolerance used when steering toward a point
const aimEpsilon = math.Pi / 180

// Pilot decides thrust and rotation intent for a vessel each tick.
// Implementations are small values copied into each vessel and hold no shared state.
type Pilot interface {
	// Thrusting returns true if the vessel should accelerate along its heading
	Thrusting(self *Vessel, view *View) bool

	// Rotation returns the turn to apply this tick
	Rotation(self *Vessel, view *View) Rotation
}

// IdlePilot never thrusts or turns
type IdlePilot struct{}

func (IdlePilot) Thrusting(*Vessel, *View) bool { return false }

func (IdlePilot) Rotation(*Vessel, *View) Rotation { return RotateNone }

// KeyboardPilot steers from the held thrust and turn keys
type KeyboardPilot struct{}

// Thrusting returns the thrust key state
func (KeyboardPilot) Thrusting(_ *Vessel, view *View) bool {
	return view.Input.Thrust
}

// Rotation turns with the held keys; holding both cancels out
func (KeyboardPilot) Rotation(_ *Vessel, view *View) Rotation {
	turn := 0
	if view.Input.TurnLeft {
		turn--
	}
	if view.Input.TurnRight {
		turn++
	}
	return MustRotation(turn)
}

// PointerPilot thrusts on the primary button and turns toward the pointer
type PointerPilot struct{}

// Thrusting returns the primary pointer button state
func (PointerPilot) Thrusting(_ *Vessel, view *View) bool {
	return view.Input.PointerPrimary
}

// Rotation turns toward the pointer's direction from the screen centre
func (PointerPilot) Rotation(self *Vessel, view *View) Rotation {
	if view.Input.Pointer == (Vec2{}) {
		return RotateNone
	}
	return ShortestRotation(self.Direction, DirectionFromVec(view.Input.Pointer), aimEpsilon)
}

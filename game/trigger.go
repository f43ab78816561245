package game

import "math"

// leadFireTolerance is how far off the predicted player position a lead trigger still fires
const leadFireTolerance = math.Pi / 18

// Trigger decides whether a weapon fires this tick
type Trigger interface {
	Firing(self *Vessel, view *View) bool
}

// KeyTrigger fires while the fire key is held
type KeyTrigger struct{}

func (KeyTrigger) Firing(_ *Vessel, view *View) bool {
	return view.Input.Fire
}

// PointerTrigger fires while the secondary pointer button is held
type PointerTrigger struct{}

func (PointerTrigger) Firing(_ *Vessel, view *View) bool {
	return view.Input.PointerSecondary
}

// AlwaysTrigger fires whenever the weapon is loaded
type AlwaysTrigger struct{}

func (AlwaysTrigger) Firing(*Vessel, *View) bool {
	return true
}

// LeadTrigger fires when the heading is within tolerance of the lead-predicted player position
type LeadTrigger struct{}

// Firing compares the heading against where the player will be when a shot arrives
func (LeadTrigger) Firing(self *Vessel, view *View) bool {
	future := LeadPoint(self.Position, view.Player.Position, view.Player.Velocity, PredictionSpeed(self))
	target := DirectionFromVec(future.Sub(self.Position))
	return ShortestRotation(self.Direction, target, leadFireTolerance) == RotateNone
}

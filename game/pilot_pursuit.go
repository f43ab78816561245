package game

const (
	// DefaultPursueRadius is the player distance at which pursuit starts
	DefaultPursueRadius = 600.0

	// DefaultOrbitEpsilon is the slack around a collector's optimal distance
	DefaultOrbitEpsilon = 1.0
)

// CollectorRef indexes the world's collector list
type CollectorRef int

// NoCollector marks a vessel that is not bound to any collector
const NoCollector CollectorRef = -1

// PursuitPilot guards a collector and chases the player when it comes close.
// An unbound pilot only chases. A pilot whose collector has been collected
// behaves as unbound.
type PursuitPilot struct {
	Collector     CollectorRef
	PursueRadius  float64
	HeadingOffset float64
	Epsilon       float64
}

// NewPursuitPilot creates a pursuit pilot with the default orbit slack
func NewPursuitPilot(collector CollectorRef, pursueRadius, headingOffset float64) PursuitPilot {
	return PursuitPilot{
		Collector:     collector,
		PursueRadius:  pursueRadius,
		HeadingOffset: headingOffset,
		Epsilon:       DefaultOrbitEpsilon,
	}
}

// pursuitTarget is a point to steer at and the velocity to lead it by
type pursuitTarget struct {
	Position Vec2
	Velocity Vec2
}

// target resolves what the pilot is steering toward, if anything
func (p PursuitPilot) target(self *Vessel, view *View) (pursuitTarget, bool) {
	player := &view.Player
	playerDist := Distance(self.Position, player.Position)
	chase := pursuitTarget{Position: player.Position, Velocity: player.Velocity}

	base := view.Collector(p.Collector)
	if base != nil && base.Collected {
		// Released garrison
		base = nil
	}

	if base != nil {
		baseDist := Distance(self.Position, base.Position)
		playerBaseDist := Distance(player.Position, base.Position)

		if playerDist < p.PursueRadius && playerBaseDist < base.MaxDistance {
			return chase, true
		}
		if baseDist > base.OptimalDistance+p.Epsilon {
			return pursuitTarget{Position: base.Position}, true
		}
		if baseDist < base.OptimalDistance-p.Epsilon {
			// Nearest point on the optimal circle around the base
			out := Normalize(self.Position.Sub(base.Position))
			return pursuitTarget{Position: base.Position.Add(out.Mul(base.OptimalDistance))}, true
		}
		return pursuitTarget{}, false
	}

	if playerDist < p.PursueRadius {
		return chase, true
	}
	return pursuitTarget{}, false
}

// aimPoint returns the lead-predicted point the pilot steers at
func (p PursuitPilot) aimPoint(self *Vessel, view *View) (Vec2, bool) {
	t, ok := p.target(self, view)
	if !ok {
		return Vec2{}, false
	}
	return LeadPoint(self.Position, t.Position, t.Velocity, PredictionSpeed(self)), true
}

// Thrusting returns true while the aim point is ahead of the vessel
func (p PursuitPilot) Thrusting(self *Vessel, view *View) bool {
	aim, ok := p.aimPoint(self, view)
	if !ok {
		return false
	}
	return self.Heading().Dot(aim.Sub(self.Position)) > 0
}

// Rotation turns toward the aim point plus the heading offset
func (p PursuitPilot) Rotation(self *Vessel, view *View) Rotation {
	aim, ok := p.aimPoint(self, view)
	if !ok {
		return RotateNone
	}
	desired := DirectionFromVec(aim.Sub(self.Position)).Plus(p.HeadingOffset)
	return ShortestRotation(self.Direction, desired, aimEpsilon)
}

package game

import "math"

const (
	// bulletThreatAngle is how close to a direct hit an incoming projectile must be heading
	bulletThreatAngle = math.Pi / 18

	// playerThreatAngle is how close to self the player must be aiming
	playerThreatAngle = math.Pi / 4

	dodgeAngle = math.Pi / 2
	jukeAngle  = math.Pi * 0.75
)

// EvasivePilot dodges incoming fire, jukes away from the player's aim while
// reloading and otherwise steers onto a lead-predicted firing solution
type EvasivePilot struct{}

// closestThreat returns the nearest opposing projectile on a collision heading
func (EvasivePilot) closestThreat(self *Vessel, view *View) (*Projectile, bool) {
	var closest *Projectile
	closestDist := math.Inf(1)

	for i := range view.Projectiles {
		p := &view.Projectiles[i]
		if p.Team != self.Team.Opposing() {
			continue
		}

		approach := DirectionFromVec(self.Position.Sub(p.Position)).Minus(p.Direction)
		if math.Abs(approach.Radians()) >= bulletThreatAngle {
			continue
		}

		if d := Distance(self.Position, p.Position); d < closestDist {
			closestDist = d
			closest = p
		}
	}

	return closest, closest != nil
}

// playerThreat reports whether the player is pointing at self
func (EvasivePilot) playerThreat(self *Vessel, view *View) bool {
	fromPlayer := DirectionFromVec(self.Position.Sub(view.Player.Position))
	return math.Abs(fromPlayer.Minus(view.Player.Direction).Radians()) < playerThreatAngle
}

// Thrusting returns true under threat or while the player is ahead
func (e EvasivePilot) Thrusting(self *Vessel, view *View) bool {
	if _, threat := e.closestThreat(self, view); threat {
		return true
	}
	if self.Heading().Dot(view.Player.Position.Sub(self.Position)) > 0 {
		return true
	}
	return e.playerThreat(self, view)
}

// Rotation turns toward the current evasive or attacking heading
func (e EvasivePilot) Rotation(self *Vessel, view *View) Rotation {
	return ShortestRotation(self.Direction, e.desiredHeading(self, view), aimEpsilon)
}

func (e EvasivePilot) desiredHeading(self *Vessel, view *View) Direction {
	weapon := self.PrimaryWeapon()
	player := &view.Player

	// Dodge perpendicular to the incoming projectile, away from the side it will miss on
	if bullet, ok := e.closestThreat(self, view); ok {
		time := safeTime(Distance(self.Position, bullet.Position), bullet.Speed())
		future := self.Position.Add(self.Velocity.Mul(0.5 * time))
		miss := DirectionFromVec(future.Sub(bullet.Position)).Minus(bullet.Direction)
		if miss > 0 {
			return bullet.Direction.Plus(dodgeAngle)
		}
		return bullet.Direction.Plus(-dodgeAngle)
	}

	// Juke while the player is aiming and our reload is still far off
	if weapon != nil && e.playerThreat(self, view) && weapon.TimeUntilReloaded > weapon.ReloadTime/2 {
		miss := DirectionFromVec(self.Position.Sub(player.Position)).Minus(player.Direction)
		if miss > 0 {
			return player.Direction.Plus(jukeAngle)
		}
		return player.Direction.Plus(-jukeAngle)
	}

	intercept, lookahead := InterceptPoint(self.Position, self.Velocity, player.Position, player.Velocity, PredictionSpeed(self))
	futureSelf := self.Position.Add(self.Velocity.Mul(lookahead))
	return DirectionFromVec(intercept.Sub(futureSelf))
}

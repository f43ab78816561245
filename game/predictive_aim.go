package game

const (
	// DefaultPredictionSpeed is the closing speed assumed by unarmed vessels
	DefaultPredictionSpeed = 200.0

	// interceptIterations is the number of refinement passes for the fixed-point intercept
	interceptIterations = 3
)

// PredictionSpeed returns the projectile speed of a vessel's first weapon, or the default when unarmed
func PredictionSpeed(v *Vessel) float64 {
	if w := v.PrimaryWeapon(); w != nil {
		return w.ProjectileSpeed
	}
	return DefaultPredictionSpeed
}

// LeadPoint projects a target forward by the time a projectile at speed would take
// to cover the current distance
// shooter: position the shot leaves from
// target, targetVel: current target state
// Returns the predicted position to aim at
func LeadPoint(shooter, target, targetVel Vec2, speed float64) Vec2 {
	time := safeTime(Distance(shooter, target), speed)
	return target.Add(targetVel.Mul(time))
}

// InterceptPoint refines the lead point by iterating on the closing speed, which
// includes the shooter's own velocity toward the target.
// Returns the predicted target position and the look-ahead time it was computed for.
func InterceptPoint(shooter, shooterVel, target, targetVel Vec2, projectileSpeed float64) (Vec2, float64) {
	predicted := target
	var lookahead float64

	// Iterate to refine the solution
	for i := 0; i < interceptIterations; i++ {
		dist := Distance(shooter, predicted)
		closing := projectileSpeed + shooterVel.Dot(Normalize(predicted.Sub(shooter)))
		lookahead = safeTime(dist, closing)
		predicted = target.Add(targetVel.Mul(lookahead))
	}

	return predicted, lookahead
}

package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the simulation's 2D vector type
type Vec2 = mgl64.Vec2

// minSpeed is the smallest speed used as a divisor when predicting travel times
const minSpeed = 1e-6

// V builds a vector from components
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Normalize returns the unit vector of v, or the zero vector when v has no length
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Distance returns the euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistanceSq returns the squared distance between two points
func DistanceSq(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Finite reports whether both components are finite numbers
func Finite(v Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsInf(v[0], 0) && !math.IsNaN(v[1]) && !math.IsInf(v[1], 0)
}

// safeTime divides distance by speed, substituting minSpeed for slower speeds
func safeTime(distance, speed float64) float64 {
	if math.Abs(speed) < minSpeed {
		return distance / minSpeed
	}
	return distance / speed
}

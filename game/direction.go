package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRotation is returned when a rotation is built from a value outside {-1, 0, 1}
var ErrInvalidRotation = errors.New("invalid rotation")

// Direction is an angle in radians kept in the range [-π, π]
type Direction float64

// NewDirection creates a direction from any angle, wrapping it into range
func NewDirection(angle float64) Direction {
	return Direction(wrapAngle(angle))
}

// DirectionFromVec returns the direction a vector points in
func DirectionFromVec(v Vec2) Direction {
	return Direction(math.Atan2(v.Y(), v.X()))
}

// wrapAngle folds an angle into [-π, π] by whole turns
func wrapAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	if angle > math.Pi || angle < -math.Pi {
		// Collapse large angles first so the loops below run at most once
		angle = math.Mod(angle, 2*math.Pi)
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Radians returns the angle value
func (d Direction) Radians() float64 {
	return float64(d)
}

// Degrees returns the angle in degrees
func (d Direction) Degrees() float64 {
	return float64(d) * 180 / math.Pi
}

// Set replaces the angle, wrapping it into range
func (d *Direction) Set(angle float64) {
	*d = NewDirection(angle)
}

// Add rotates the direction in place by delta radians
func (d *Direction) Add(delta float64) {
	*d = NewDirection(float64(*d) + delta)
}

// Plus returns the direction rotated by delta radians
func (d Direction) Plus(delta float64) Direction {
	return NewDirection(float64(d) + delta)
}

// Minus returns the wrapped difference d - other
func (d Direction) Minus(other Direction) Direction {
	return NewDirection(float64(d) - float64(other))
}

// Vec returns the unit vector for the direction
func (d Direction) Vec() Vec2 {
	return Vec2{math.Cos(float64(d)), math.Sin(float64(d))}
}

func (d Direction) String() string {
	return fmt.Sprintf("%.2f°", d.Degrees())
}

// Rotation is a discrete turning command
type Rotation int

const (
	// RotateLeft turns toward negative angles
	RotateLeft Rotation = -1
	// RotateNone keeps the current heading
	RotateNone Rotation = 0
	// RotateRight turns toward positive angles
	RotateRight Rotation = 1
)

// Sign returns the multiplier applied to a rotate speed
func (r Rotation) Sign() float64 {
	return float64(r)
}

func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "none"
	}
}

// RotationFromInt converts -1, 0 or 1 into a Rotation
func RotationFromInt(v int) (Rotation, error) {
	switch v {
	case -1:
		return RotateLeft, nil
	case 0:
		return RotateNone, nil
	case 1:
		return RotateRight, nil
	}
	return RotateNone, fmt.Errorf("%w: %d", ErrInvalidRotation, v)
}

// RotationFromFloat converts -1.0, 0.0 or 1.0 into a Rotation
func RotationFromFloat(v float64) (Rotation, error) {
	switch v {
	case -1:
		return RotateLeft, nil
	case 0:
		return RotateNone, nil
	case 1:
		return RotateRight, nil
	}
	return RotateNone, fmt.Errorf("%w: %v", ErrInvalidRotation, v)
}

// MustRotation is RotationFromInt for values known at construction time
func MustRotation(v int) Rotation {
	r, err := RotationFromInt(v)
	if err != nil {
		panic(err)
	}
	return r
}

// RotationFromBool builds a rotation from a "no turn" flag and a side
func RotationFromBool(isNone, isRight bool) Rotation {
	switch {
	case isNone:
		return RotateNone
	case isRight:
		return RotateRight
	default:
		return RotateLeft
	}
}

// ShortestRotation picks the turn that reaches target from current over the smaller arc.
// Differences smaller than epsilon report RotateNone.
func ShortestRotation(current, target Direction, epsilon float64) Rotation {
	diff := wrapAngle(float64(target) - float64(current))
	if math.Abs(diff) < epsilon {
		return RotateNone
	}
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	if diff > 0 {
		return RotateRight
	}
	return RotateLeft
}

package trigo

import "math"

// Conversion factors, one per ordered pair of units. Conversions are peer to
// peer instead of routed through a shared reference unit, so each conversion
// applies a single correctly rounded factor at the angle's own precision.
const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func (degrees) radiansScale() float64 { return degToRad }
func (degrees) degreesScale() float64 { return 1 }

func (radians) radiansScale() float64 { return 1 }
func (radians) degreesScale() float64 { return radToDeg }

// Radians returns the angle converted to radians at the same precision.
// Converting a radians value is the identity and preserves the payload.
func (a Angle[T, U]) Radians() Radians[T] {
	var u U
	return Radians[T]{val: a.val * T(u.radiansScale())}
}

// Degrees returns the angle converted to degrees at the same precision.
// Converting a degrees value is the identity and preserves the payload.
func (a Angle[T, U]) Degrees() Degrees[T] {
	var u U
	return Degrees[T]{val: a.val * T(u.degreesScale())}
}

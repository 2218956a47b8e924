package trigo

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Float constrains the numeric payload of an Angle.
type Float interface {
	constraints.Float
}

// Unit is the set of angle unit tags. A tag is a zero-size marker that only
// participates in the type: it makes Degrees[T] and Radians[T] distinct types
// while both share the Angle implementation.
//
// Every unit authors its scale towards every other unit. A tag that is
// missing one of these methods does not satisfy Unit, so unit-generic code
// over an incomplete unit does not compile.
type Unit interface {
	degrees | radians

	radiansScale() float64
	degreesScale() float64
	suffix() string
}

type degrees struct{}

type radians struct{}

// Angle is an angle value tagged with its unit. The payload is a single
// floating-point value of type T; the unit tag U carries no runtime state,
// an Angle is exactly the size of its payload.
//
// The zero value is the zero angle.
type Angle[T Float, U Unit] struct {
	val T
}

// Degrees is an angle measured in degrees.
type Degrees[T Float] = Angle[T, degrees]

// Radians is an angle measured in radians.
type Radians[T Float] = Angle[T, radians]

type Degrees32 = Degrees[float32]
type Degrees64 = Degrees[float64]

type Radians32 = Radians[float32]
type Radians64 = Radians[float64]

// DegreesOf returns the angle of v degrees.
func DegreesOf[T Float](v T) Degrees[T] {
	return Degrees[T]{val: v}
}

// RadiansOf returns the angle of v radians.
func RadiansOf[T Float](v T) Radians[T] {
	return Radians[T]{val: v}
}

// Deg is shorthand for DegreesOf.
func Deg[T Float](v T) Degrees[T] {
	return DegreesOf(v)
}

// Rad is shorthand for RadiansOf.
func Rad[T Float](v T) Radians[T] {
	return RadiansOf(v)
}

// Value returns the numeric payload without the unit.
func (a Angle[T, U]) Value() T {
	return a.val
}

// Neg returns the angle with the sign of the payload flipped.
func (a Angle[T, U]) Neg() Angle[T, U] {
	return Angle[T, U]{val: -a.val}
}

// Add returns the sum of two angles of the same unit.
func (a Angle[T, U]) Add(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{val: a.val + b.val}
}

// Sub returns the difference of two angles of the same unit.
func (a Angle[T, U]) Sub(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{val: a.val - b.val}
}

// Mul returns the angle scaled by a bare scalar.
func (a Angle[T, U]) Mul(t T) Angle[T, U] {
	return Angle[T, U]{val: a.val * t}
}

// Div returns the angle divided by a bare scalar.
func (a Angle[T, U]) Div(t T) Angle[T, U] {
	return Angle[T, U]{val: a.val / t}
}

// Compare orders two angles of the same unit by payload. It returns -1 if a
// is less than b, 0 if the payloads are equal and +1 if a is greater than b.
// A NaN payload is considered less than any other value and equal to itself,
// following cmp.Compare.
func (a Angle[T, U]) Compare(b Angle[T, U]) int {
	return cmp.Compare(a.val, b.val)
}

package trigo

import "math"

// Sin returns the sine of the angle. The angle may be in any unit, it is
// converted to radians before the computation.
func (a Angle[T, U]) Sin() T {
	return T(math.Sin(float64(a.Radians().val)))
}

// Cos returns the cosine of the angle.
func (a Angle[T, U]) Cos() T {
	return T(math.Cos(float64(a.Radians().val)))
}

// Tan returns the tangent of the angle.
func (a Angle[T, U]) Tan() T {
	return T(math.Tan(float64(a.Radians().val)))
}

// Sincos returns the sine and cosine of the angle in a single call.
func (a Angle[T, U]) Sincos() (sin, cos T) {
	s, c := math.Sincos(float64(a.Radians().val))
	return T(s), T(c)
}

// Asin returns the arc sine of x as an angle in radians.
func Asin[T Float](x T) Radians[T] {
	return Radians[T]{val: T(math.Asin(float64(x)))}
}

// Acos returns the arc cosine of x as an angle in radians.
func Acos[T Float](x T) Radians[T] {
	return Radians[T]{val: T(math.Acos(float64(x)))}
}

// Atan returns the arc tangent of x as an angle in radians.
func Atan[T Float](x T) Radians[T] {
	return Radians[T]{val: T(math.Atan(float64(x)))}
}

// Atan2 returns the arc tangent of y/x as an angle in radians, using the
// signs of both arguments to pick the quadrant. Special cases, including the
// signs of zero and infinite arguments, follow math.Atan2.
func Atan2[T Float](y, x T) Radians[T] {
	return Radians[T]{val: T(math.Atan2(float64(y), float64(x)))}
}

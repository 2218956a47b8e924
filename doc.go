// Package trigo provides unit-safe planar angle values.
//
// An angle is a floating-point payload tagged with its unit at the type
// level: Degrees and Radians share one generic implementation but are
// distinct types, so code cannot accidentally mix units. Arithmetic is only
// defined between values of the same unit and precision, and crossing units
// always goes through an explicit conversion.
//
// The trigonometric functions accept an angle in any unit and compute in
// radians; the inverse functions always return radians.
package trigo

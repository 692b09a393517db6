// Package convert maps quantities between external units of measurement and
// the equivalent internal representation. The internal units of measurement
// are always, and exclusively, SI.
//
// Example: convert a permeability of 5 millidarcies to m²:
//
//	convert.From(5.0, prefix.Milli*unit.Darcy)
//
// and a pressure in Pascal back to psi:
//
//	convert.To(p, unit.Psia)
package convert

import "github.com/porousflow/simunits/pkg/unit"

// From converts a quantity expressed in the external unit u (where u is the
// SI value of one such unit, e.g. unit.Barsa) to the internal SI
// representation.
func From[T unit.Number](q, u T) T {
	return q * u
}

// To converts an SI-normalized quantity back to units of u. It is the
// inverse of From; with u == 0 the result follows IEEE 754 division
// semantics (±Inf or NaN) rather than being guarded.
func To[T unit.Number](q, u T) T {
	return q / u
}

// FromSlice converts every element of q from the external unit u to SI,
// in place, and returns q for convenience.
func FromSlice[T unit.Number](q []T, u T) []T {
	for i := range q {
		q[i] = From(q[i], u)
	}
	return q
}

// ToSlice converts every element of q from SI back to units of u, in place,
// and returns q for convenience.
func ToSlice[T unit.Number](q []T, u T) []T {
	for i := range q {
		q[i] = To(q[i], u)
	}
	return q
}

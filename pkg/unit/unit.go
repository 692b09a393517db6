// Package unit defines the unit constants used for converting quantities
// between external units of measurement and the internal representation.
// The internal units of measurement are always, and exclusively, SI: any
// quantity held by the simulator is in meters, seconds, kilograms and their
// products, and each constant below is the SI value of one external unit.
//
// The values are initialized as a chain: every derived constant is computed
// from the already-rounded float64 values of its predecessors, so the exact
// bit patterns are stable and independent of how a textbook would regroup
// the arithmetic.
package unit

import "github.com/porousflow/simunits/pkg/prefix"

// Number is satisfied by the built-in numeric types that the unit helpers
// and conversion functions operate on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Square returns v*v.
func Square[T Number](v T) T {
	return v * v
}

// Cubic returns v*v*v.
func Cubic[T Number](v T) T {
	return v * v * v
}

// Basic (fundamental) units.
var (
	// Length.
	Meter float64 = 1
	Inch          = 2.54 * prefix.Centi * Meter
	Feet          = 12 * Inch

	// Time.
	Second float64 = 1
	Minute         = 60 * Second
	Hour           = 60 * Minute
	Day            = 24 * Hour
	Year           = 365 * Day

	// Mass. Pound is the avoirdupois pound.
	Kilogram float64 = 1
	Pound            = 0.45359237 * Kilogram
)

// Gravity is the standard acceleration of free fall.
var Gravity = 9.80665 * Meter / Square(Second)

// Derived units.
var (
	// Force.
	Newton = Kilogram * Meter / Square(Second) // == 1
	Lbf    = Pound * Gravity                   // pound-force

	// Pressure.
	Pascal = Newton / Square(Meter) // == 1
	Barsa  = 100000 * Pascal
	Atm    = 101325 * Pascal
	Psia   = Lbf / Square(Inch)

	// Viscosity.
	Pas   = Pascal * Second // == 1
	Poise = prefix.Deci * Pas
)

// A porous medium with a permeability of 1 darcy permits a flow (flux) of
// 1 cm³/s of a fluid with viscosity 1 cP (1 mPa·s) under a pressure
// gradient of 1 atm/cm acting across an area of 1 cm².
var (
	pGrad    = Atm / (prefix.Centi * Meter)
	area     = Square(prefix.Centi * Meter)
	flux     = Cubic(prefix.Centi*Meter) / Second
	velocity = flux / area
	visc     = prefix.Centi * Poise

	// Darcy == 1e-7 [m²] / 101325
	//       == 9.869232667160130e-13 [m²]
	Darcy = (velocity * visc) / pGrad
)

// Package prefix defines the metric prefix multipliers applied to base units
// to form scaled units, e.g. prefix.Milli*unit.Darcy for millidarcies.
package prefix

// The constants are typed so that arithmetic mixing them with unit values
// rounds to float64 at every operation, keeping derived unit values on the
// same bit patterns as a step-by-step evaluation.
const (
	// Micro is the SI prefix for one millionth.
	Micro float64 = 1.0e-6

	// Milli is the SI prefix for one thousandth.
	Milli float64 = 1.0e-3

	// Centi is the SI prefix for one hundredth.
	Centi float64 = 1.0e-2

	// Deci is the SI prefix for one tenth.
	Deci float64 = 1.0e-1

	// Kilo is the SI prefix for one thousand.
	Kilo float64 = 1.0e3

	// Mega is the SI prefix for one million.
	Mega float64 = 1.0e6

	// Giga is the SI prefix for one billion.
	Giga float64 = 1.0e9
)

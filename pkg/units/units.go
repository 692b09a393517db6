// Package units carries the older well-index unit factors that predate the
// SI table in pkg/unit. The two tables overlap but are not interchangeable:
// the values here are the historical approximations (note Feet here differs
// from unit.Feet in its trailing digits), and consuming code depends on
// these exact numbers. They are kept verbatim and must not be rederived
// from pkg/unit.
package units

const (
	MilliDarcy    float64 = 9.86923e-16
	ViscosityUnit float64 = 1e-3
	Days2Seconds  float64 = 86400
	Feet          float64 = 0.30479999798832

	// WellIndexUnit converts well productivity indices into SI.
	WellIndexUnit = ViscosityUnit / (Days2Seconds * 1e5)
)

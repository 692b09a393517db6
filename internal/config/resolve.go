package config

import (
	"fmt"
	"strings"

	"github.com/porousflow/simunits/pkg/prefix"
	"github.com/porousflow/simunits/pkg/unit"
	"github.com/porousflow/simunits/pkg/units"
)

// UnitNames lists every unit name the configuration format accepts, in a
// stable order, with the SI value of one such unit. The vocabulary is a
// fixed decoding table for config files and the HTTP API; the unit packages
// themselves expose no name lookup.
func UnitNames() []NamedUnit {
	return []NamedUnit{
		{Name: "meter", Quantity: "length", SI: unit.Meter},
		{Name: "inch", Quantity: "length", SI: unit.Inch},
		{Name: "feet", Quantity: "length", SI: unit.Feet},
		{Name: "second", Quantity: "time", SI: unit.Second},
		{Name: "minute", Quantity: "time", SI: unit.Minute},
		{Name: "hour", Quantity: "time", SI: unit.Hour},
		{Name: "day", Quantity: "time", SI: unit.Day},
		{Name: "year", Quantity: "time", SI: unit.Year},
		{Name: "kilogram", Quantity: "mass", SI: unit.Kilogram},
		{Name: "pound", Quantity: "mass", SI: unit.Pound},
		{Name: "newton", Quantity: "force", SI: unit.Newton},
		{Name: "lbf", Quantity: "force", SI: unit.Lbf},
		{Name: "pascal", Quantity: "pressure", SI: unit.Pascal},
		{Name: "barsa", Quantity: "pressure", SI: unit.Barsa},
		{Name: "atm", Quantity: "pressure", SI: unit.Atm},
		{Name: "psia", Quantity: "pressure", SI: unit.Psia},
		{Name: "pas", Quantity: "viscosity", SI: unit.Pas},
		{Name: "poise", Quantity: "viscosity", SI: unit.Poise},
		{Name: "centipoise", Quantity: "viscosity", SI: prefix.Centi * unit.Poise},
		{Name: "darcy", Quantity: "permeability", SI: unit.Darcy},
		{Name: "millidarcy", Quantity: "permeability", SI: prefix.Milli * unit.Darcy},
		{Name: "well-index", Quantity: "well index", SI: units.WellIndexUnit},
	}
}

// NamedUnit pairs a config-file unit name with the SI value of one such unit.
type NamedUnit struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	SI       float64 `json:"si"`
}

// ResolveUnit maps a unit name from the configuration to its SI value.
// Matching is case-insensitive and also accepts the common short forms
// (m, ft, s, kg, lb, pa, psi, cp, md).
func ResolveUnit(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "meter", "metre", "m":
		return unit.Meter, nil
	case "inch", "in":
		return unit.Inch, nil
	case "feet", "foot", "ft":
		return unit.Feet, nil
	case "second", "s":
		return unit.Second, nil
	case "minute", "min":
		return unit.Minute, nil
	case "hour", "h":
		return unit.Hour, nil
	case "day", "d":
		return unit.Day, nil
	case "year":
		return unit.Year, nil
	case "kilogram", "kg":
		return unit.Kilogram, nil
	case "pound", "lb":
		return unit.Pound, nil
	case "newton", "n":
		return unit.Newton, nil
	case "lbf":
		return unit.Lbf, nil
	case "pascal", "pa":
		return unit.Pascal, nil
	case "barsa":
		return unit.Barsa, nil
	case "atm":
		return unit.Atm, nil
	case "psia", "psi":
		return unit.Psia, nil
	case "pas":
		return unit.Pas, nil
	case "poise":
		return unit.Poise, nil
	case "centipoise", "cp":
		return prefix.Centi * unit.Poise, nil
	case "darcy":
		return unit.Darcy, nil
	case "millidarcy", "md":
		return prefix.Milli * unit.Darcy, nil
	case "well-index":
		return units.WellIndexUnit, nil
	case "":
		return 0, fmt.Errorf("no unit given")
	default:
		return 0, fmt.Errorf("unknown unit '%s'", name)
	}
}

package units

import (
	"testing"

	"github.com/porousflow/simunits/pkg/unit"
)

// The well-index table is a set of literal historical values; equality is
// exact, no tolerance applies.
func TestHistoricalValues(t *testing.T) {
	if MilliDarcy != 9.86923e-16 {
		t.Errorf("MilliDarcy = %v, want 9.86923e-16", MilliDarcy)
	}
	if ViscosityUnit != 1e-3 {
		t.Errorf("ViscosityUnit = %v, want 1e-3", ViscosityUnit)
	}
	if Days2Seconds != 86400 {
		t.Errorf("Days2Seconds = %v, want 86400", Days2Seconds)
	}
	if Feet != 0.30479999798832 {
		t.Errorf("Feet = %v, want 0.30479999798832", Feet)
	}
}

func TestWellIndexUnitFormula(t *testing.T) {
	if WellIndexUnit != ViscosityUnit/(Days2Seconds*1e5) {
		t.Errorf("WellIndexUnit = %v, want ViscosityUnit/(Days2Seconds*1e5) = %v",
			WellIndexUnit, ViscosityUnit/(Days2Seconds*1e5))
	}
}

// The two tables deliberately disagree: consumers pick one by import path
// and must never treat the values as interchangeable.
func TestTablesAreDistinct(t *testing.T) {
	if Feet == unit.Feet {
		t.Errorf("units.Feet (%v) must differ from unit.Feet (%v)", Feet, unit.Feet)
	}
	if MilliDarcy == unit.Darcy*1e-3 {
		t.Errorf("units.MilliDarcy (%v) must differ from the derived millidarcy (%v)",
			MilliDarcy, unit.Darcy*1e-3)
	}
}

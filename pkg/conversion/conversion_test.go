package conversion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/porousflow/simunits/internal/config"
	"github.com/porousflow/simunits/pkg/prefix"
	"github.com/porousflow/simunits/pkg/unit"
	"go.uber.org/zap"
)

func TestRunConvertsInBothDirections(t *testing.T) {
	conf := config.Configuration{Jobs: []config.Job{
		{
			Name:      "permx",
			Quantity:  "permeability",
			Unit:      "millidarcy",
			Direction: "from",
			Values:    []float64{100, 250},
		},
		{
			Name:      "bhp",
			Quantity:  "pressure",
			Unit:      "barsa",
			Direction: "to",
			Values:    []float64{2.0e7},
		},
	}}

	results, err := Run(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, want 2", len(results))
	}

	wantPermx := []float64{100 * prefix.Milli * unit.Darcy, 250 * prefix.Milli * unit.Darcy}
	if diff := cmp.Diff(wantPermx, results[0].Output, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("permx output mismatch (-want +got):\n%s", diff)
	}
	// Inputs are left untouched.
	if diff := cmp.Diff([]float64{100, 250}, results[0].Input); diff != "" {
		t.Errorf("permx input was modified (-want +got):\n%s", diff)
	}

	wantBhp := []float64{200}
	if diff := cmp.Diff(wantBhp, results[1].Output, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("bhp output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDefaultsDirectionToFrom(t *testing.T) {
	conf := config.Configuration{Jobs: []config.Job{
		{Name: "depth", Unit: "feet", Values: []float64{1000}},
	}}

	results, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if results[0].Direction != "from" {
		t.Errorf("direction = %q, want \"from\"", results[0].Direction)
	}
	if diff := cmp.Diff([]float64{304.8}, results[0].Output, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("depth output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNamesAnonymousJobs(t *testing.T) {
	conf := config.Configuration{Jobs: []config.Job{
		{Unit: "meter", Values: []float64{1}},
	}}

	results, err := Run(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if results[0].Name != "job 1" {
		t.Errorf("name = %q, want \"job 1\"", results[0].Name)
	}
}

func TestRunFailsOnUnknownUnit(t *testing.T) {
	conf := config.Configuration{Jobs: []config.Job{
		{Name: "permx", Unit: "furlong", Values: []float64{1}},
	}}

	if _, err := Run(zap.NewNop(), conf); err == nil {
		t.Fatal("Run() should fail for an unknown unit")
	}
}

func TestRunFailsOnUnknownDirection(t *testing.T) {
	conf := config.Configuration{Jobs: []config.Job{
		{Name: "permx", Unit: "darcy", Direction: "sideways", Values: []float64{1}},
	}}

	if _, err := Run(zap.NewNop(), conf); err == nil {
		t.Fatal("Run() should fail for an unknown direction")
	}
}

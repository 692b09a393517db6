// Package conversion executes configured conversion jobs against the unit
// tables and collects the results.
package conversion

import (
	"fmt"

	"github.com/porousflow/simunits/internal/config"
	"github.com/porousflow/simunits/pkg/constants"
	"github.com/porousflow/simunits/pkg/unit/convert"
	"go.uber.org/zap"
)

// Result holds the converted values for one job.
type Result struct {
	Name      string
	Quantity  string
	Unit      string
	Direction string
	Input     []float64
	Output    []float64
}

// Run executes every job in the configuration. Direction "from" scales the
// input values from the job's unit into SI; "to" scales SI input back into
// the job's unit. An unresolvable unit or direction fails the run.
func Run(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Result
	for i, job := range conf.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job %d", i+1)
		}

		factor, err := config.ResolveUnit(job.Unit)
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}

		direction := job.Direction
		if direction == "" {
			direction = constants.DirectionFrom
		}

		output := make([]float64, len(job.Values))
		copy(output, job.Values)

		switch direction {
		case constants.DirectionFrom:
			convert.FromSlice(output, factor)
		case constants.DirectionTo:
			convert.ToSlice(output, factor)
		default:
			return results, fmt.Errorf("%s: unknown direction '%s'", name, job.Direction)
		}

		logger.Debug(fmt.Sprintf("converted %d values for %s", len(output), name),
			zap.String("op", "conversion.Run"),
			zap.String("unit", job.Unit),
			zap.String("direction", direction),
			zap.Float64("factor", factor),
		)

		results = append(results, Result{
			Name:      name,
			Quantity:  job.Quantity,
			Unit:      job.Unit,
			Direction: direction,
			Input:     job.Values,
			Output:    output,
		})
	}

	return results, nil
}

// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/porousflow/simunits/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s' (expected '%s' or '%s')",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

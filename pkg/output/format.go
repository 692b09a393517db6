// Package output provides utilities for formatting and displaying conversion results.
package output

import (
	"fmt"
	"strings"

	"github.com/porousflow/simunits/pkg/constants"
	"github.com/porousflow/simunits/pkg/conversion"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []conversion.Result) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for %s ---\n", describe(result))
		fmt.Printf("Input            | Output\n")
		fmt.Printf("_____            | ______\n")
		for i, in := range result.Input {
			_, _ = p.Printf("%-16.6g | %.10g\n", in, result.Output[i])
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []conversion.Result) {
	fmt.Printf(`"job","quantity","unit","direction","input","output"`)
	fmt.Printf("\n")
	for _, result := range results {
		for i, in := range result.Input {
			fmt.Printf(`"%s","%s","%s","%s","%g","%.10g"`,
				result.Name, result.Quantity, result.Unit, result.Direction, in, result.Output[i])
			fmt.Printf("\n")
		}
	}
}

func describe(result conversion.Result) string {
	parts := []string{result.Name}
	if result.Quantity != "" {
		parts = append(parts, result.Quantity)
	}
	if result.Direction == constants.DirectionTo {
		parts = append(parts, fmt.Sprintf("SI to %s", result.Unit))
	} else {
		parts = append(parts, fmt.Sprintf("%s to SI", result.Unit))
	}
	return strings.Join(parts, ", ")
}

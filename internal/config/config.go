// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/porousflow/simunits/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for unit-convert.
type Configuration struct {
	Jobs    []Job
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Job describes one batch of values to convert. Direction "from" scales the
// values from the named unit into SI; "to" scales SI values back into the
// named unit.
type Job struct {
	Name      string
	Quantity  string // informational label, e.g. "permeability"
	Unit      string
	Direction string
	Values    []float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the loaded configuration and returns
// human-readable warnings for anything suspicious. Warnings do not stop the
// run; jobs that cannot be executed are reported again as errors when run.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Jobs) == 0 {
		warnings = append(warnings, "configuration contains no conversion jobs")
	}

	seen := make(map[string]bool)
	for i, job := range conf.Jobs {
		label := job.Name
		if label == "" {
			label = fmt.Sprintf("job %d", i+1)
			warnings = append(warnings, fmt.Sprintf("%s has no name", label))
		}

		if seen[job.Name] && job.Name != "" {
			warnings = append(warnings, fmt.Sprintf("duplicate job name '%s'", job.Name))
		}
		seen[job.Name] = true

		if len(job.Values) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s has no values to convert", label))
		}

		switch job.Direction {
		case constants.DirectionFrom, constants.DirectionTo:
		case "":
			warnings = append(warnings, fmt.Sprintf("%s has no direction; assuming '%s'", label, constants.DirectionFrom))
		default:
			warnings = append(warnings, fmt.Sprintf("%s has unknown direction '%s' (expected '%s' or '%s')",
				label, job.Direction, constants.DirectionFrom, constants.DirectionTo))
		}

		if _, err := ResolveUnit(job.Unit); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", label, err))
		}
	}

	return warnings
}

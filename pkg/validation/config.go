// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/fuel"
)

// ValidateTrialCount checks that the number of configured trials is within
// the supported range.
func ValidateTrialCount(n int) error {
	if n < constants.MinTrials || n > constants.MaxTrials {
		return fmt.Errorf("expected between %d and %d trials, got %d", constants.MinTrials, constants.MaxTrials, n)
	}
	return nil
}

// ValidateRate checks that a price or rate is a finite non-negative number.
func ValidateRate(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number, got %v", name, value)
	}
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %v", name, value)
	}
	return nil
}

// ValidateMachine warns when the configured machine has no consumption data.
func ValidateMachine(name string) string {
	if fuel.ParseMachineType(name).Known() {
		return ""
	}
	return fmt.Sprintf("Machine '%s' is not recognised - fuel cost and emissions will be reported as zero", name)
}

// TrialConfig is the subset of a trial needed for validation.
type TrialConfig struct {
	Pressure    float64
	TargetDepth float64
}

// ValidateTrials returns a warning for every trial that will be skipped.
func ValidateTrials(trials []TrialConfig) []string {
	var warnings []string
	for i, t := range trials {
		if t.Pressure <= 0 || t.TargetDepth <= 0 {
			warnings = append(warnings, fmt.Sprintf("Trial %d will be skipped: pressure and target depth must be greater than zero (pressure %v, depth %v)",
				i+1, t.Pressure, t.TargetDepth))
		}
	}
	return warnings
}

// ConfigValidator validates a whole run configuration.
type ConfigValidator struct {
	Machine           string
	HourlyCostRate    float64
	FuelPricePerLiter float64
	Trials            []TrialConfig
}

// ValidateAll returns the first hard error, if any, and every warning.
func (cv *ConfigValidator) ValidateAll() ([]string, error) {
	if err := ValidateTrialCount(len(cv.Trials)); err != nil {
		return nil, err
	}
	if err := ValidateRate("hourlyCostRate", cv.HourlyCostRate); err != nil {
		return nil, err
	}
	if err := ValidateRate("fuelPricePerLiter", cv.FuelPricePerLiter); err != nil {
		return nil, err
	}

	var warnings []string
	if warning := ValidateMachine(cv.Machine); warning != "" {
		warnings = append(warnings, warning)
	}
	warnings = append(warnings, ValidateTrials(cv.Trials)...)
	return warnings, nil
}

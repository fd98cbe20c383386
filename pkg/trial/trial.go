// Package trial evaluates a single drilling trial into speed, duration, cost,
// drilled distance, fuel use and difficulty.
package trial

import (
	"github.com/iwvelando/drill-cost/pkg/classify"
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/fuel"
	"github.com/iwvelando/drill-cost/pkg/mathutil"
)

// Input is one measured drilling attempt.
type Input struct {
	Pressure    float64 `json:"pressure"`    // bar
	TargetDepth float64 `json:"targetDepth"` // m
}

// Valid reports whether the trial can be evaluated.
func (in Input) Valid() bool {
	return in.Pressure > 0 && in.TargetDepth > 0
}

// EngineConfig holds the run-wide parameters shared by every trial.
type EngineConfig struct {
	Machine           fuel.MachineType
	HourlyCostRate    float64 // currency per hour
	FuelPricePerLiter float64 // currency per liter
	K                 float64 // m per bar per minute; zero means constants.EfficiencyConstant
}

// NewEngineConfig returns a config with the standard efficiency constant.
func NewEngineConfig(machine fuel.MachineType, hourlyCostRate, fuelPricePerLiter float64) EngineConfig {
	return EngineConfig{
		Machine:           machine,
		HourlyCostRate:    hourlyCostRate,
		FuelPricePerLiter: fuelPricePerLiter,
		K:                 constants.EfficiencyConstant,
	}
}

func (c EngineConfig) k() float64 {
	if c.K == 0 {
		return constants.EfficiencyConstant
	}
	return c.K
}

// Result is the evaluation of one valid trial.
type Result struct {
	Index           int           `json:"index"`
	Pressure        float64       `json:"pressure"`
	TargetDepth     float64       `json:"targetDepth"`
	Speed           float64       `json:"speed"`
	DurationMinutes float64       `json:"durationMinutes"`
	DurationHours   float64       `json:"durationHours"`
	OperationalCost float64       `json:"operationalCost"`
	TotalDrilled    float64       `json:"totalDrilled"`
	FuelLiters      float64       `json:"fuelLiters"`
	FuelCost        float64       `json:"fuelCost"`
	CO2Kg           float64       `json:"co2Kg"`
	Difficulty      classify.Tier `json:"difficulty"`
}

// Evaluate computes the result for one trial. The boolean is false when the
// trial is skipped: non-positive pressure or depth, or a zero drilling speed.
// Index is left at zero; EvaluateAll numbers the trials.
func Evaluate(in Input, cfg EngineConfig) (Result, bool) {
	if !in.Valid() {
		return Result{}, false
	}

	k := cfg.k()
	speed := k * in.Pressure
	if speed == 0 {
		return Result{}, false
	}

	minutes := in.TargetDepth / speed
	hours, leftover := mathutil.SplitHours(minutes)
	usage := fuel.Estimate(cfg.Machine, minutes, cfg.FuelPricePerLiter)

	return Result{
		Pressure:        in.Pressure,
		TargetDepth:     in.TargetDepth,
		Speed:           speed,
		DurationMinutes: minutes,
		DurationHours:   float64(hours) + float64(leftover)/constants.MinutesPerHour,
		OperationalCost: (minutes / constants.MinutesPerHour) * cfg.HourlyCostRate,
		// k is applied a second time here; reports depend on this figure.
		TotalDrilled: minutes * speed * k,
		FuelLiters:   usage.Liters,
		FuelCost:     usage.Cost,
		CO2Kg:        usage.CO2Kg,
		Difficulty:   classify.Difficulty(in.Pressure, in.TargetDepth),
	}, true
}

// EvaluateAll evaluates the trials in order and returns the valid results
// together with the number of skipped trials. Result.Index is the 1-based
// position of the trial in inputs.
func EvaluateAll(inputs []Input, cfg EngineConfig) ([]Result, int) {
	results := make([]Result, 0, len(inputs))
	skipped := 0
	for i, in := range inputs {
		result, ok := Evaluate(in, cfg)
		if !ok {
			skipped++
			continue
		}
		result.Index = i + 1
		results = append(results, result)
	}
	return results, skipped
}

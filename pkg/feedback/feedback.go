// Package feedback resolves qualitative bands for fuel efficiency, cost
// efficiency, environmental impact, overall performance and program usage.
package feedback

import (
	"encoding/json"
	"fmt"
)

// Band is a resolved qualitative rating.
type Band string

// Fuel efficiency bands (m per liter)
const (
	FuelExcellent Band = "EXCELLENT"
	FuelGood      Band = "GOOD"
	FuelFair      Band = "FAIR"
	FuelPoor      Band = "POOR"
)

// Cost efficiency bands (percent under target)
const (
	CostVeryEconomical Band = "VERY_ECONOMICAL"
	CostEconomical     Band = "ECONOMICAL"
	CostAcceptable     Band = "ACCEPTABLE"
	CostUneconomical   Band = "UNECONOMICAL"
)

// Environmental bands (total kg CO2)
const (
	EnvEcoFriendly    Band = "ECO_FRIENDLY"
	EnvFairlyFriendly Band = "FAIRLY_FRIENDLY"
	EnvNeedsAttention Band = "NEEDS_ATTENTION"
	EnvHigh           Band = "HIGH"
)

// Performance bands (score out of 100)
const (
	PerfExcellent        Band = "EXCELLENT"
	PerfSatisfactory     Band = "SATISFACTORY"
	PerfNeedsImprovement Band = "NEEDS_IMPROVEMENT"
)

// Usage bands (configured trial count)
const (
	UsageHigh Band = "HIGH_ENGAGEMENT"
	UsageGood Band = "GOOD_ENGAGEMENT"
	UsageLow  Band = "LOW_ENGAGEMENT"
)

// Feedback is a band with its display message.
type Feedback struct {
	Band    Band   `json:"band"`
	Message string `json:"message"`
}

// String returns the message.
func (f Feedback) String() string {
	return f.Message
}

type threshold struct {
	band    Band
	message string
	applies func(v float64) bool
}

func resolve(value float64, chain []threshold, fallback Feedback) Feedback {
	for _, t := range chain {
		if t.applies(value) {
			return Feedback{Band: t.band, Message: t.message}
		}
	}
	return fallback
}

func above(limit float64) func(float64) bool {
	return func(v float64) bool { return v > limit }
}

func atLeast(limit float64) func(float64) bool {
	return func(v float64) bool { return v >= limit }
}

func below(limit float64) func(float64) bool {
	return func(v float64) bool { return v < limit }
}

var fuelChain = []threshold{
	{FuelExcellent, "Fuel efficiency is excellent", above(5.0)},
	{FuelGood, "Fuel efficiency is within the optimal range", above(3.5)},
	{FuelFair, "Fuel efficiency needs improvement", above(2.0)},
}

// FuelEfficiency rates meters drilled per liter of fuel.
func FuelEfficiency(metersPerLiter float64) Feedback {
	return resolve(metersPerLiter, fuelChain, Feedback{
		Band:    FuelPoor,
		Message: "Fuel efficiency is not optimal, review the machine",
	})
}

var costChain = []threshold{
	{CostVeryEconomical, "Operational cost is very efficient", above(15)},
	{CostEconomical, "Operational cost is efficient", above(5)},
	{CostAcceptable, "Operational cost is within a reasonable range", above(0)},
}

// CostEfficiency rates the percentage by which actual cost undershoots the
// ideal target.
func CostEfficiency(percent float64) Feedback {
	return resolve(percent, costChain, Feedback{
		Band:    CostUneconomical,
		Message: "Operational cost exceeds the target",
	})
}

var envChain = []threshold{
	{EnvEcoFriendly, "Low CO2 emission", below(50)},
	{EnvFairlyFriendly, "CO2 emission within a reasonable range", below(150)},
	{EnvNeedsAttention, "CO2 emission is fairly high", below(300)},
}

// Environmental rates the total CO2 emission in kg.
func Environmental(totalCO2Kg float64) Feedback {
	return resolve(totalCO2Kg, envChain, Feedback{
		Band:    EnvHigh,
		Message: "CO2 emission is very high, a mitigation strategy is needed",
	})
}

var perfChain = []threshold{
	{PerfExcellent, "Project performance is very satisfying", atLeast(80)},
	{PerfSatisfactory, "Project performance meets expectations", atLeast(60)},
}

// Performance rates the overall performance score.
func Performance(score float64) Feedback {
	return resolve(score, perfChain, Feedback{
		Band:    PerfNeedsImprovement,
		Message: "Further optimisation is needed to improve performance",
	})
}

// Usage rates how many trials the operator configured.
func Usage(operator string, configuredTrials int) Feedback {
	switch {
	case configuredTrials >= 5:
		return Feedback{
			Band:    UsageHigh,
			Message: fmt.Sprintf("Great work %s! %d trials shows impressive commitment.", operator, configuredTrials),
		}
	case configuredTrials >= 3:
		return Feedback{
			Band:    UsageGood,
			Message: fmt.Sprintf("Good job %s! %d trials shows good thoroughness.", operator, configuredTrials),
		}
	default:
		return Feedback{
			Band:    UsageLow,
			Message: fmt.Sprintf("Tip for %s: run more trials for more accurate data.", operator),
		}
	}
}

// Optional is a feedback that may not apply to the run.
type Optional struct {
	Feedback
	Applicable bool
}

// MarshalJSON encodes an inapplicable feedback as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Applicable {
		return []byte("null"), nil
	}
	return json.Marshal(o.Feedback)
}

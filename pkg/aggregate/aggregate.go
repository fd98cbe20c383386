// Package aggregate folds per-trial results into portfolio totals, efficiency
// ratios, a performance score, qualitative feedback and a machine
// recommendation.
package aggregate

import (
	"errors"

	"github.com/iwvelando/drill-cost/pkg/classify"
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/feedback"
	"github.com/iwvelando/drill-cost/pkg/fuel"
	"github.com/iwvelando/drill-cost/pkg/mathutil"
	"github.com/iwvelando/drill-cost/pkg/trial"
)

// ErrEmptyInput is returned when there is no valid trial to aggregate.
var ErrEmptyInput = errors.New("no valid trials to aggregate")

// Options carries run context that is not part of the trial results.
type Options struct {
	// Operator is the display name used in usage feedback.
	Operator string
	// ConfiguredTrials is the number of trials the operator configured,
	// including skipped ones. Zero means len(results).
	ConfiguredTrials int
}

// Totals are plain sums over all valid trials.
type Totals struct {
	Cost            float64 `json:"cost"`
	Drilled         float64 `json:"drilled"`
	FuelLiters      float64 `json:"fuelLiters"`
	FuelCost        float64 `json:"fuelCost"`
	CO2Kg           float64 `json:"co2Kg"`
	IdealCostTarget float64 `json:"idealCostTarget"`
	Pressure        float64 `json:"pressure"`
	TargetDepth     float64 `json:"targetDepth"`
}

// Averages are per-trial means over all valid trials.
type Averages struct {
	Drilled     float64 `json:"drilled"`
	Pressure    float64 `json:"pressure"`
	TargetDepth float64 `json:"targetDepth"`
}

// Feedback groups the resolved bands for a run.
type Feedback struct {
	// Fuel is not applicable when nothing was drilled or no fuel was burned.
	Fuel        feedback.Optional `json:"fuel"`
	Cost        feedback.Feedback `json:"cost"`
	Environment feedback.Feedback `json:"environment"`
	Performance feedback.Feedback `json:"performance"`
	Usage       feedback.Feedback `json:"usage"`
}

// Summary is the aggregate result of one run.
type Summary struct {
	Trials             int              `json:"trials"`
	Totals             Totals           `json:"totals"`
	Averages           Averages         `json:"averages"`
	FuelEfficiency     float64          `json:"fuelEfficiency"`
	CostEfficiency     float64          `json:"costEfficiency"`
	DominantTier       classify.Tier    `json:"dominantTier"`
	RecommendedMachine fuel.MachineType `json:"recommendedMachine"`
	Score              Score            `json:"score"`
	Feedback           Feedback         `json:"feedback"`
}

// Aggregate computes the Summary for results, which must be the valid trials
// of a run in input order. It returns ErrEmptyInput for an empty slice.
func Aggregate(results []trial.Result, opts Options) (*Summary, error) {
	if len(results) == 0 {
		return nil, ErrEmptyInput
	}

	totals := Sum(results)
	n := float64(len(results))
	averages := Averages{
		Drilled:     totals.Drilled / n,
		Pressure:    totals.Pressure / n,
		TargetDepth: totals.TargetDepth / n,
	}

	fuelEfficiency := FuelEfficiency(totals.Drilled, totals.FuelLiters)
	costEfficiency := CostEfficiency(totals.Cost, totals.IdealCostTarget)
	score := ScoreFor(fuelEfficiency, costEfficiency, totals.Drilled)

	// The dominant tier re-runs the classifier on the averages. The average
	// drilled distance, not the average target depth, stands in for depth.
	tier := classify.Difficulty(averages.Pressure, averages.Drilled)

	configured := opts.ConfiguredTrials
	if configured <= 0 {
		configured = len(results)
	}

	return &Summary{
		Trials:             len(results),
		Totals:             totals,
		Averages:           averages,
		FuelEfficiency:     fuelEfficiency,
		CostEfficiency:     costEfficiency,
		DominantTier:       tier,
		RecommendedMachine: classify.Recommend(averages.Drilled, tier),
		Score:              score,
		Feedback: Feedback{
			Fuel: feedback.Optional{
				Feedback:   feedback.FuelEfficiency(fuelEfficiency),
				Applicable: totals.Drilled > 0 && totals.FuelLiters > 0,
			},
			Cost:        feedback.CostEfficiency(costEfficiency),
			Environment: feedback.Environmental(totals.CO2Kg),
			Performance: feedback.Performance(score.Overall),
			Usage:       feedback.Usage(opts.Operator, configured),
		},
	}, nil
}

// Sum folds the results into Totals in order.
func Sum(results []trial.Result) Totals {
	var totals Totals
	for _, r := range results {
		totals.Cost += r.OperationalCost
		totals.Drilled += r.TotalDrilled
		totals.FuelLiters += r.FuelLiters
		totals.FuelCost += r.FuelCost
		totals.CO2Kg += r.CO2Kg
		totals.IdealCostTarget += r.OperationalCost * constants.IdealCostRatio
		totals.Pressure += r.Pressure
		totals.TargetDepth += r.TargetDepth
	}
	return totals
}

// FuelEfficiency returns meters drilled per liter, or 0 unless both totals
// are positive.
func FuelEfficiency(totalDrilled, totalFuelLiters float64) float64 {
	return mathutil.Ratio(totalDrilled, totalFuelLiters)
}

// CostEfficiency returns the percentage by which actual undershoots target.
// It is negative when actual exceeds target and 0 when target is not
// positive.
func CostEfficiency(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return mathutil.CalculatePercentage(target-actual, target)
}

// Package optimization re-evaluates a drilling run under every known machine
// type so the configured machine can be compared against the alternatives.
package optimization

import (
	"fmt"
	"sort"

	"github.com/iwvelando/drill-cost/pkg/aggregate"
	"github.com/iwvelando/drill-cost/pkg/fuel"
	"github.com/iwvelando/drill-cost/pkg/trial"
)

// Summary captures the outcome of the run for a single machine.
type Summary struct {
	Rank           int              `json:"rank"`
	Machine        fuel.MachineType `json:"machine"`
	Configured     bool             `json:"configured"`
	FuelLiters     float64          `json:"fuelLiters"`
	FuelCost       float64          `json:"fuelCost"`
	CO2Kg          float64          `json:"co2Kg"`
	FuelEfficiency float64          `json:"fuelEfficiency"`
	Score          float64          `json:"score"`
	// FuelCostDelta is the fuel cost difference against the configured
	// machine; negative values are savings.
	FuelCostDelta float64  `json:"fuelCostDelta"`
	Notes         []string `json:"notes,omitempty"`
}

// CompareMachines evaluates inputs once per entry of fuel.MachineTypes using
// base for every other parameter. Results are ranked by overall score, ties
// broken by lower fuel cost and then by fuel.MachineTypes order. It returns
// an error wrapping aggregate.ErrEmptyInput when no input is valid.
func CompareMachines(inputs []trial.Input, base trial.EngineConfig) ([]Summary, error) {
	summaries := make([]Summary, 0, len(fuel.MachineTypes))
	var configuredCost float64

	for _, m := range fuel.MachineTypes {
		cfg := base
		cfg.Machine = m

		results, _ := trial.EvaluateAll(inputs, cfg)
		summary, err := aggregate.Aggregate(results, aggregate.Options{ConfiguredTrials: len(inputs)})
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", m, err)
		}

		s := Summary{
			Machine:        m,
			Configured:     m == base.Machine,
			FuelLiters:     summary.Totals.FuelLiters,
			FuelCost:       summary.Totals.FuelCost,
			CO2Kg:          summary.Totals.CO2Kg,
			FuelEfficiency: summary.FuelEfficiency,
			Score:          summary.Score.Overall,
		}
		if summary.RecommendedMachine == m {
			s.Notes = append(s.Notes, "recommended for the average depth and difficulty of this run")
		}
		if s.Configured {
			configuredCost = s.FuelCost
		}
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Score != summaries[j].Score {
			return summaries[i].Score > summaries[j].Score
		}
		return summaries[i].FuelCost < summaries[j].FuelCost
	})

	// An unknown configured machine has no fuel cost, so deltas are against
	// zero in that case.
	for i := range summaries {
		summaries[i].Rank = i + 1
		summaries[i].FuelCostDelta = summaries[i].FuelCost - configuredCost
	}
	return summaries, nil
}

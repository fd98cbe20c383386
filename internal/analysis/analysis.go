// Package analysis runs a configured drilling run through the trial evaluator
// and the aggregation engine and assembles the report.
package analysis

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/drill-cost/internal/config"
	"github.com/iwvelando/drill-cost/pkg/aggregate"
	"github.com/iwvelando/drill-cost/pkg/format"
	"github.com/iwvelando/drill-cost/pkg/fuel"
	"github.com/iwvelando/drill-cost/pkg/optimization"
	"github.com/iwvelando/drill-cost/pkg/trial"
	"go.uber.org/zap"
)

// Report holds everything produced by one run.
type Report struct {
	ID                string             `json:"id"`
	Operator          string             `json:"operator"`
	Machine           fuel.MachineType   `json:"machine"`
	HourlyCostRate    float64            `json:"hourlyCostRate"`
	FuelPricePerLiter float64            `json:"fuelPricePerLiter"`
	ConfiguredTrials  int                `json:"configuredTrials"`
	SkippedTrials     int                `json:"skippedTrials"`
	Trials            []trial.Result     `json:"trials"`
	Summary           *aggregate.Summary `json:"summary"`
	Series            aggregate.Series   `json:"series"`
	// Alternatives ranks every known machine on the same trials.
	Alternatives []optimization.Summary `json:"alternatives"`
}

// Run evaluates every configured trial and aggregates the valid ones. When
// no trial is valid the returned error wraps aggregate.ErrEmptyInput and the
// report is nil.
func Run(logger *zap.Logger, conf config.Configuration) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := conf.EngineConfig()
	if !engine.Machine.Known() {
		logger.Warn(fmt.Sprintf("machine %q is not recognised, fuel figures will be zero", conf.Machine),
			zap.String("op", "analysis.Run"),
		)
	}

	inputs := conf.Inputs()
	results, skipped := trial.EvaluateAll(inputs, engine)
	if skipped > 0 {
		logger.Debug(fmt.Sprintf("skipped %d of %d trials with non-positive pressure or depth", skipped, len(inputs)),
			zap.String("op", "analysis.Run"),
		)
	}

	summary, err := aggregate.Aggregate(results, aggregate.Options{
		Operator:         conf.Operator,
		ConfiguredTrials: len(inputs),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %d configured trials: %w", len(inputs), err)
	}

	alternatives, err := optimization.CompareMachines(inputs, engine)
	if err != nil {
		return nil, fmt.Errorf("failed to compare machines: %w", err)
	}

	report := &Report{
		ID:                uuid.New().String(),
		Operator:          conf.Operator,
		Machine:           engine.Machine,
		HourlyCostRate:    engine.HourlyCostRate,
		FuelPricePerLiter: engine.FuelPricePerLiter,
		ConfiguredTrials:  len(inputs),
		SkippedTrials:     skipped,
		Trials:            results,
		Summary:           summary,
		Series:            aggregate.BuildSeries(results),
		Alternatives:      alternatives,
	}

	logger.Debug("run evaluated",
		zap.String("op", "analysis.Run"),
		zap.String("run", report.ID),
		zap.Int("valid", len(results)),
		zap.Int("skipped", skipped),
		zap.String("totalCost", format.Rupiah(summary.Totals.Cost)),
		zap.Float64("score", summary.Score.Overall),
	)

	return report, nil
}

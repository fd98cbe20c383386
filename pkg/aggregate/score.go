package aggregate

import (
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/mathutil"
)

// Score is the capped performance score and its components.
type Score struct {
	Fuel         float64 `json:"fuel"`         // at most 40
	Cost         float64 `json:"cost"`         // at most 30
	Productivity float64 `json:"productivity"` // at most 30
	Overall      float64 `json:"overall"`
}

// ScoreFor computes the performance score from fuel efficiency (m/liter),
// cost efficiency (%) and total drilled distance (m).
func ScoreFor(fuelEfficiency, costEfficiency, totalDrilled float64) Score {
	s := Score{
		Fuel:         mathutil.Min(fuelEfficiency*constants.FuelScoreWeight, constants.FuelScoreCap),
		Cost:         mathutil.Min(mathutil.Max(costEfficiency, 0)*constants.CostScoreWeight, constants.CostScoreCap),
		Productivity: mathutil.Min(totalDrilled/constants.ProductivityScoreDivide, constants.ProductivityScoreCap),
	}
	s.Overall = s.Fuel + s.Cost + s.Productivity
	return s
}

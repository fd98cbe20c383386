package aggregate

import (
	"github.com/iwvelando/drill-cost/pkg/mathutil"
	"github.com/iwvelando/drill-cost/pkg/trial"
)

// Point is one chart sample keyed by trial number.
type Point struct {
	Trial int     `json:"trial"`
	Value float64 `json:"value"`
}

// PressureDepth pairs a trial's pressure with its target depth.
type PressureDepth struct {
	Trial    int     `json:"trial"`
	Pressure float64 `json:"pressure"`
	Depth    float64 `json:"depth"`
}

// Series holds the per-trial data behind the report charts.
type Series struct {
	PressureDepth []PressureDepth `json:"pressureDepth"`
	Cost          []Point         `json:"cost"`
	Fuel          []Point         `json:"fuel"`
	// EmissionShare is each trial's percentage of total CO2. All shares are
	// zero when the run emitted nothing.
	EmissionShare []Point `json:"emissionShare"`
}

// BuildSeries extracts chart data from results in order.
func BuildSeries(results []trial.Result) Series {
	s := Series{
		PressureDepth: make([]PressureDepth, 0, len(results)),
		Cost:          make([]Point, 0, len(results)),
		Fuel:          make([]Point, 0, len(results)),
		EmissionShare: make([]Point, 0, len(results)),
	}

	var totalCO2 float64
	for _, r := range results {
		totalCO2 += r.CO2Kg
	}

	for _, r := range results {
		s.PressureDepth = append(s.PressureDepth, PressureDepth{Trial: r.Index, Pressure: r.Pressure, Depth: r.TargetDepth})
		s.Cost = append(s.Cost, Point{Trial: r.Index, Value: r.OperationalCost})
		s.Fuel = append(s.Fuel, Point{Trial: r.Index, Value: r.FuelLiters})
		s.EmissionShare = append(s.EmissionShare, Point{Trial: r.Index, Value: mathutil.CalculatePercentage(r.CO2Kg, totalCO2)})
	}
	return s
}

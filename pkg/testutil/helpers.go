// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/mathutil"
	"github.com/iwvelando/drill-cost/pkg/trial"
)

// FindTrial finds a trial result by its 1-based configured index.
// Returns a pointer to the result if found, nil otherwise.
func FindTrial(results []trial.Result, index int) *trial.Result {
	for i := range results {
		if results[i].Index == index {
			return &results[i]
		}
	}
	return nil
}

// Approx reports whether got and want agree within constants.FloatTolerance
// scaled to the magnitude of want.
func Approx(got, want float64) bool {
	tolerance := constants.FloatTolerance * mathutil.Max(1, math.Abs(want))
	return mathutil.WithinTolerance(got, want, tolerance)
}

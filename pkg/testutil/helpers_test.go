package testutil

import (
	"testing"

	"github.com/iwvelando/drill-cost/pkg/trial"
)

func TestFindTrial(t *testing.T) {
	results := []trial.Result{
		{Index: 1, Pressure: 100},
		{Index: 3, Pressure: 80},
		{Index: 4, Pressure: 140},
	}

	tests := []struct {
		name         string
		index        int
		expectFound  bool
		expectedPres float64
	}{
		{"first trial", 1, true, 100},
		{"trial after a skipped one", 3, true, 80},
		{"skipped trial", 2, false, 0},
		{"out of range", 9, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindTrial(results, tt.index)
			if tt.expectFound {
				if got == nil {
					t.Fatalf("FindTrial(%d) returned nil", tt.index)
				}
				if got.Pressure != tt.expectedPres {
					t.Errorf("FindTrial(%d).Pressure = %v, want %v", tt.index, got.Pressure, tt.expectedPres)
				}
			} else if got != nil {
				t.Errorf("FindTrial(%d) = %+v, want nil", tt.index, got)
			}
		})
	}
}

func TestFindTrialReturnsPointerIntoSlice(t *testing.T) {
	results := []trial.Result{{Index: 1}}
	FindTrial(results, 1).Pressure = 42
	if results[0].Pressure != 42 {
		t.Errorf("FindTrial should return a pointer into the slice")
	}
}

func TestApprox(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
		ok   bool
	}{
		{"equal", 0.8, 0.8, true},
		{"float noise", 0.1 + 0.2, 0.3, true},
		{"large magnitude noise", 83333.33333333334, 83333.33333333333, true},
		{"negative", -11.111111111111112, -11.11111111111111, true},
		{"different", 0.8, 0.81, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approx(tt.got, tt.want); got != tt.ok {
				t.Errorf("Approx(%v, %v) = %v, want %v", tt.got, tt.want, got, tt.ok)
			}
		})
	}
}

package fuel

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRatePerHour(t *testing.T) {
	tests := []struct {
		machine  MachineType
		expected float64
	}{
		{PressureJet, 8.5},
		{AirBlasting, 12.0},
		{HydraulicPump, 15.5},
		{Unknown, 0},
		{MachineType(42), 0},
	}

	for _, tt := range tests {
		t.Run(tt.machine.String(), func(t *testing.T) {
			if got := RatePerHour(tt.machine); got != tt.expected {
				t.Errorf("RatePerHour(%s) = %v, expected %v", tt.machine, got, tt.expected)
			}
		})
	}
}

func TestEstimatePressureJetFiveMinutes(t *testing.T) {
	usage := Estimate(PressureJet, 5.0, 15000)

	if math.Abs(usage.Liters-8.5*5.0/60.0) > 1e-12 {
		t.Errorf("Liters = %v, expected %v", usage.Liters, 8.5*5.0/60.0)
	}
	if math.Abs(usage.Cost-10625.0) > 1e-6 {
		t.Errorf("Cost = %v, expected 10625.0", usage.Cost)
	}
	if math.Abs(usage.CO2Kg-1.898333) > 1e-4 {
		t.Errorf("CO2Kg = %v, expected about 1.8983", usage.CO2Kg)
	}
}

func TestUnknownMachineBurnsNothing(t *testing.T) {
	usage := Estimate(Unknown, 120, 15000)
	if usage.Liters != 0 || usage.Cost != 0 || usage.CO2Kg != 0 {
		t.Errorf("expected zero usage for unknown machine, got %+v", usage)
	}
}

func TestCostAndEmission(t *testing.T) {
	if got := Cost(2.5, 1000); got != 2500 {
		t.Errorf("Cost(2.5, 1000) = %v, expected 2500", got)
	}
	if got := Emission(10); math.Abs(got-26.8) > 1e-12 {
		t.Errorf("Emission(10) = %v, expected 26.8", got)
	}
}

func TestParseMachineType(t *testing.T) {
	tests := []struct {
		input    string
		expected MachineType
	}{
		{"pressure_jet", PressureJet},
		{"Pressure Jet", PressureJet},
		{"Tekanan", PressureJet},
		{"air_blasting", AirBlasting},
		{"Air Blasting", AirBlasting},
		{"AIR-BLASTING", AirBlasting},
		{"hydraulic_pump", HydraulicPump},
		{"Pompa Hidrolik", HydraulicPump},
		{"", Unknown},
		{"laser", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseMachineType(tt.input); got != tt.expected {
				t.Errorf("ParseMachineType(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMustParseMachineTypePanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown machine")
		}
	}()
	MustParseMachineType("laser")
}

func TestMachineTypeJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Machine MachineType `json:"machine"`
	}{HydraulicPump})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"machine":"hydraulic_pump"}` {
		t.Errorf("unexpected JSON %s", data)
	}

	var decoded struct {
		Machine MachineType `json:"machine"`
	}
	if err := json.Unmarshal([]byte(`{"machine":"Air Blasting"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Machine != AirBlasting {
		t.Errorf("decoded machine = %s, expected air_blasting", decoded.Machine)
	}
}

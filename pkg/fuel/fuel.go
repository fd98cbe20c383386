// Package fuel converts machine operating time into fuel volume, fuel cost
// and estimated CO2 emission.
package fuel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iwvelando/drill-cost/pkg/constants"
)

// MachineType identifies a drilling machine.
type MachineType int

const (
	// Unknown is any machine the calculator has no consumption data for. It
	// burns no fuel and therefore emits nothing.
	Unknown MachineType = iota
	PressureJet
	AirBlasting
	HydraulicPump
)

// MachineTypes lists the known machines in display order.
var MachineTypes = []MachineType{PressureJet, AirBlasting, HydraulicPump}

// String returns the canonical configuration name of the machine.
func (m MachineType) String() string {
	switch m {
	case PressureJet:
		return "pressure_jet"
	case AirBlasting:
		return "air_blasting"
	case HydraulicPump:
		return "hydraulic_pump"
	default:
		return "unknown"
	}
}

// Label returns the human-readable machine name.
func (m MachineType) Label() string {
	switch m {
	case PressureJet:
		return "Pressure Jet"
	case AirBlasting:
		return "Air Blasting"
	case HydraulicPump:
		return "Hydraulic Pump"
	default:
		return "Unknown"
	}
}

// Known reports whether the machine has consumption data.
func (m MachineType) Known() bool {
	return m != Unknown
}

// MarshalText implements encoding.TextMarshaler.
func (m MachineType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognised names
// decode to Unknown rather than failing.
func (m *MachineType) UnmarshalText(text []byte) error {
	*m = ParseMachineType(string(text))
	return nil
}

// MarshalJSON encodes the machine as its canonical name.
func (m MachineType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// ParseMachineType maps a configured machine name onto a MachineType. Case,
// spaces, dashes and underscores are ignored, and the legacy field labels
// ("Tekanan", "Air Blasting", "Pompa Hidrolik") are accepted.
func ParseMachineType(name string) MachineType {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalized)
	switch normalized {
	case "pressurejet", "pressure", "tekanan":
		return PressureJet
	case "airblasting":
		return AirBlasting
	case "hydraulicpump", "hydraulic", "pompahidrolik":
		return HydraulicPump
	default:
		return Unknown
	}
}

// MustParseMachineType is ParseMachineType that panics on Unknown. Intended
// for fixtures and constants.
func MustParseMachineType(name string) MachineType {
	m := ParseMachineType(name)
	if m == Unknown {
		panic(fmt.Sprintf("unknown machine type %q", name))
	}
	return m
}

// RatePerHour returns the fuel consumption of the machine in liters per hour.
func RatePerHour(m MachineType) float64 {
	switch m {
	case PressureJet:
		return constants.PressureJetFuelRate
	case AirBlasting:
		return constants.AirBlastingFuelRate
	case HydraulicPump:
		return constants.HydraulicPumpFuelRate
	case Unknown:
		return 0
	}
	return 0
}

// Consumption returns the liters of fuel burned by the machine over the given
// operating time in minutes.
func Consumption(m MachineType, minutes float64) float64 {
	return RatePerHour(m) * (minutes / constants.MinutesPerHour)
}

// Cost returns the price of the given fuel volume.
func Cost(liters, pricePerLiter float64) float64 {
	return liters * pricePerLiter
}

// Emission returns the estimated kg of CO2 from burning the given fuel volume.
func Emission(liters float64) float64 {
	return liters * constants.EmissionFactor
}

// Usage bundles the fuel figures for one operating period.
type Usage struct {
	Liters float64
	Cost   float64
	CO2Kg  float64
}

// Estimate computes consumption, cost and emission in one step.
func Estimate(m MachineType, minutes, pricePerLiter float64) Usage {
	liters := Consumption(m, minutes)
	return Usage{
		Liters: liters,
		Cost:   Cost(liters, pricePerLiter),
		CO2Kg:  Emission(liters),
	}
}

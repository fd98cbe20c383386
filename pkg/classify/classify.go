// Package classify grades drilling difficulty and recommends a machine for
// follow-up projects.
package classify

import (
	"encoding/json"
	"fmt"

	"github.com/iwvelando/drill-cost/pkg/fuel"
)

// Tier is a qualitative drilling difficulty.
type Tier int

const (
	Easy Tier = iota
	Moderate
	Hard
	Severe
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "EASY"
	case Moderate:
		return "MODERATE"
	case Hard:
		return "HARD"
	case Severe:
		return "SEVERE"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON encodes the tier as its name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	tier, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// ParseTier maps a tier name back onto a Tier.
func ParseTier(name string) (Tier, error) {
	for _, t := range []Tier{Easy, Moderate, Hard, Severe} {
		if t.String() == name {
			return t, nil
		}
	}
	return Easy, fmt.Errorf("unknown difficulty tier %q", name)
}

// Rule assigns Tier when Match holds.
type Rule struct {
	Tier  Tier
	Match func(pressure, depth float64) bool
}

// DifficultyRules is evaluated in order and the first match wins. The ranges
// overlap, so the order is part of the definition.
var DifficultyRules = []Rule{
	{Tier: Severe, Match: func(pressure, depth float64) bool { return depth > 50 && pressure < 100 }},
	{Tier: Hard, Match: func(pressure, depth float64) bool { return depth > 30 && pressure < 150 }},
	{Tier: Moderate, Match: func(_, depth float64) bool { return depth > 15 }},
}

// Difficulty classifies a pressure (bar) and depth (m) pair.
func Difficulty(pressure, depth float64) Tier {
	for _, rule := range DifficultyRules {
		if rule.Match(pressure, depth) {
			return rule.Tier
		}
	}
	return Easy
}

// Recommend picks the machine for the next project from the average depth
// and the dominant difficulty tier of the current one.
func Recommend(averageDepth float64, tier Tier) fuel.MachineType {
	switch {
	case (tier == Severe || tier == Hard) && averageDepth > 30:
		return fuel.HydraulicPump
	case tier == Moderate && averageDepth > 20:
		return fuel.AirBlasting
	default:
		return fuel.PressureJet
	}
}

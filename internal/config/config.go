// Package config defines the data structures related to configuration and
// includes functions for loading and validating a drilling run.
package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/fuel"
	"github.com/iwvelando/drill-cost/pkg/trial"
	"github.com/iwvelando/drill-cost/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for one drilling run.
type Configuration struct {
	Operator          string        `yaml:"operator" json:"operator"`
	Machine           string        `yaml:"machine" json:"machine"`
	HourlyCostRate    float64       `yaml:"hourlyCostRate" json:"hourlyCostRate"`
	FuelPricePerLiter float64       `yaml:"fuelPricePerLiter" json:"fuelPricePerLiter"`
	Trials            []Trial       `yaml:"trials" json:"trials"`
	Logging           LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output            OutputConfig  `yaml:"output,omitempty" json:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // pretty, csv, json
}

// Trial is one configured drilling attempt.
type Trial struct {
	Pressure    float64 `yaml:"pressure" json:"pressure"`       // bar
	TargetDepth float64 `yaml:"targetDepth" json:"targetDepth"` // m
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("operator", constants.DefaultOperator)
	v.SetDefault("machine", constants.DefaultMachine)
	v.SetDefault("hourlyCostRate", constants.DefaultHourlyCostRate)
	v.SetDefault("fuelPricePerLiter", constants.DefaultFuelPricePerLiter)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML (or JSON) configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	v := newViper()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("error reading config data, %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// MachineType returns the parsed machine. Unrecognised names map to
// fuel.Unknown.
func (c *Configuration) MachineType() fuel.MachineType {
	return fuel.ParseMachineType(c.Machine)
}

// EngineConfig converts the configuration into engine parameters.
func (c *Configuration) EngineConfig() trial.EngineConfig {
	return trial.NewEngineConfig(c.MachineType(), c.HourlyCostRate, c.FuelPricePerLiter)
}

// Inputs converts the configured trials into engine inputs, preserving order.
func (c *Configuration) Inputs() []trial.Input {
	inputs := make([]trial.Input, len(c.Trials))
	for i, t := range c.Trials {
		inputs[i] = trial.Input{Pressure: t.Pressure, TargetDepth: t.TargetDepth}
	}
	return inputs
}

func (c *Configuration) validator() *validation.ConfigValidator {
	trials := make([]validation.TrialConfig, len(c.Trials))
	for i, t := range c.Trials {
		trials[i] = validation.TrialConfig{Pressure: t.Pressure, TargetDepth: t.TargetDepth}
	}
	return &validation.ConfigValidator{
		Machine:           c.Machine,
		HourlyCostRate:    c.HourlyCostRate,
		FuelPricePerLiter: c.FuelPricePerLiter,
		Trials:            trials,
	}
}

// Validate returns an error when the configuration is outside the supported
// bounds: trial count outside [1, 20] or a negative rate.
func (c *Configuration) Validate() error {
	_, err := c.validator().ValidateAll()
	return err
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. It returns nil when Validate would fail.
func (c *Configuration) ValidateConfiguration() []string {
	warnings, err := c.validator().ValidateAll()
	if err != nil {
		return nil
	}
	return warnings
}

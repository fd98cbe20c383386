package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/fuel"
	"github.com/iwvelando/drill-cost/pkg/trial"
)

const sampleConfig = `operator: Sari
machine: air_blasting
hourlyCostRate: 750000
fuelPricePerLiter: 14500
trials:
  - pressure: 100
    targetDepth: 20
  - pressure: 0
    targetDepth: 20
  - pressure: 80
    targetDepth: 55.5
logging:
  level: debug
  format: console
output:
  format: csv
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Operator != "Sari" {
		t.Errorf("Operator = %q, expected Sari", conf.Operator)
	}
	if conf.MachineType() != fuel.AirBlasting {
		t.Errorf("MachineType() = %s, expected air_blasting", conf.MachineType())
	}
	if conf.HourlyCostRate != 750000 || conf.FuelPricePerLiter != 14500 {
		t.Errorf("rates = %v, %v, expected 750000, 14500", conf.HourlyCostRate, conf.FuelPricePerLiter)
	}
	if len(conf.Trials) != 3 {
		t.Fatalf("len(Trials) = %d, expected 3", len(conf.Trials))
	}
	if conf.Trials[2] != (Trial{Pressure: 80, TargetDepth: 55.5}) {
		t.Errorf("Trials[2] = %+v", conf.Trials[2])
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nonexistent.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error but got none")
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, "trials:\n  - pressure: 100\n    targetDepth: 20\n"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Operator != constants.DefaultOperator {
		t.Errorf("Operator = %q, expected default", conf.Operator)
	}
	if conf.MachineType() != fuel.PressureJet {
		t.Errorf("MachineType() = %s, expected pressure_jet", conf.MachineType())
	}
	if conf.HourlyCostRate != constants.DefaultHourlyCostRate {
		t.Errorf("HourlyCostRate = %v, expected default", conf.HourlyCostRate)
	}
	if conf.FuelPricePerLiter != constants.DefaultFuelPricePerLiter {
		t.Errorf("FuelPricePerLiter = %v, expected default", conf.FuelPricePerLiter)
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	t.Setenv("DRILLCOST_FUELPRICEPERLITER", "20000")
	t.Setenv("DRILLCOST_OPERATOR", "Budi")

	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.FuelPricePerLiter != 20000 {
		t.Errorf("FuelPricePerLiter = %v, expected env override 20000", conf.FuelPricePerLiter)
	}
	if conf.Operator != "Budi" {
		t.Errorf("Operator = %q, expected env override Budi", conf.Operator)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if len(conf.Trials) != 3 {
		t.Errorf("len(Trials) = %d, expected 3", len(conf.Trials))
	}

	jsonConf, err := LoadConfigurationFromReader(strings.NewReader(`{"machine": "hydraulic_pump", "trials": [{"pressure": 120, "targetDepth": 40}]}`))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader(json) error = %v", err)
	}
	if jsonConf.MachineType() != fuel.HydraulicPump {
		t.Errorf("MachineType() = %s, expected hydraulic_pump", jsonConf.MachineType())
	}
	if len(jsonConf.Trials) != 1 || jsonConf.Trials[0].TargetDepth != 40 {
		t.Errorf("Trials = %+v", jsonConf.Trials)
	}
}

func TestLoadConfigurationFromReaderEmpty(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if len(conf.Trials) != 0 {
		t.Errorf("expected no trials, got %d", len(conf.Trials))
	}
	if err := conf.Validate(); err == nil {
		t.Error("Validate() expected error for zero trials")
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("trials: [unterminated")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEngineConfigAndInputs(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	engine := conf.EngineConfig()
	expected := trial.NewEngineConfig(fuel.AirBlasting, 750000, 14500)
	if engine != expected {
		t.Errorf("EngineConfig() = %+v, expected %+v", engine, expected)
	}

	inputs := conf.Inputs()
	if len(inputs) != 3 || inputs[1] != (trial.Input{Pressure: 0, TargetDepth: 20}) {
		t.Errorf("Inputs() = %+v", inputs)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Trial 2") {
		t.Errorf("ValidateConfiguration() = %v, expected one warning for trial 2", warnings)
	}

	conf.Machine = "laser"
	warnings = conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Errorf("ValidateConfiguration() = %v, expected machine and trial warnings", warnings)
	}

	conf.HourlyCostRate = -1
	if err := conf.Validate(); err == nil {
		t.Error("Validate() expected error for negative hourly rate")
	}
	if warnings := conf.ValidateConfiguration(); warnings != nil {
		t.Errorf("ValidateConfiguration() = %v, expected nil for invalid config", warnings)
	}
}

// Package constants provides shared constants for the drill-cost application.
package constants

// Drilling model constants
const (
	// EfficiencyConstant is the machine efficiency constant k for soft rock
	// such as coal, in m per bar per minute.
	EfficiencyConstant = 0.04

	// EmissionFactor is the kg of CO2 emitted per liter of fuel burned.
	EmissionFactor = 2.68

	// IdealCostRatio is the share of each trial's actual cost used to build
	// the ideal cost target (10% cheaper than actual).
	IdealCostRatio = 0.9

	// MinutesPerHour is the number of minutes in an hour
	MinutesPerHour = 60.0
)

// Fuel consumption rates in liters per hour
const (
	PressureJetFuelRate   = 8.5
	AirBlastingFuelRate   = 12.0
	HydraulicPumpFuelRate = 15.5
)

// Score component caps and weights
const (
	FuelScoreWeight         = 15.0
	FuelScoreCap            = 40.0
	CostScoreWeight         = 2.0
	CostScoreCap            = 30.0
	ProductivityScoreDivide = 2.0
	ProductivityScoreCap    = 30.0
)

// Trial count bounds enforced by the configuration layer
const (
	MinTrials = 1
	MaxTrials = 20
)

// Run configuration defaults
const (
	DefaultOperator          = "Operator"
	DefaultMachine           = "pressure_jet"
	DefaultHourlyCostRate    = 1_000_000.0
	DefaultFuelPricePerLiter = 15_000.0
)

// CurrencyPrefix is prepended to every formatted monetary amount.
const CurrencyPrefix = "Rp"

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "DRILLCOST"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum size for uploaded run configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Comparison tolerances
const (
	// FloatTolerance is the tolerance for comparing derived measurements
	FloatTolerance = 1e-9

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

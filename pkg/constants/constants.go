// Package constants provides shared constants for the calculator service.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Calculation limits
const (
	// MaxPrincipal is the largest loan or investment principal accepted
	MaxPrincipal = 1_000_000_000.0

	// MaxAnnualRatePercent is the largest annual interest rate accepted
	MaxAnnualRatePercent = 1000.0

	// MaxTermMonths is the longest loan term accepted (50 years)
	MaxTermMonths = 600

	// MaxPayoffMonths caps the debt payoff simulation (50 years)
	MaxPayoffMonths = 600

	// MaxProjectionYears is the longest growth projection accepted,
	// matching the loan term cap
	MaxProjectionYears = MaxTermMonths / MonthsPerYear

	// MaxCompoundingPeriodsPerYear allows up to daily compounding
	MaxCompoundingPeriodsPerYear = 366

	// MaxDebtsPerRequest bounds the debt list in a single simulation
	MaxDebtsPerRequest = 50

	// DebtBalanceTolerance is the balance below which a debt counts as paid
	DebtBalanceTolerance = 0.01
)

// Validation bounds for the health calculators
const (
	MinAgeYears = 18
	MaxAgeYears = 80
)

// Password generation bounds
const (
	MinPasswordLength = 4
	MaxPasswordLength = 128
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024

	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultHistoryLimit is the default number of recent calculations kept
	DefaultHistoryLimit = 50
)

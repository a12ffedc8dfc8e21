package suggestion

// Static fallback tips shown when the suggestion service is disabled or
// unreachable.
var fallbacks = map[string]string{
	"amortization":       "Extra principal payments early in the term reduce total interest the most, since interest accrues on the remaining balance.",
	"mortgage":           "Keeping total housing costs below about a third of gross income leaves room for taxes, insurance, and maintenance surprises.",
	"future-value":       "Compounding rewards time in the market: starting earlier usually matters more than contributing more.",
	"simple-interest":    "Simple interest never compounds, so the same rate costs less than a compounding loan over the same term.",
	"retirement":         "Increasing contributions by even a small amount each year compounds into a significantly larger retirement balance.",
	"debt-payoff":        "Paying more than the minimum shortens the payoff timeline and cuts the total interest paid.",
	"debt-consolidation": "A consolidation loan only helps when its rate and term together cost less than the debts it replaces.",
	"tip":                "Common gratuity in the US runs 15-20% of the pre-tax bill for table service.",
	"sales-tax":          "Sales tax rates vary by state and city, so the same purchase can total differently across locations.",
	"gcd":                "The greatest common divisor also gives the least common multiple: lcm(a,b) = a*b / gcd(a,b).",
	"fraction":           "A fraction is fully simplified when its numerator and denominator share no common factor other than 1.",
	"unit-conversion":    "Converting through a base unit keeps factor tables small: any two units are linked by two multiplications.",
	"body-fat":           "BMI-based estimates ignore body composition; athletes often measure leaner than the formula suggests.",
	"calories":           "A sustained deficit of about 500 calories per day corresponds to roughly one pound of weight loss per week.",
	"pace":               "Negative splits, i.e. running the second half faster, is a common strategy for distance personal bests.",
	"password":           "Length beats complexity: each added character multiplies the search space more than adding a symbol class.",
	"age":                "Leap-year birthdays are counted on March 1 in non-leap years.",
}

const defaultFallback = "Double-check inputs before acting on any calculation."

// Fallback returns the static tip for a calculator.
func Fallback(calculator string) string {
	if tip, ok := fallbacks[calculator]; ok {
		return tip
	}
	return defaultFallback
}

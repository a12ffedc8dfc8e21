package amortize

import (
	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// MortgageTerms holds the input for a full mortgage payment estimate.
type MortgageTerms struct {
	HomePrice         float64 `json:"homePrice"`
	DownPayment       float64 `json:"downPayment"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
	AnnualPropertyTax float64 `json:"annualPropertyTax"`
	AnnualInsurance   float64 `json:"annualInsurance"`
	MonthlyHOA        float64 `json:"monthlyHoa"`
}

// MortgagePayment breaks a monthly mortgage payment into its PITI
// components plus HOA dues.
type MortgagePayment struct {
	LoanAmount           float64 `json:"loanAmount"`
	PrincipalAndInterest float64 `json:"principalAndInterest"`
	PropertyTax          float64 `json:"propertyTax"`
	Insurance            float64 `json:"insurance"`
	HOA                  float64 `json:"hoa"`
	TotalMonthly         float64 `json:"totalMonthly"`
	TotalInterest        float64 `json:"totalInterest"`
}

// Mortgage computes the monthly PITI breakdown for a home loan. The down
// payment must leave a positive amount to finance.
func Mortgage(terms MortgageTerms) (MortgagePayment, error) {
	if err := validation.RequirePositive("homePrice", terms.HomePrice); err != nil {
		return MortgagePayment{}, err
	}
	if err := validation.RequireNonNegative("downPayment", terms.DownPayment); err != nil {
		return MortgagePayment{}, err
	}
	if terms.DownPayment >= terms.HomePrice {
		return MortgagePayment{}, validation.NewError("downPayment",
			"must be less than home price %.2f, got %.2f", terms.HomePrice, terms.DownPayment)
	}
	if err := validation.RequireNonNegative("annualPropertyTax", terms.AnnualPropertyTax); err != nil {
		return MortgagePayment{}, err
	}
	if err := validation.RequireNonNegative("annualInsurance", terms.AnnualInsurance); err != nil {
		return MortgagePayment{}, err
	}
	if err := validation.RequireNonNegative("monthlyHoa", terms.MonthlyHOA); err != nil {
		return MortgagePayment{}, err
	}

	loanTerms := Terms{
		Principal:         terms.HomePrice - terms.DownPayment,
		AnnualRatePercent: terms.AnnualRatePercent,
		TermYears:         terms.TermYears,
	}
	result, err := Compute(loanTerms)
	if err != nil {
		return MortgagePayment{}, err
	}

	tax := terms.AnnualPropertyTax / constants.MonthsPerYear
	insurance := terms.AnnualInsurance / constants.MonthsPerYear

	return MortgagePayment{
		LoanAmount:           loanTerms.Principal,
		PrincipalAndInterest: result.MonthlyPayment,
		PropertyTax:          tax,
		Insurance:            insurance,
		HOA:                  terms.MonthlyHOA,
		TotalMonthly:         result.MonthlyPayment + tax + insurance + terms.MonthlyHOA,
		TotalInterest:        result.TotalInterest,
	}, nil
}

package growth

import (
	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// RetirementPlan holds the input for a retirement savings projection.
type RetirementPlan struct {
	CurrentAge          int     `json:"currentAge"`
	RetirementAge       int     `json:"retirementAge"`
	CurrentSavings      float64 `json:"currentSavings"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualReturnPercent float64 `json:"annualReturnPercent"`
}

// RetirementProjection holds the projected balance at retirement.
type RetirementProjection struct {
	YearsToRetirement   int         `json:"yearsToRetirement"`
	BalanceAtRetirement float64     `json:"balanceAtRetirement"`
	TotalContributions  float64     `json:"totalContributions"`
	TotalGrowth         float64     `json:"totalGrowth"`
	Breakdown           []YearValue `json:"breakdown"`
}

// Validate checks the plan against its declared domain.
func (p RetirementPlan) Validate() error {
	if p.CurrentAge < constants.MinAgeYears {
		return validation.NewError("currentAge", "must be at least %d, got %d", constants.MinAgeYears, p.CurrentAge)
	}
	if p.RetirementAge <= p.CurrentAge {
		return validation.NewError("retirementAge", "must be greater than current age %d, got %d", p.CurrentAge, p.RetirementAge)
	}
	if p.RetirementAge > 100 {
		return validation.NewError("retirementAge", "must be at most 100, got %d", p.RetirementAge)
	}
	if err := validation.RequireNonNegative("currentSavings", p.CurrentSavings); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("monthlyContribution", p.MonthlyContribution); err != nil {
		return err
	}
	if err := validation.RequireNonNegative("annualReturnPercent", p.AnnualReturnPercent); err != nil {
		return err
	}
	if p.AnnualReturnPercent > constants.MaxAnnualRatePercent {
		return validation.NewError("annualReturnPercent", "exceeds maximum of %.2f%%", constants.MaxAnnualRatePercent)
	}
	return nil
}

// Retirement projects savings month by month until retirement age,
// compounding the return monthly and adding the contribution at the end
// of each month.
func Retirement(plan RetirementPlan) (RetirementProjection, error) {
	if err := plan.Validate(); err != nil {
		return RetirementProjection{}, err
	}

	years := plan.RetirementAge - plan.CurrentAge
	monthlyRate := plan.AnnualReturnPercent / (constants.PercentageMultiplier * constants.MonthsPerYear)

	balance := plan.CurrentSavings
	contributions := 0.0
	breakdown := make([]YearValue, 0, years)

	for year := 1; year <= years; year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			balance = balance*(1+monthlyRate) + plan.MonthlyContribution
			contributions += plan.MonthlyContribution
		}
		breakdown = append(breakdown, YearValue{
			Year:           year,
			Value:          balance,
			InterestToDate: balance - plan.CurrentSavings - contributions,
		})
	}

	return RetirementProjection{
		YearsToRetirement:   years,
		BalanceAtRetirement: balance,
		TotalContributions:  contributions,
		TotalGrowth:         balance - plan.CurrentSavings - contributions,
		Breakdown:           breakdown,
	}, nil
}

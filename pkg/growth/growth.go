// Package growth computes compound growth, simple interest, and
// retirement savings projections.
package growth

import (
	"math"

	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// Parameters holds the input for a future value calculation.
type Parameters struct {
	PresentValue              float64 `json:"presentValue"`
	AnnualRatePercent         float64 `json:"annualRatePercent"`
	Years                     int     `json:"years"`
	CompoundingPeriodsPerYear int     `json:"compoundingPeriodsPerYear"`
}

// YearValue is one row of the yearly display breakdown.
type YearValue struct {
	Year           int     `json:"year"`
	Value          float64 `json:"value"`
	InterestToDate float64 `json:"interestToDate"`
}

// Projection holds the computed future value and its yearly breakdown.
type Projection struct {
	FutureValue   float64     `json:"futureValue"`
	TotalInterest float64     `json:"totalInterest"`
	Breakdown     []YearValue `json:"breakdown"`
}

// Validate checks the parameters against their declared domain.
func (p Parameters) Validate() error {
	if err := validation.RequireNonNegative("presentValue", p.PresentValue); err != nil {
		return err
	}
	if p.PresentValue > constants.MaxPrincipal {
		return validation.NewError("presentValue", "exceeds maximum of %.2f", constants.MaxPrincipal)
	}
	if err := validation.RequireNonNegative("annualRatePercent", p.AnnualRatePercent); err != nil {
		return err
	}
	if p.AnnualRatePercent > constants.MaxAnnualRatePercent {
		return validation.NewError("annualRatePercent", "exceeds maximum of %.2f%%", constants.MaxAnnualRatePercent)
	}
	if p.Years <= 0 {
		return validation.NewError("years", "must be a positive integer, got %d", p.Years)
	}
	if p.Years > constants.MaxProjectionYears {
		return validation.NewError("years", "exceeds maximum of %d years", constants.MaxProjectionYears)
	}
	if p.CompoundingPeriodsPerYear <= 0 {
		return validation.NewError("compoundingPeriodsPerYear", "must be a positive integer, got %d", p.CompoundingPeriodsPerYear)
	}
	if p.CompoundingPeriodsPerYear > constants.MaxCompoundingPeriodsPerYear {
		return validation.NewError("compoundingPeriodsPerYear", "exceeds maximum of %d", constants.MaxCompoundingPeriodsPerYear)
	}
	return nil
}

// FutureValue computes compound growth over the full horizon. The exact
// future value respects the compounding frequency; the yearly breakdown
// uses annual compounding and exists for display only, so its final row
// can differ slightly from the exact value.
func FutureValue(params Parameters) (Projection, error) {
	if err := params.Validate(); err != nil {
		return Projection{}, err
	}

	periodicRate := params.AnnualRatePercent / constants.PercentageMultiplier / float64(params.CompoundingPeriodsPerYear)
	totalPeriods := params.Years * params.CompoundingPeriodsPerYear
	futureValue := params.PresentValue * math.Pow(1+periodicRate, float64(totalPeriods))

	annualRate := params.AnnualRatePercent / constants.PercentageMultiplier
	breakdown := make([]YearValue, 0, params.Years)
	for year := 1; year <= params.Years; year++ {
		value := params.PresentValue * math.Pow(1+annualRate, float64(year))
		breakdown = append(breakdown, YearValue{
			Year:           year,
			Value:          value,
			InterestToDate: value - params.PresentValue,
		})
	}

	return Projection{
		FutureValue:   futureValue,
		TotalInterest: futureValue - params.PresentValue,
		Breakdown:     breakdown,
	}, nil
}

// SimpleInterestResult holds the outcome of a simple interest calculation.
type SimpleInterestResult struct {
	Interest   float64 `json:"interest"`
	TotalValue float64 `json:"totalValue"`
}

// SimpleInterest computes non-compounding interest: principal * rate * years.
func SimpleInterest(principal, annualRatePercent float64, years int) (SimpleInterestResult, error) {
	if err := validation.RequirePositive("principal", principal); err != nil {
		return SimpleInterestResult{}, err
	}
	if err := validation.RequireNonNegative("annualRatePercent", annualRatePercent); err != nil {
		return SimpleInterestResult{}, err
	}
	if years <= 0 {
		return SimpleInterestResult{}, validation.NewError("years", "must be a positive integer, got %d", years)
	}
	if years > constants.MaxProjectionYears {
		return SimpleInterestResult{}, validation.NewError("years", "exceeds maximum of %d years", constants.MaxProjectionYears)
	}

	interest := principal * (annualRatePercent / constants.PercentageMultiplier) * float64(years)
	return SimpleInterestResult{
		Interest:   interest,
		TotalValue: principal + interest,
	}, nil
}

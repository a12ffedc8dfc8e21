// Package amortize computes fixed-payment loan amortization using the
// standard annuity formula.
package amortize

import (
	"errors"
	"fmt"
	"math"

	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/mathutil"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// ErrInvalidRate indicates a rate/term combination whose annuity payment
// is not a finite number.
var ErrInvalidRate = errors.New("rate and term produce a non-finite payment")

// Terms holds the immutable input for an amortization calculation.
type Terms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
}

// Entry holds the interest/principal split for a single period.
type Entry struct {
	Period             int     `json:"period"`
	Interest           float64 `json:"interest"`
	Principal          float64 `json:"principal"`
	RemainingBalance   float64 `json:"remainingBalance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

// Result holds the periodic payment and full schedule for a loan.
type Result struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	Schedule       []Entry `json:"schedule"`
}

// Validate checks the terms against their declared domain.
func (t Terms) Validate() error {
	if err := validation.RequirePositive("principal", t.Principal); err != nil {
		return err
	}
	if t.Principal > constants.MaxPrincipal {
		return validation.NewError("principal", "exceeds maximum of %.2f", constants.MaxPrincipal)
	}
	if err := validation.RequireNonNegative("annualRatePercent", t.AnnualRatePercent); err != nil {
		return err
	}
	if t.AnnualRatePercent > constants.MaxAnnualRatePercent {
		return validation.NewError("annualRatePercent", "exceeds maximum of %.2f%%", constants.MaxAnnualRatePercent)
	}
	if t.TermYears <= 0 {
		return validation.NewError("termYears", "must be a positive integer, got %d", t.TermYears)
	}
	if t.TermYears*constants.MonthsPerYear > constants.MaxTermMonths {
		return validation.NewError("termYears", "term exceeds maximum of %d months", constants.MaxTermMonths)
	}
	return nil
}

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard amortization formula. Zero-rate loans divide the principal
// evenly across the term.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) (float64, error) {
	if annualRatePercent == 0 {
		return principal / float64(termMonths), nil
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	payment := principal * periodicRate / discountFactor

	if !mathutil.IsFinite(payment) {
		return 0, fmt.Errorf("annual rate %.2f%% over %d months: %w",
			annualRatePercent, termMonths, ErrInvalidRate)
	}
	return payment, nil
}

// InterestPayment calculates the interest portion of a payment.
func InterestPayment(remainingBalance, annualRatePercent float64) float64 {
	return remainingBalance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Compute generates the fixed payment and the full period-by-period
// schedule for the given terms. The final period absorbs floating-point
// drift so the schedule always ends at a zero balance.
func Compute(terms Terms) (Result, error) {
	if err := terms.Validate(); err != nil {
		return Result{}, err
	}

	termMonths := terms.TermYears * constants.MonthsPerYear
	payment, err := MonthlyPayment(terms.Principal, terms.AnnualRatePercent, termMonths)
	if err != nil {
		return Result{}, err
	}

	schedule := make([]Entry, 0, termMonths)
	balance := terms.Principal
	cumulativeInterest := 0.0

	for period := 1; period <= termMonths; period++ {
		interest := InterestPayment(balance, terms.AnnualRatePercent)
		principalPortion := payment - interest

		if period == termMonths || mathutil.Round(balance-principalPortion) == 0 {
			// Let the last period retire whatever balance remains rather
			// than leaving machine error behind.
			principalPortion = balance
			balance = 0
		} else {
			balance -= principalPortion
		}
		cumulativeInterest += interest

		schedule = append(schedule, Entry{
			Period:             period,
			Interest:           interest,
			Principal:          principalPortion,
			RemainingBalance:   balance,
			CumulativeInterest: cumulativeInterest,
		})

		if balance == 0 {
			break
		}
	}

	// The rounding clamp can retire the balance a period early, so the
	// totals come from the schedule rather than payment * termMonths.
	return Result{
		MonthlyPayment: payment,
		TotalPayment:   terms.Principal + cumulativeInterest,
		TotalInterest:  cumulativeInterest,
		Schedule:       schedule,
	}, nil
}

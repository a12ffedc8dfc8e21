// Package debtplan simulates debt paydown: independent per-debt payoff,
// consolidation comparison, and snowball/avalanche strategy planning.
package debtplan

import (
	"errors"
	"fmt"
	"math"

	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// ErrUnpayableDebt indicates a fixed payment that never exceeds the
// interest accruing each month, so the balance can never reach zero.
var ErrUnpayableDebt = errors.New("monthly payment does not cover accruing interest")

// Debt is a single balance being paid down with a fixed monthly payment.
type Debt struct {
	Name              string  `json:"name,omitempty"`
	Balance           float64 `json:"balance"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
}

// DebtOutcome reports the simulated payoff of one debt.
type DebtOutcome struct {
	Name           string  `json:"name,omitempty"`
	MonthsToPayoff int     `json:"monthsToPayoff"`
	InterestPaid   float64 `json:"interestPaid"`
}

// PayoffResult aggregates the simulation across all debts.
type PayoffResult struct {
	TotalMonthlyPayment float64       `json:"totalMonthlyPayment"`
	TotalInterest       float64       `json:"totalInterest"`
	TotalCost           float64       `json:"totalCost"`
	PayoffTimeYears     int           `json:"payoffTimeYears"`
	Debts               []DebtOutcome `json:"debts"`
}

func (d Debt) label(index int) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("debt %d", index+1)
}

func (d Debt) monthlyRate() float64 {
	return d.AnnualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

func validateDebts(debts []Debt) error {
	if len(debts) == 0 {
		return validation.NewError("debts", "at least one debt is required")
	}
	if len(debts) > constants.MaxDebtsPerRequest {
		return validation.NewError("debts", "at most %d debts per request, got %d",
			constants.MaxDebtsPerRequest, len(debts))
	}
	for i, debt := range debts {
		label := debt.label(i)
		if debt.Balance <= 0 {
			return validation.NewError("balance", "%s: must be positive, got %v", label, debt.Balance)
		}
		if debt.AnnualRatePercent < 0 {
			return validation.NewError("annualRatePercent", "%s: must not be negative, got %v", label, debt.AnnualRatePercent)
		}
		if debt.AnnualRatePercent > constants.MaxAnnualRatePercent {
			return validation.NewError("annualRatePercent", "%s: exceeds maximum of %.2f%%", label, constants.MaxAnnualRatePercent)
		}
		if debt.MonthlyPayment <= 0 {
			return validation.NewError("monthlyPayment", "%s: must be positive, got %v", label, debt.MonthlyPayment)
		}
	}
	return nil
}

// Simulate pays each debt down independently month by month and
// aggregates the results. A debt whose payment cannot outpace its
// interest fails the whole simulation with ErrUnpayableDebt rather than
// silently running to the iteration cap.
func Simulate(debts []Debt) (PayoffResult, error) {
	if err := validateDebts(debts); err != nil {
		return PayoffResult{}, err
	}

	for i, debt := range debts {
		firstInterest := debt.Balance * debt.monthlyRate()
		if debt.MonthlyPayment <= firstInterest {
			return PayoffResult{}, fmt.Errorf("%s: payment %.2f vs monthly interest %.2f: %w",
				debt.label(i), debt.MonthlyPayment, firstInterest, ErrUnpayableDebt)
		}
	}

	result := PayoffResult{Debts: make([]DebtOutcome, 0, len(debts))}
	maxMonths := 0

	for i, debt := range debts {
		balance := debt.Balance
		interestPaid := 0.0
		months := 0

		// The cap is a non-convergence guard only; validated debts
		// always terminate before reaching it.
		for balance > constants.DebtBalanceTolerance && months < constants.MaxPayoffMonths {
			months++
			interest := balance * debt.monthlyRate()
			principalPaid := math.Min(debt.MonthlyPayment-interest, balance)
			balance -= principalPaid
			interestPaid += interest
		}

		result.Debts = append(result.Debts, DebtOutcome{
			Name:           debt.label(i),
			MonthsToPayoff: months,
			InterestPaid:   interestPaid,
		})
		result.TotalMonthlyPayment += debt.MonthlyPayment
		result.TotalInterest += interestPaid
		result.TotalCost += debt.Balance + interestPaid
		if months > maxMonths {
			maxMonths = months
		}
	}

	result.PayoffTimeYears = int(math.Ceil(float64(maxMonths) / constants.MonthsPerYear))
	return result, nil
}

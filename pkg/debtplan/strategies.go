package debtplan

import (
	"fmt"
	"math"
	"sort"

	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// Strategy names for ordered-rollover planning.
const (
	StrategySnowball  = "snowball"
	StrategyAvalanche = "avalanche"
)

// StrategyOutcome summarizes one rollover strategy run.
type StrategyOutcome struct {
	Strategy       string  `json:"strategy"`
	TotalInterest  float64 `json:"totalInterest"`
	MonthsToPayoff int     `json:"monthsToPayoff"`
}

// StrategyComparison reports snowball vs avalanche under the same budget.
type StrategyComparison struct {
	Snowball      StrategyOutcome `json:"snowball"`
	Avalanche     StrategyOutcome `json:"avalanche"`
	Recommended   string          `json:"recommended"`
	InterestSaved float64         `json:"interestSaved"`
	MonthsSaved   int             `json:"monthsSaved"`
}

// CompareStrategies runs both rollover strategies with a fixed monthly
// budget: minimum payments first, surplus to the target debt of the
// strategy's ordering. Debt.MonthlyPayment is treated as the minimum
// payment. The budget must cover all minimums and each minimum must
// outpace its debt's interest.
func CompareStrategies(debts []Debt, monthlyBudget float64) (StrategyComparison, error) {
	if err := validateDebts(debts); err != nil {
		return StrategyComparison{}, err
	}

	minimums := 0.0
	for i, debt := range debts {
		firstInterest := debt.Balance * debt.monthlyRate()
		if debt.MonthlyPayment <= firstInterest {
			return StrategyComparison{}, fmt.Errorf("%s: minimum payment %.2f vs monthly interest %.2f: %w",
				debt.label(i), debt.MonthlyPayment, firstInterest, ErrUnpayableDebt)
		}
		minimums += debt.MonthlyPayment
	}
	if monthlyBudget < minimums {
		return StrategyComparison{}, validation.NewError("monthlyBudget",
			"must cover minimum payments totaling %.2f, got %.2f", minimums, monthlyBudget)
	}

	snowball := runStrategy(debts, monthlyBudget, StrategySnowball)
	avalanche := runStrategy(debts, monthlyBudget, StrategyAvalanche)

	comparison := StrategyComparison{
		Snowball:  snowball,
		Avalanche: avalanche,
	}
	if avalanche.TotalInterest < snowball.TotalInterest {
		comparison.Recommended = StrategyAvalanche
	} else {
		comparison.Recommended = StrategySnowball
	}
	comparison.InterestSaved = math.Max(0, snowball.TotalInterest-avalanche.TotalInterest)
	comparison.MonthsSaved = snowball.MonthsToPayoff - avalanche.MonthsToPayoff
	return comparison, nil
}

func runStrategy(debts []Debt, monthlyBudget float64, strategy string) StrategyOutcome {
	ordered := make([]Debt, len(debts))
	copy(ordered, debts)
	if strategy == StrategySnowball {
		// Smallest balance first.
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	} else {
		// Highest rate first.
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRatePercent > ordered[j].AnnualRatePercent
		})
	}

	balances := make([]float64, len(ordered))
	for i, debt := range ordered {
		balances[i] = debt.Balance
	}

	totalInterest := 0.0
	months := 0

	for months < constants.MaxPayoffMonths {
		remaining := false
		for _, balance := range balances {
			if balance > constants.DebtBalanceTolerance {
				remaining = true
				break
			}
		}
		if !remaining {
			break
		}
		months++

		available := monthlyBudget

		// Minimum payments on every active debt.
		for i, debt := range ordered {
			if balances[i] <= constants.DebtBalanceTolerance {
				continue
			}
			interest := balances[i] * debt.monthlyRate()
			totalInterest += interest

			payment := math.Min(debt.MonthlyPayment, balances[i]+interest)
			payment = math.Min(payment, available)
			principalPaid := math.Max(payment-interest, 0)
			balances[i] = math.Max(balances[i]-principalPaid, 0)
			available -= payment
		}

		// Surplus rolls into the first active debt in strategy order.
		for i := range ordered {
			if available <= 0 {
				break
			}
			if balances[i] <= constants.DebtBalanceTolerance {
				continue
			}
			extra := math.Min(available, balances[i])
			balances[i] -= extra
			available -= extra
			break
		}
	}

	return StrategyOutcome{
		Strategy:       strategy,
		TotalInterest:  totalInterest,
		MonthsToPayoff: months,
	}
}

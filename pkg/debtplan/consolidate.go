package debtplan

import (
	"github.com/Husnain585/Calculator-sub000/pkg/amortize"
	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// ConsolidationOffer describes a single loan offered to replace a set of
// existing debts.
type ConsolidationOffer struct {
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermMonths        int     `json:"termMonths"`
}

// ConsolidationResult compares keeping the current debts against rolling
// them into the offered loan.
type ConsolidationResult struct {
	CombinedBalance         float64 `json:"combinedBalance"`
	CurrentMonthlyPayment   float64 `json:"currentMonthlyPayment"`
	CurrentTotalInterest    float64 `json:"currentTotalInterest"`
	CurrentPayoffMonths     int     `json:"currentPayoffMonths"`
	OfferMonthlyPayment     float64 `json:"offerMonthlyPayment"`
	OfferTotalInterest      float64 `json:"offerTotalInterest"`
	MonthlyPaymentSavings   float64 `json:"monthlyPaymentSavings"`
	InterestSavings         float64 `json:"interestSavings"`
	ConsolidationWorthwhile bool    `json:"consolidationWorthwhile"`
}

// Consolidate simulates the current debts and compares their cost to a
// single consolidation loan over the combined balance. Savings fields are
// negative when the offer is worse than the status quo.
func Consolidate(debts []Debt, offer ConsolidationOffer) (ConsolidationResult, error) {
	if offer.TermMonths <= 0 {
		return ConsolidationResult{}, validation.NewError("termMonths", "must be a positive integer, got %d", offer.TermMonths)
	}
	if offer.TermMonths > constants.MaxTermMonths {
		return ConsolidationResult{}, validation.NewError("termMonths", "exceeds maximum of %d months", constants.MaxTermMonths)
	}
	if err := validation.RequireNonNegative("annualRatePercent", offer.AnnualRatePercent); err != nil {
		return ConsolidationResult{}, err
	}

	current, err := Simulate(debts)
	if err != nil {
		return ConsolidationResult{}, err
	}

	combined := 0.0
	for _, debt := range debts {
		combined += debt.Balance
	}

	offerPayment, err := amortize.MonthlyPayment(combined, offer.AnnualRatePercent, offer.TermMonths)
	if err != nil {
		return ConsolidationResult{}, err
	}
	offerInterest := offerPayment*float64(offer.TermMonths) - combined

	maxMonths := 0
	for _, outcome := range current.Debts {
		if outcome.MonthsToPayoff > maxMonths {
			maxMonths = outcome.MonthsToPayoff
		}
	}

	return ConsolidationResult{
		CombinedBalance:         combined,
		CurrentMonthlyPayment:   current.TotalMonthlyPayment,
		CurrentTotalInterest:    current.TotalInterest,
		CurrentPayoffMonths:     maxMonths,
		OfferMonthlyPayment:     offerPayment,
		OfferTotalInterest:      offerInterest,
		MonthlyPaymentSavings:   current.TotalMonthlyPayment - offerPayment,
		InterestSavings:         current.TotalInterest - offerInterest,
		ConsolidationWorthwhile: offerInterest < current.TotalInterest,
	}, nil
}

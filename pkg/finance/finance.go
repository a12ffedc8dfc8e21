// Package finance implements the small money calculators: tip splitting
// and sales tax.
package finance

import (
	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// TipInput holds a bill, gratuity percentage, and party size.
type TipInput struct {
	BillAmount float64 `json:"billAmount"`
	TipPercent float64 `json:"tipPercent"`
	SplitCount int     `json:"splitCount"`
}

// TipResult reports the gratuity and per-person shares.
type TipResult struct {
	TipAmount      float64 `json:"tipAmount"`
	TotalAmount    float64 `json:"totalAmount"`
	PerPersonTip   float64 `json:"perPersonTip"`
	PerPersonTotal float64 `json:"perPersonTotal"`
}

// Tip computes the gratuity on a bill and splits the total across the
// party. SplitCount defaults to 1 when unset.
func Tip(input TipInput) (TipResult, error) {
	if err := validation.RequirePositive("billAmount", input.BillAmount); err != nil {
		return TipResult{}, err
	}
	if err := validation.RequireRange("tipPercent", input.TipPercent, 0, 100); err != nil {
		return TipResult{}, err
	}
	split := input.SplitCount
	if split == 0 {
		split = 1
	}
	if split < 1 {
		return TipResult{}, validation.NewError("splitCount", "must be at least 1, got %d", split)
	}

	tip := input.BillAmount * input.TipPercent / constants.PercentageMultiplier
	total := input.BillAmount + tip
	people := float64(split)

	return TipResult{
		TipAmount:      tip,
		TotalAmount:    total,
		PerPersonTip:   tip / people,
		PerPersonTotal: total / people,
	}, nil
}

// SalesTaxInput holds a price and tax rate. When PriceIncludesTax is set
// the price is treated as gross and the net price is backed out.
type SalesTaxInput struct {
	Price            float64 `json:"price"`
	TaxPercent       float64 `json:"taxPercent"`
	PriceIncludesTax bool    `json:"priceIncludesTax"`
}

// SalesTaxResult reports the net price, tax amount, and gross total.
type SalesTaxResult struct {
	NetPrice   float64 `json:"netPrice"`
	TaxAmount  float64 `json:"taxAmount"`
	TotalPrice float64 `json:"totalPrice"`
}

// SalesTax computes the tax on a price either forward (net to gross) or
// backward (gross to net).
func SalesTax(input SalesTaxInput) (SalesTaxResult, error) {
	if err := validation.RequirePositive("price", input.Price); err != nil {
		return SalesTaxResult{}, err
	}
	if err := validation.RequireNonNegative("taxPercent", input.TaxPercent); err != nil {
		return SalesTaxResult{}, err
	}

	rate := input.TaxPercent / constants.PercentageMultiplier
	if input.PriceIncludesTax {
		net := input.Price / (1 + rate)
		return SalesTaxResult{
			NetPrice:   net,
			TaxAmount:  input.Price - net,
			TotalPrice: input.Price,
		}, nil
	}

	tax := input.Price * rate
	return SalesTaxResult{
		NetPrice:   input.Price,
		TaxAmount:  tax,
		TotalPrice: input.Price + tax,
	}, nil
}

package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

func TestTip(t *testing.T) {
	result, err := Tip(TipInput{BillAmount: 50, TipPercent: 20, SplitCount: 2})
	if err != nil {
		t.Fatalf("Tip() error = %v", err)
	}

	if math.Abs(result.TipAmount-10) > 1e-9 {
		t.Errorf("TipAmount = %v, want 10", result.TipAmount)
	}
	if math.Abs(result.TotalAmount-60) > 1e-9 {
		t.Errorf("TotalAmount = %v, want 60", result.TotalAmount)
	}
	if math.Abs(result.PerPersonTip-5) > 1e-9 {
		t.Errorf("PerPersonTip = %v, want 5", result.PerPersonTip)
	}
	if math.Abs(result.PerPersonTotal-30) > 1e-9 {
		t.Errorf("PerPersonTotal = %v, want 30", result.PerPersonTotal)
	}
}

func TestTipDefaultsSplitToOne(t *testing.T) {
	result, err := Tip(TipInput{BillAmount: 80, TipPercent: 15})
	if err != nil {
		t.Fatalf("Tip() error = %v", err)
	}
	if result.PerPersonTotal != result.TotalAmount {
		t.Errorf("PerPersonTotal = %v, want the un-split total %v", result.PerPersonTotal, result.TotalAmount)
	}
}

func TestTipZeroPercent(t *testing.T) {
	result, err := Tip(TipInput{BillAmount: 40, TipPercent: 0, SplitCount: 4})
	if err != nil {
		t.Fatalf("Tip() error = %v", err)
	}
	if result.TipAmount != 0 {
		t.Errorf("TipAmount = %v, want 0", result.TipAmount)
	}
	if math.Abs(result.PerPersonTotal-10) > 1e-9 {
		t.Errorf("PerPersonTotal = %v, want 10", result.PerPersonTotal)
	}
}

func TestTipValidation(t *testing.T) {
	tests := []struct {
		name  string
		input TipInput
		field string
	}{
		{"zero bill", TipInput{TipPercent: 20}, "billAmount"},
		{"negative tip", TipInput{BillAmount: 50, TipPercent: -5}, "tipPercent"},
		{"tip above 100", TipInput{BillAmount: 50, TipPercent: 150}, "tipPercent"},
		{"negative split", TipInput{BillAmount: 50, TipPercent: 20, SplitCount: -2}, "splitCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tip(tt.input)
			var ve *validation.Error
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("error field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestSalesTaxForward(t *testing.T) {
	result, err := SalesTax(SalesTaxInput{Price: 100, TaxPercent: 8.25})
	if err != nil {
		t.Fatalf("SalesTax() error = %v", err)
	}
	if math.Abs(result.NetPrice-100) > 1e-9 {
		t.Errorf("NetPrice = %v, want 100", result.NetPrice)
	}
	if math.Abs(result.TaxAmount-8.25) > 1e-9 {
		t.Errorf("TaxAmount = %v, want 8.25", result.TaxAmount)
	}
	if math.Abs(result.TotalPrice-108.25) > 1e-9 {
		t.Errorf("TotalPrice = %v, want 108.25", result.TotalPrice)
	}
}

func TestSalesTaxReverse(t *testing.T) {
	result, err := SalesTax(SalesTaxInput{Price: 108.25, TaxPercent: 8.25, PriceIncludesTax: true})
	if err != nil {
		t.Fatalf("SalesTax() error = %v", err)
	}
	if math.Abs(result.NetPrice-100) > 1e-9 {
		t.Errorf("NetPrice = %v, want 100", result.NetPrice)
	}
	if math.Abs(result.TaxAmount-8.25) > 1e-9 {
		t.Errorf("TaxAmount = %v, want 8.25", result.TaxAmount)
	}
	if result.TotalPrice != 108.25 {
		t.Errorf("TotalPrice = %v, want the gross input 108.25", result.TotalPrice)
	}
}

func TestSalesTaxValidation(t *testing.T) {
	if _, err := SalesTax(SalesTaxInput{Price: 0, TaxPercent: 5}); !validation.IsValidationError(err) {
		t.Errorf("zero price error = %v, want validation error", err)
	}
	if _, err := SalesTax(SalesTaxInput{Price: 100, TaxPercent: -1}); !validation.IsValidationError(err) {
		t.Errorf("negative tax error = %v, want validation error", err)
	}
}

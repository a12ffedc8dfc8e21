package numbers

import (
	"errors"
	"math"
	"testing"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"48 and 18", 48, 18, 6},
		{"coprime", 17, 13, 1},
		{"equal", 42, 42, 42},
		{"one divides the other", 12, 60, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GCD(tt.a, tt.b)
			if err != nil {
				t.Fatalf("GCD(%d, %d) error = %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestGCDRejectsNonPositive(t *testing.T) {
	for _, pair := range [][2]int64{{0, 5}, {5, 0}, {-4, 6}, {6, -4}} {
		_, err := GCD(pair[0], pair[1])
		if !validation.IsValidationError(err) {
			t.Errorf("GCD(%d, %d) error = %v, want validation error", pair[0], pair[1], err)
		}
	}
}

func TestLCM(t *testing.T) {
	got, err := LCM(4, 6)
	if err != nil {
		t.Fatalf("LCM() error = %v", err)
	}
	if got != 12 {
		t.Errorf("LCM(4, 6) = %d, want 12", got)
	}

	// gcd(a,b) * lcm(a,b) == a * b
	a, b := int64(48), int64(18)
	divisor, _ := GCD(a, b)
	multiple, _ := LCM(a, b)
	if divisor*multiple != a*b {
		t.Errorf("gcd*lcm = %d, want %d", divisor*multiple, a*b)
	}
}

func TestLCMOverflow(t *testing.T) {
	// 2^62 and 3 are coprime, so their lcm is 3*2^62 > MaxInt64.
	_, err := LCM(1<<62, 3)
	if !validation.IsValidationError(err) {
		t.Errorf("LCM(2^62, 3) error = %v, want validation error", err)
	}
}

func TestFractionOverflow(t *testing.T) {
	huge := Fraction{math.MaxInt64, 1}

	if _, err := huge.Add(Fraction{1, 1}); !validation.IsValidationError(err) {
		t.Errorf("Add overflow error = %v, want validation error", err)
	}
	if _, err := huge.Subtract(Fraction{-1, 1}); !validation.IsValidationError(err) {
		t.Errorf("Subtract overflow error = %v, want validation error", err)
	}
	if _, err := huge.Multiply(Fraction{2, 1}); !validation.IsValidationError(err) {
		t.Errorf("Multiply overflow error = %v, want validation error", err)
	}
	if _, err := huge.Divide(Fraction{1, 2}); !validation.IsValidationError(err) {
		t.Errorf("Divide overflow error = %v, want validation error", err)
	}
	if _, err := (Fraction{math.MinInt64, 2}).Simplify(); !validation.IsValidationError(err) {
		t.Errorf("Simplify(MinInt64) error = %v, want validation error", err)
	}

	// In-range arithmetic is unaffected.
	got, err := (Fraction{1 << 31, 3}).Multiply(Fraction{3, 1 << 31})
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	if got != (Fraction{1, 1}) {
		t.Errorf("Multiply() = %v, want 1/1", got)
	}
}

func TestFractionSimplify(t *testing.T) {
	tests := []struct {
		name  string
		input Fraction
		want  Fraction
	}{
		{"reducible", Fraction{6, 8}, Fraction{3, 4}},
		{"already reduced", Fraction{3, 4}, Fraction{3, 4}},
		{"zero numerator", Fraction{0, 7}, Fraction{0, 1}},
		{"negative numerator", Fraction{-6, 8}, Fraction{-3, 4}},
		{"negative denominator", Fraction{6, -8}, Fraction{-3, 4}},
		{"both negative", Fraction{-6, -8}, Fraction{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Simplify()
			if err != nil {
				t.Fatalf("Simplify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Simplify(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFractionArithmetic(t *testing.T) {
	a := Fraction{1, 2}
	b := Fraction{1, 3}

	tests := []struct {
		name string
		op   func(Fraction, Fraction) (Fraction, error)
		want Fraction
	}{
		{"add", Fraction.Add, Fraction{5, 6}},
		{"subtract", Fraction.Subtract, Fraction{1, 6}},
		{"multiply", Fraction.Multiply, Fraction{1, 6}},
		{"divide", Fraction.Divide, Fraction{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			if err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.name, a, b, got, tt.want)
			}
		})
	}
}

func TestFractionAddReturnsLowestTerms(t *testing.T) {
	got, err := Fraction{1, 4}.Add(Fraction{1, 4})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got != (Fraction{1, 2}) {
		t.Errorf("1/4 + 1/4 = %v, want 1/2", got)
	}
}

func TestFractionDivideByZeroValue(t *testing.T) {
	_, err := Fraction{1, 2}.Divide(Fraction{0, 5})
	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "divisor" {
		t.Errorf("error field = %q, want %q", ve.Field, "divisor")
	}
}

func TestFractionZeroDenominator(t *testing.T) {
	if _, err := (Fraction{1, 0}).Simplify(); !validation.IsValidationError(err) {
		t.Errorf("Simplify with zero denominator error = %v, want validation error", err)
	}
	if _, err := (Fraction{1, 2}).Add(Fraction{1, 0}); !validation.IsValidationError(err) {
		t.Errorf("Add with zero denominator error = %v, want validation error", err)
	}
}

func TestFractionString(t *testing.T) {
	if got := (Fraction{-3, 4}).String(); got != "-3/4" {
		t.Errorf("String() = %q, want %q", got, "-3/4")
	}
}

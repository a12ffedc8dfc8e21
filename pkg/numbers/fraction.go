package numbers

import (
	"fmt"
	"math"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// Fraction is a rational number. A normalized fraction carries its sign
// on the numerator and has a positive denominator.
type Fraction struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// Simplify reduces the fraction to lowest terms. Simplifying an already
// simplified fraction returns it unchanged.
func (f Fraction) Simplify() (Fraction, error) {
	if f.Denominator == 0 {
		return Fraction{}, validation.NewError("denominator", "must not be zero")
	}
	if f.Numerator == 0 {
		return Fraction{Numerator: 0, Denominator: 1}, nil
	}
	if f.Numerator == math.MinInt64 || f.Denominator == math.MinInt64 {
		return Fraction{}, overflowError()
	}

	sign := int64(1)
	if (f.Numerator < 0) != (f.Denominator < 0) {
		sign = -1
	}
	numerator := abs(f.Numerator)
	denominator := abs(f.Denominator)
	divisor := gcd(numerator, denominator)

	return Fraction{
		Numerator:   sign * numerator / divisor,
		Denominator: denominator / divisor,
	}, nil
}

// Add returns f + other in lowest terms. Intermediate cross products
// outside the int64 range are rejected rather than wrapped.
func (f Fraction) Add(other Fraction) (Fraction, error) {
	if err := requireDenominators(f, other); err != nil {
		return Fraction{}, err
	}
	left, right, denominator, err := crossTerms(f, other)
	if err != nil {
		return Fraction{}, err
	}
	numerator, err := checkedAdd(left, right)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Numerator: numerator, Denominator: denominator}.Simplify()
}

// Subtract returns f - other in lowest terms.
func (f Fraction) Subtract(other Fraction) (Fraction, error) {
	if err := requireDenominators(f, other); err != nil {
		return Fraction{}, err
	}
	left, right, denominator, err := crossTerms(f, other)
	if err != nil {
		return Fraction{}, err
	}
	numerator, err := checkedSub(left, right)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Numerator: numerator, Denominator: denominator}.Simplify()
}

// Multiply returns f * other in lowest terms.
func (f Fraction) Multiply(other Fraction) (Fraction, error) {
	if err := requireDenominators(f, other); err != nil {
		return Fraction{}, err
	}
	numerator, err := checkedMul(f.Numerator, other.Numerator)
	if err != nil {
		return Fraction{}, err
	}
	denominator, err := checkedMul(f.Denominator, other.Denominator)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Numerator: numerator, Denominator: denominator}.Simplify()
}

// Divide returns f / other in lowest terms. Dividing by a zero-valued
// fraction is rejected.
func (f Fraction) Divide(other Fraction) (Fraction, error) {
	if err := requireDenominators(f, other); err != nil {
		return Fraction{}, err
	}
	if other.Numerator == 0 {
		return Fraction{}, validation.NewError("divisor", "must not be zero")
	}
	numerator, err := checkedMul(f.Numerator, other.Denominator)
	if err != nil {
		return Fraction{}, err
	}
	denominator, err := checkedMul(f.Denominator, other.Numerator)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Numerator: numerator, Denominator: denominator}.Simplify()
}

// crossTerms computes the two cross products and the common denominator
// used by Add and Subtract.
func crossTerms(f, other Fraction) (left, right, denominator int64, err error) {
	if left, err = checkedMul(f.Numerator, other.Denominator); err != nil {
		return 0, 0, 0, err
	}
	if right, err = checkedMul(other.Numerator, f.Denominator); err != nil {
		return 0, 0, 0, err
	}
	if denominator, err = checkedMul(f.Denominator, other.Denominator); err != nil {
		return 0, 0, 0, err
	}
	return left, right, denominator, nil
}

func requireDenominators(fractions ...Fraction) error {
	for _, f := range fractions {
		if f.Denominator == 0 {
			return validation.NewError("denominator", "must not be zero")
		}
	}
	return nil
}

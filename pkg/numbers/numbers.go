// Package numbers provides integer utilities: greatest common divisor,
// least common multiple, and fraction arithmetic.
package numbers

import (
	"math"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// GCD computes the greatest common divisor of two positive integers via
// the Euclidean algorithm.
func GCD(a, b int64) (int64, error) {
	if a <= 0 {
		return 0, validation.NewError("a", "must be a positive integer, got %d", a)
	}
	if b <= 0 {
		return 0, validation.NewError("b", "must be a positive integer, got %d", b)
	}
	return gcd(a, b), nil
}

// LCM computes the least common multiple of two positive integers.
func LCM(a, b int64) (int64, error) {
	divisor, err := GCD(a, b)
	if err != nil {
		return 0, err
	}
	return checkedMul(a/divisor, b)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func overflowError() error {
	return validation.NewError("result", "value overflows the 64-bit integer range")
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, overflowError()
	}
	product := a * b
	if product/b != a {
		return 0, overflowError()
	}
	return product, nil
}

func checkedAdd(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum <= 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, overflowError()
	}
	return sum, nil
}

func checkedSub(a, b int64) (int64, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, overflowError()
	}
	return diff, nil
}

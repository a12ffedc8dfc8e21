// Package password generates random passwords and reports their entropy.
package password

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"

	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// Options selects the length and character classes for generation.
type Options struct {
	Length    int  `json:"length"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// Result holds a generated password and its entropy estimate.
type Result struct {
	Password    string  `json:"password"`
	EntropyBits float64 `json:"entropyBits"`
	Strength    string  `json:"strength"`
}

func (o Options) pool() (string, error) {
	if o.Length < constants.MinPasswordLength || o.Length > constants.MaxPasswordLength {
		return "", validation.NewError("length", "must be between %d and %d, got %d",
			constants.MinPasswordLength, constants.MaxPasswordLength, o.Length)
	}

	pool := ""
	if o.Lowercase {
		pool += lowercaseChars
	}
	if o.Uppercase {
		pool += uppercaseChars
	}
	if o.Digits {
		pool += digitChars
	}
	if o.Symbols {
		pool += symbolChars
	}
	if pool == "" {
		return "", validation.NewError("characterClasses", "at least one character class must be enabled")
	}
	return pool, nil
}

// Entropy returns the theoretical entropy in bits for passwords drawn
// uniformly from the enabled classes: length * log2(pool size). Enabling
// more classes at equal length never decreases entropy.
func Entropy(opts Options) (float64, error) {
	pool, err := opts.pool()
	if err != nil {
		return 0, err
	}
	return float64(opts.Length) * math.Log2(float64(len(pool))), nil
}

// Generate draws a password uniformly at random from the enabled classes
// using crypto/rand.
func Generate(opts Options) (Result, error) {
	pool, err := opts.pool()
	if err != nil {
		return Result{}, err
	}

	chars := make([]byte, opts.Length)
	poolSize := big.NewInt(int64(len(pool)))
	for i := range chars {
		index, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return Result{}, fmt.Errorf("failed to draw random index: %w", err)
		}
		chars[i] = pool[index.Int64()]
	}

	entropy := float64(opts.Length) * math.Log2(float64(len(pool)))
	return Result{
		Password:    string(chars),
		EntropyBits: entropy,
		Strength:    strength(entropy),
	}, nil
}

func strength(entropyBits float64) string {
	switch {
	case entropyBits < 28:
		return "weak"
	case entropyBits < 36:
		return "fair"
	case entropyBits < 60:
		return "good"
	default:
		return "strong"
	}
}

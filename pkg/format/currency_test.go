package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"simple", 42.5, "$42.50"},
		{"thousands separator", 1234.56, "$1,234.56"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"negative", -1234.56, "-$1,234.56"},
		{"zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.want {
				t.Errorf("Currency(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(6.5); got != "6.50%" {
		t.Errorf("Percent(6.5) = %q, want %q", got, "6.50%")
	}
	if got := Percent(0); got != "0.00%" {
		t.Errorf("Percent(0) = %q, want %q", got, "0.00%")
	}
}

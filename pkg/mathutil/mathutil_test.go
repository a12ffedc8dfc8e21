package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"round up", 1.005000001, 1.01},
		{"round down", 1.0049, 1.0},
		{"negative", -2.675000001, -2.68},
		{"already rounded", 3.14, 3.14},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, want true")
	}
	if !IsZero(-0.01) {
		t.Error("IsZero(-0.01) = false, want true")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, want false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.005, 0.01) {
		t.Error("WithinTolerance(100, 100.005, 0.01) = false, want true")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Error("WithinTolerance(100, 100.02, 0.01) = true, want false")
	}
}

func TestWithinRelativeTolerance(t *testing.T) {
	// 1e-6 relative on a million-scale value allows ~1 unit of drift.
	if !WithinRelativeTolerance(1_000_000, 1_000_000.5, 1e-6) {
		t.Error("large values within relative tolerance reported as outside")
	}
	if WithinRelativeTolerance(1_000_000, 1_000_002, 1e-6) {
		t.Error("large values outside relative tolerance reported as within")
	}
	if !WithinRelativeTolerance(0, 0, 1e-9) {
		t.Error("zero against zero should always agree")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("IsFinite(1.5) = false, want true")
	}
	if IsFinite(math.NaN()) {
		t.Error("IsFinite(NaN) = true, want false")
	}
	if IsFinite(math.Inf(1)) {
		t.Error("IsFinite(+Inf) = true, want false")
	}
	if IsFinite(math.Inf(-1)) {
		t.Error("IsFinite(-Inf) = true, want false")
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(200, 6.5); got != 13 {
		t.Errorf("ApplyPercentage(200, 6.5) = %v, want 13", got)
	}
	if got := ApplyPercentage(100, 0); got != 0 {
		t.Errorf("ApplyPercentage(100, 0) = %v, want 0", got)
	}
}

package health

import (
	"errors"
	"math"
	"testing"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

func TestBodyFat(t *testing.T) {
	tests := []struct {
		name         string
		input        BodyFatInput
		wantBMI      float64
		wantBodyFat  float64
		wantCategory string
	}{
		{
			name:         "male average",
			input:        BodyFatInput{Sex: SexMale, AgeYears: 30, HeightCm: 180, WeightKg: 81},
			wantBMI:      25.0,
			wantBodyFat:  20.7, // 1.20*25 + 0.23*30 - 10.8 - 5.4
			wantCategory: "average",
		},
		{
			name:         "female average",
			input:        BodyFatInput{Sex: SexFemale, AgeYears: 25, HeightCm: 165, WeightKg: 58},
			wantBMI:      21.3039,
			wantBodyFat:  25.9147,
			wantCategory: "average",
		},
		{
			name:         "male fit",
			input:        BodyFatInput{Sex: SexMale, AgeYears: 22, HeightCm: 185, WeightKg: 75},
			wantBMI:      21.9138,
			wantBodyFat:  15.1566,
			wantCategory: "fit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BodyFat(tt.input)
			if err != nil {
				t.Fatalf("BodyFat() error = %v", err)
			}
			if math.Abs(result.BMI-tt.wantBMI) > 0.001 {
				t.Errorf("BMI = %.4f, want %.4f", result.BMI, tt.wantBMI)
			}
			if math.Abs(result.BodyFatPercent-tt.wantBodyFat) > 0.001 {
				t.Errorf("BodyFatPercent = %.4f, want %.4f", result.BodyFatPercent, tt.wantBodyFat)
			}
			if result.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", result.Category, tt.wantCategory)
			}
		})
	}
}

func TestBodyFatValidation(t *testing.T) {
	tests := []struct {
		name  string
		input BodyFatInput
		field string
	}{
		{"unknown sex", BodyFatInput{Sex: "other", AgeYears: 30, HeightCm: 180, WeightKg: 80}, "sex"},
		{"age too low", BodyFatInput{Sex: SexMale, AgeYears: 17, HeightCm: 180, WeightKg: 80}, "ageYears"},
		{"age too high", BodyFatInput{Sex: SexMale, AgeYears: 81, HeightCm: 180, WeightKg: 80}, "ageYears"},
		{"zero height", BodyFatInput{Sex: SexMale, AgeYears: 30, WeightKg: 80}, "heightCm"},
		{"zero weight", BodyFatInput{Sex: SexMale, AgeYears: 30, HeightCm: 180}, "weightKg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BodyFat(tt.input)
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

func TestCalories(t *testing.T) {
	result, err := Calories(CalorieInput{
		Sex:           SexMale,
		AgeYears:      30,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: "sedentary",
	})
	if err != nil {
		t.Fatalf("Calories() error = %v", err)
	}

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	if math.Abs(result.BMR-1780) > 1e-9 {
		t.Errorf("BMR = %v, want 1780", result.BMR)
	}
	if math.Abs(result.MaintenanceDaily-2136) > 1e-9 {
		t.Errorf("MaintenanceDaily = %v, want 2136", result.MaintenanceDaily)
	}
	if math.Abs(result.WeightLossDaily-1636) > 1e-9 {
		t.Errorf("WeightLossDaily = %v, want 1636", result.WeightLossDaily)
	}
	if math.Abs(result.WeightGainDaily-2636) > 1e-9 {
		t.Errorf("WeightGainDaily = %v, want 2636", result.WeightGainDaily)
	}
}

func TestCaloriesFemale(t *testing.T) {
	result, err := Calories(CalorieInput{
		Sex:           SexFemale,
		AgeYears:      25,
		HeightCm:      165,
		WeightKg:      60,
		ActivityLevel: "moderate",
	})
	if err != nil {
		t.Fatalf("Calories() error = %v", err)
	}

	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	if math.Abs(result.BMR-1345.25) > 1e-9 {
		t.Errorf("BMR = %v, want 1345.25", result.BMR)
	}
	if math.Abs(result.MaintenanceDaily-1345.25*1.55) > 1e-9 {
		t.Errorf("MaintenanceDaily = %v, want %v", result.MaintenanceDaily, 1345.25*1.55)
	}
}

func TestCaloriesUnknownActivityLevel(t *testing.T) {
	_, err := Calories(CalorieInput{
		Sex:           SexMale,
		AgeYears:      30,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: "couch",
	})
	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "activityLevel" {
		t.Errorf("error field = %q, want %q", ve.Field, "activityLevel")
	}
}

func TestPace(t *testing.T) {
	result, err := Pace(PaceInput{Distance: 10, DistanceUnit: "km", Minutes: 50})
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}

	if result.PacePerKm != "5:00" {
		t.Errorf("PacePerKm = %q, want %q", result.PacePerKm, "5:00")
	}
	if math.Abs(result.SecondsPerKm-300) > 1e-9 {
		t.Errorf("SecondsPerKm = %v, want 300", result.SecondsPerKm)
	}
	if math.Abs(result.SpeedKmh-12) > 1e-9 {
		t.Errorf("SpeedKmh = %v, want 12", result.SpeedKmh)
	}
	if result.PacePerMile != "8:03" {
		t.Errorf("PacePerMile = %q, want %q", result.PacePerMile, "8:03")
	}
}

func TestPaceMiles(t *testing.T) {
	// Marathon distance in just under 3:30.
	result, err := Pace(PaceInput{Distance: 26.2, DistanceUnit: "mi", Hours: 3, Minutes: 29, Seconds: 45})
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}
	if result.PacePerMile != "8:00" {
		t.Errorf("PacePerMile = %q, want %q", result.PacePerMile, "8:00")
	}
	if math.Abs(result.SpeedMph-26.2/3.495833333) > 0.001 {
		t.Errorf("SpeedMph = %v, want %v", result.SpeedMph, 26.2/3.495833333)
	}
}

func TestPaceDefaultsToKilometers(t *testing.T) {
	withUnit, err := Pace(PaceInput{Distance: 5, DistanceUnit: "km", Minutes: 25})
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}
	withoutUnit, err := Pace(PaceInput{Distance: 5, Minutes: 25})
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}
	if withUnit != withoutUnit {
		t.Errorf("empty unit result %+v differs from km result %+v", withoutUnit, withUnit)
	}
}

func TestPaceValidation(t *testing.T) {
	tests := []struct {
		name  string
		input PaceInput
		field string
	}{
		{"zero distance", PaceInput{Minutes: 50}, "distance"},
		{"zero duration", PaceInput{Distance: 10}, "duration"},
		{"negative component", PaceInput{Distance: 10, Minutes: -5}, "duration"},
		{"unknown unit", PaceInput{Distance: 10, DistanceUnit: "furlongs", Minutes: 50}, "distanceUnit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pace(tt.input)
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

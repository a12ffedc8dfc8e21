// Package health implements the health calculators: body-fat estimate,
// daily calorie needs, and running pace.
package health

import (
	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// Sex selects the sex-specific branch of the body composition formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func validateSex(sex Sex) error {
	if sex != SexMale && sex != SexFemale {
		return validation.NewError("sex", "must be %q or %q, got %q", SexMale, SexFemale, sex)
	}
	return nil
}

func validateAge(age int) error {
	if age < constants.MinAgeYears || age > constants.MaxAgeYears {
		return validation.NewError("ageYears", "must be between %d and %d, got %d",
			constants.MinAgeYears, constants.MaxAgeYears, age)
	}
	return nil
}

// BodyFatInput holds the measurements for a body-fat estimate.
type BodyFatInput struct {
	Sex      Sex     `json:"sex"`
	AgeYears int     `json:"ageYears"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
}

// BodyFatResult reports BMI and the estimated body-fat percentage.
type BodyFatResult struct {
	BMI            float64 `json:"bmi"`
	BodyFatPercent float64 `json:"bodyFatPercent"`
	Category       string  `json:"category"`
}

// BodyFat estimates body-fat percentage from BMI using the Deurenberg
// regression: 1.20*BMI + 0.23*age - 10.8*sex - 5.4 (sex: male 1, female 0).
func BodyFat(input BodyFatInput) (BodyFatResult, error) {
	if err := validateSex(input.Sex); err != nil {
		return BodyFatResult{}, err
	}
	if err := validateAge(input.AgeYears); err != nil {
		return BodyFatResult{}, err
	}
	if err := validation.RequirePositive("heightCm", input.HeightCm); err != nil {
		return BodyFatResult{}, err
	}
	if err := validation.RequirePositive("weightKg", input.WeightKg); err != nil {
		return BodyFatResult{}, err
	}

	heightM := input.HeightCm / 100
	bmi := input.WeightKg / (heightM * heightM)

	sexFactor := 0.0
	if input.Sex == SexMale {
		sexFactor = 1.0
	}
	bodyFat := 1.20*bmi + 0.23*float64(input.AgeYears) - 10.8*sexFactor - 5.4

	return BodyFatResult{
		BMI:            bmi,
		BodyFatPercent: bodyFat,
		Category:       bodyFatCategory(input.Sex, bodyFat),
	}, nil
}

func bodyFatCategory(sex Sex, percent float64) string {
	// American Council on Exercise ranges.
	type band struct {
		limit float64
		name  string
	}
	bands := []band{
		{6, "essential"}, {14, "athletic"}, {18, "fit"}, {25, "average"},
	}
	if sex == SexFemale {
		bands = []band{
			{14, "essential"}, {21, "athletic"}, {25, "fit"}, {32, "average"},
		}
	}
	for _, b := range bands {
		if percent < b.limit {
			return b.name
		}
	}
	return "obese"
}

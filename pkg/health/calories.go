package health

import (
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// Activity multipliers applied to basal metabolic rate.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalorieInput holds the parameters for a daily calorie estimate.
type CalorieInput struct {
	Sex           Sex     `json:"sex"`
	AgeYears      int     `json:"ageYears"`
	HeightCm      float64 `json:"heightCm"`
	WeightKg      float64 `json:"weightKg"`
	ActivityLevel string  `json:"activityLevel"`
}

// CalorieResult reports basal and adjusted daily calorie needs.
type CalorieResult struct {
	BMR              float64 `json:"bmr"`
	MaintenanceDaily float64 `json:"maintenanceDaily"`
	WeightLossDaily  float64 `json:"weightLossDaily"`
	WeightGainDaily  float64 `json:"weightGainDaily"`
}

// Calories estimates daily calorie needs using the Mifflin-St Jeor
// equation scaled by the activity factor. Loss/gain targets offset
// maintenance by 500 kcal.
func Calories(input CalorieInput) (CalorieResult, error) {
	if err := validateSex(input.Sex); err != nil {
		return CalorieResult{}, err
	}
	if err := validateAge(input.AgeYears); err != nil {
		return CalorieResult{}, err
	}
	if err := validation.RequirePositive("heightCm", input.HeightCm); err != nil {
		return CalorieResult{}, err
	}
	if err := validation.RequirePositive("weightKg", input.WeightKg); err != nil {
		return CalorieResult{}, err
	}
	factor, ok := activityFactors[input.ActivityLevel]
	if !ok {
		return CalorieResult{}, validation.NewError("activityLevel",
			"must be one of sedentary, light, moderate, active, very_active; got %q", input.ActivityLevel)
	}

	bmr := 10*input.WeightKg + 6.25*input.HeightCm - 5*float64(input.AgeYears)
	if input.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	maintenance := bmr * factor
	return CalorieResult{
		BMR:              bmr,
		MaintenanceDaily: maintenance,
		WeightLossDaily:  maintenance - 500,
		WeightGainDaily:  maintenance + 500,
	}, nil
}

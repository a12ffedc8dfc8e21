package health

import (
	"fmt"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

const kmPerMile = 1.609344

// PaceInput holds a completed distance and its elapsed time.
type PaceInput struct {
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distanceUnit"` // "km" or "mi"
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
}

// PaceResult reports pace and speed in metric and imperial units.
type PaceResult struct {
	PacePerKm      string  `json:"pacePerKm"`
	PacePerMile    string  `json:"pacePerMile"`
	SecondsPerKm   float64 `json:"secondsPerKm"`
	SecondsPerMile float64 `json:"secondsPerMile"`
	SpeedKmh       float64 `json:"speedKmh"`
	SpeedMph       float64 `json:"speedMph"`
}

// Pace converts a distance/duration pair into pace and speed figures.
func Pace(input PaceInput) (PaceResult, error) {
	if err := validation.RequirePositive("distance", input.Distance); err != nil {
		return PaceResult{}, err
	}
	if input.Hours < 0 || input.Minutes < 0 || input.Seconds < 0 {
		return PaceResult{}, validation.NewError("duration", "components must not be negative")
	}

	totalSeconds := float64(input.Hours*3600 + input.Minutes*60 + input.Seconds)
	if totalSeconds <= 0 {
		return PaceResult{}, validation.NewError("duration", "must be positive")
	}

	var distanceKm float64
	switch input.DistanceUnit {
	case "km", "":
		distanceKm = input.Distance
	case "mi":
		distanceKm = input.Distance * kmPerMile
	default:
		return PaceResult{}, validation.NewError("distanceUnit", "must be \"km\" or \"mi\", got %q", input.DistanceUnit)
	}

	secondsPerKm := totalSeconds / distanceKm
	secondsPerMile := secondsPerKm * kmPerMile
	hours := totalSeconds / 3600

	return PaceResult{
		PacePerKm:      formatPace(secondsPerKm),
		PacePerMile:    formatPace(secondsPerMile),
		SecondsPerKm:   secondsPerKm,
		SecondsPerMile: secondsPerMile,
		SpeedKmh:       distanceKm / hours,
		SpeedMph:       distanceKm / kmPerMile / hours,
	}, nil
}

func formatPace(secondsPer float64) string {
	total := int(secondsPer + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

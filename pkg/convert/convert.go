// Package convert performs unit conversions between units of the same
// category using factor tables relative to a base unit.
package convert

import (
	"sort"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

// Conversion categories.
const (
	CategoryLength      = "length"
	CategoryMass        = "mass"
	CategoryVolume      = "volume"
	CategoryTemperature = "temperature"
)

// Factors map units onto the category's base unit (meter, kilogram, liter).
var factors = map[string]map[string]float64{
	CategoryLength: {
		"mm": 0.001,
		"cm": 0.01,
		"m":  1,
		"km": 1000,
		"in": 0.0254,
		"ft": 0.3048,
		"yd": 0.9144,
		"mi": 1609.344,
	},
	CategoryMass: {
		"mg": 1e-6,
		"g":  0.001,
		"kg": 1,
		"t":  1000,
		"oz": 0.028349523125,
		"lb": 0.45359237,
		"st": 6.35029318,
	},
	CategoryVolume: {
		"ml":   0.001,
		"l":    1,
		"tsp":  0.00492892159375,
		"tbsp": 0.01478676478125,
		"cup":  0.2365882365,
		"pt":   0.473176473,
		"qt":   0.946352946,
		"gal":  3.785411784,
	},
}

// Convert converts value from one unit to another within a category.
// Temperature uses affine conversion; the other categories multiply
// through the base-unit factors.
func Convert(category, from, to string, value float64) (float64, error) {
	if category == CategoryTemperature {
		return convertTemperature(from, to, value)
	}

	table, ok := factors[category]
	if !ok {
		return 0, validation.NewError("category", "unknown category %q", category)
	}
	fromFactor, ok := table[from]
	if !ok {
		return 0, validation.NewError("from", "unknown %s unit %q", category, from)
	}
	toFactor, ok := table[to]
	if !ok {
		return 0, validation.NewError("to", "unknown %s unit %q", category, to)
	}

	return value * fromFactor / toFactor, nil
}

func convertTemperature(from, to string, value float64) (float64, error) {
	var celsius float64
	switch from {
	case "c":
		celsius = value
	case "f":
		celsius = (value - 32) * 5 / 9
	case "k":
		celsius = value - 273.15
	default:
		return 0, validation.NewError("from", "unknown temperature unit %q", from)
	}

	switch to {
	case "c":
		return celsius, nil
	case "f":
		return celsius*9/5 + 32, nil
	case "k":
		return celsius + 273.15, nil
	default:
		return 0, validation.NewError("to", "unknown temperature unit %q", to)
	}
}

// Units lists the supported units for a category in sorted order.
func Units(category string) ([]string, error) {
	if category == CategoryTemperature {
		return []string{"c", "f", "k"}, nil
	}
	table, ok := factors[category]
	if !ok {
		return nil, validation.NewError("category", "unknown category %q", category)
	}
	units := make([]string, 0, len(table))
	for unit := range table {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units, nil
}

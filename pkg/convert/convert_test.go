package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/Husnain585/Calculator-sub000/pkg/validation"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		category string
		from, to string
		value    float64
		want     float64
	}{
		{"km to mi", CategoryLength, "km", "mi", 10, 6.21371},
		{"ft to m", CategoryLength, "ft", "m", 1, 0.3048},
		{"identity", CategoryLength, "m", "m", 42, 42},
		{"kg to lb", CategoryMass, "kg", "lb", 5, 11.02311},
		{"oz to g", CategoryMass, "oz", "g", 1, 28.34952},
		{"gal to l", CategoryVolume, "gal", "l", 2, 7.57082},
		{"cup to ml", CategoryVolume, "cup", "ml", 1, 236.58824},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.category, tt.from, tt.to, tt.value)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Convert(%s, %s -> %s, %v) = %.6f, want %.5f", tt.category, tt.from, tt.to, tt.value, got, tt.want)
			}
		})
	}
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		value    float64
		want     float64
	}{
		{"freezing c to f", "c", "f", 0, 32},
		{"boiling f to c", "f", "c", 212, 100},
		{"absolute zero k to c", "k", "c", 0, -273.15},
		{"body temp c to k", "c", "k", 37, 310.15},
		{"f to k", "f", "k", 32, 273.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(CategoryTemperature, tt.from, tt.to, tt.value)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(temperature, %s -> %s, %v) = %v, want %v", tt.from, tt.to, tt.value, got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	value := 123.456
	there, err := Convert(CategoryMass, "kg", "lb", value)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	back, err := Convert(CategoryMass, "lb", "kg", there)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.Abs(back-value) > 1e-9 {
		t.Errorf("round trip = %v, want %v", back, value)
	}
}

func TestConvertUnknownInputs(t *testing.T) {
	tests := []struct {
		name     string
		category string
		from, to string
		field    string
	}{
		{"unknown category", "pressure", "pa", "bar", "category"},
		{"unknown from unit", CategoryLength, "furlong", "m", "from"},
		{"unknown to unit", CategoryLength, "m", "furlong", "to"},
		{"unknown temperature unit", CategoryTemperature, "r", "c", "from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.category, tt.from, tt.to, 1)
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

func TestUnits(t *testing.T) {
	units, err := Units(CategoryLength)
	if err != nil {
		t.Fatalf("Units() error = %v", err)
	}
	if len(units) != 8 {
		t.Errorf("got %d length units, want 8", len(units))
	}
	for i := 1; i < len(units); i++ {
		if units[i-1] >= units[i] {
			t.Fatalf("units not sorted: %q before %q", units[i-1], units[i])
		}
	}

	temps, err := Units(CategoryTemperature)
	if err != nil {
		t.Fatalf("Units() error = %v", err)
	}
	if len(temps) != 3 {
		t.Errorf("got %d temperature units, want 3", len(temps))
	}

	if _, err := Units("pressure"); !validation.IsValidationError(err) {
		t.Errorf("Units(pressure) error = %v, want validation error", err)
	}
}

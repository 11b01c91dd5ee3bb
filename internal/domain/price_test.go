package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePrice(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
		km   float64
		want string
	}{
		{"car", ModeCar, 100, "€15-30"},
		{"train", ModeTrain, 100, "€15-40"},
		{"walk short", ModeWalk, 0, "Free"},
		{"walk long", ModeWalk, 850, "Free"},
		{"bike at threshold", ModeBike, 20, "Free-€5"},
		{"bike just over threshold", ModeBike, 20.01, "€1-2"},
		{"bike long", ModeBike, 100, "€5-10"},
		{"plane", ModePlane, 1000, "€150-350"},
		{"bus uses default tier", ModeBus, 100, "€10-25"},
		{"ferry uses default tier", ModeFerry, 40, "€4-10"},
		{"unknown uses default tier", Mode("hovercraft"), 100, "€10-25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EstimatePrice(tc.mode, tc.km))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "1h 1m", FormatDuration(61))
	assert.Equal(t, "12.3 km", FormatDistance(12.3))
	assert.Equal(t, "0.0 km", FormatDistance(0))
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, 61, SecondsToMinutes(3661))
	assert.Equal(t, 12.3, MetersToKm(12345))
	assert.Equal(t, 0, SecondsToMinutes(29))
	assert.Equal(t, 1, SecondsToMinutes(30))
}

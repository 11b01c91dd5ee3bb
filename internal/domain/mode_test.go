package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderModeDisplayMapping(t *testing.T) {
	want := map[ProviderMode]Mode{
		ProviderDrive:   ModeCar,
		ProviderTransit: ModeTrain,
		ProviderWalk:    ModeWalk,
		ProviderBicycle: ModeBike,
	}
	for p, m := range want {
		assert.Equal(t, m, p.DisplayMode(), "provider mode %q", p)
		assert.Equal(t, p, m.ProviderMode(), "display mode %q", m)
	}

	assert.Equal(t, ModeCar, ProviderMode("ferry").DisplayMode())
	assert.Equal(t, ProviderDrive, Mode("zeppelin").ProviderMode())
	assert.Equal(t, ProviderDrive, ModeBus.ProviderMode())
	assert.Equal(t, ProviderTransit, ModeFerry.ProviderMode())
}

func TestGeometryModeTable(t *testing.T) {
	want := map[Mode]GeometryMode{
		ModeCar:   GeometryDrive,
		ModeBus:   GeometryDrive,
		ModeTrain: GeometryTransit,
		ModePlane: GeometryDrive,
		ModeWalk:  GeometryWalk,
		ModeBike:  GeometryBicycle,
		ModeFerry: GeometryTransit,
	}
	require.Len(t, want, len(Modes))
	for m, g := range want {
		assert.Equal(t, g, m.GeometryMode(), "mode %q", m)
	}
	assert.Equal(t, GeometryDrive, Mode("unicycle").GeometryMode())
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode(" Train ")
	assert.True(t, ok)
	assert.Equal(t, ModeTrain, m)

	m, ok = ParseMode("rocket")
	assert.False(t, ok)
	assert.Equal(t, NeutralColor, m.Color())
	assert.Equal(t, "🚩", m.Icon())
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("48.8566", " 2.3522")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lat: 48.8566, Lon: 2.3522}, c)
	assert.Equal(t, "48.8566,2.3522", c.Waypoint())

	for _, tc := range []struct{ lat, lon string }{
		{"abc", "2.35"},
		{"48.85", ""},
		{"NaN", "2.35"},
		{"48.85", "Inf"},
		{"91", "0"},
		{"0", "-180.5"},
	} {
		_, err := ParseCoordinates(tc.lat, tc.lon)
		assert.ErrorIs(t, err, ErrInvalidCoordinates, "lat=%q lon=%q", tc.lat, tc.lon)
	}
}

func TestLocationValidate(t *testing.T) {
	ok := Location{Name: "Paris", Coordinates: Coordinates{Lat: 48.8566, Lon: 2.3522}}
	assert.NoError(t, ok.Validate())

	bad := Location{Name: "Nowhere", Coordinates: Coordinates{Lat: math.NaN(), Lon: 0}}
	err := bad.Validate()
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.Contains(t, err.Error(), "Nowhere")
}

package geo

import (
	"math"
	"math/rand/v2"
	"testing"
	"travel-compare-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	paris = domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	rome  = domain.Coordinates{Lat: 41.9028, Lon: 12.4964}
)

func TestHaversineParisRome(t *testing.T) {
	d := HaversineKm(paris, rome)
	assert.InDelta(t, 1105.5, d, 2.0)
}

func TestHaversineSymmetricAndZero(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{paris, rome},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 51.5074, Lon: -0.1278}},
		{{Lat: 0, Lon: 179.9}, {Lat: 0, Lon: -179.9}},
		{{Lat: 89.9, Lon: 0}, {Lat: -89.9, Lon: 90}},
	}

	for _, p := range pairs {
		assert.Equal(t, HaversineKm(p[0], p[1]), HaversineKm(p[1], p[0]))
		assert.Equal(t, 0.0, HaversineKm(p[0], p[0]))
		assert.Greater(t, HaversineKm(p[0], p[1]), 0.0)
	}
}

func TestHaversineAntimeridian(t *testing.T) {
	d := HaversineKm(domain.Coordinates{Lat: 0, Lon: 179.9}, domain.Coordinates{Lat: 0, Lon: -179.9})
	assert.InDelta(t, 22.2, d, 0.1)
}

func antipode(c domain.Coordinates) domain.Coordinates {
	lon := c.Lon + 180
	if lon > 180 {
		lon -= 360
	}
	return domain.Coordinates{Lat: -c.Lat, Lon: lon}
}

func TestHaversineAntipodes(t *testing.T) {
	halfCircumference := math.Pi * EarthRadiusKm

	a := domain.Coordinates{Lat: -33.31245078, Lon: -9.57282694}
	d := HaversineKm(a, antipode(a))
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, halfCircumference, d, 0.001)

	assert.InDelta(t, halfCircumference, HaversineKm(domain.Coordinates{Lat: 90}, domain.Coordinates{Lat: -90}), 0.001)
	assert.InDelta(t, halfCircumference, HaversineKm(domain.Coordinates{Lon: -180}, domain.Coordinates{Lon: 0}), 0.001)
}

func TestHaversineRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	point := func() domain.Coordinates {
		return domain.Coordinates{Lat: rng.Float64()*180 - 90, Lon: rng.Float64()*360 - 180}
	}
	nudge := func(c domain.Coordinates) domain.Coordinates {
		return domain.Coordinates{
			Lat: math.Max(-90, math.Min(90, c.Lat+(rng.Float64()-0.5)*1e-6)),
			Lon: math.Max(-180, math.Min(180, c.Lon+(rng.Float64()-0.5)*1e-6)),
		}
	}

	for i := 0; i < 20000; i++ {
		a := point()
		var b domain.Coordinates
		switch i % 3 {
		case 0:
			b = point()
		case 1:
			b = antipode(a)
		default:
			b = nudge(antipode(a))
		}

		d := HaversineKm(a, b)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 || d > math.Pi*EarthRadiusKm+1e-6 {
			t.Fatalf("HaversineKm(%v, %v) = %v", a, b, d)
		}
		if back := HaversineKm(b, a); back != d {
			t.Fatalf("HaversineKm not symmetric for %v, %v: %v != %v", a, b, d, back)
		}
	}
}

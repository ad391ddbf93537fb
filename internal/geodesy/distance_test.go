package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/runlog/internal/units"
)

func lonLatDeg(lon, lat float64) LonLat {
	return LonLat{Lon: units.Degrees(lon).Radians(), Lat: units.Degrees(lat).Radians()}
}

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   LonLat
		expected float64
	}{
		{"new york to london", lonLatDeg(-74, 40+42.0/60), lonLatDeg(5.0/60, 51+32.0/60), 5533093.4},
		{"rounded new york to london", lonLatDeg(-74, 40.7), lonLatDeg(0.083, 51.533), 5533093},
		{"nebraska to kansas", lonLatDeg(-99.436554, 41.507483), lonLatDeg(-98.315949, 38.504048), 347300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.expected, HaversineDistance(tt.p1, tt.p2), 0.01)
		})
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	p1 := lonLatDeg(-74, 40.7)
	p2 := lonLatDeg(0.083, 51.533)
	assert.Equal(t, HaversineDistance(p1, p2), HaversineDistance(p2, p1))
}

func TestHaversineDistanceSamePoint(t *testing.T) {
	p := lonLatDeg(12.5, -33.9)
	assert.Zero(t, HaversineDistance(p, p))
}

func TestHaversineDistanceOneDegreeOfLatitude(t *testing.T) {
	got := HaversineDistance(lonLatDeg(0, 0), lonLatDeg(0, 1))
	assert.InDelta(t, MeanRadius*math.Pi/180, got, 1e-6)
}

func TestGNSSLonLat(t *testing.T) {
	ll := GNSS{Lat: 90, Lon: -180}.LonLat()
	assert.InDelta(t, -math.Pi, float64(ll.Lon), 1e-15)
	assert.InDelta(t, math.Pi/2, float64(ll.Lat), 1e-15)
}

func TestBearing(t *testing.T) {
	origin := GNSS{Lat: 51.5, Lon: -0.1}
	tests := []struct {
		name string
		to   GNSS
		want float64
	}{
		{"east", GNSS{Lat: 51.5, Lon: 0}, 0},
		{"north", GNSS{Lat: 51.6, Lon: -0.1}, math.Pi / 2},
		{"west", GNSS{Lat: 51.5, Lon: -0.2}, math.Pi},
		{"south", GNSS{Lat: 51.4, Lon: -0.1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, float64(Bearing(origin, tt.to)), 1e-9)
		})
	}
}

func TestPositionDelta(t *testing.T) {
	dx, dy := PositionDelta(0, 10)
	assert.InDelta(t, 10.0, dx, 1e-12)
	assert.InDelta(t, 0.0, dy, 1e-12)

	dx, dy = PositionDelta(math.Pi/2, 10)
	assert.InDelta(t, 0.0, dx, 1e-12)
	assert.InDelta(t, 10.0, dy, 1e-12)
}

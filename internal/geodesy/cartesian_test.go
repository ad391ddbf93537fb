package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/runlog/internal/units"
)

func TestGNSSToSpherical(t *testing.T) {
	s, err := GNSSToSpherical(GNSS{Lat: 90, Lon: 45, Alt: 10})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, float64(s.Theta), 1e-15)
	assert.InDelta(t, math.Pi/4, float64(s.Phi), 1e-15)
	assert.InDelta(t, MeanRadius+10, s.Radius, 1e-9)

	_, err = GNSSToSpherical(GNSS{Lat: -91})
	assert.ErrorIs(t, err, units.ErrInvalidCoordinate)

	_, err = GNSSToSpherical(GNSS{Alt: math.NaN()})
	assert.ErrorIs(t, err, units.ErrInvalidType)
}

func TestSphericalToEuclidean(t *testing.T) {
	tests := []struct {
		name string
		fix  GNSS
		want Vec3
	}{
		{"equator prime meridian", GNSS{Lat: 0, Lon: 0}, Vec3{X: MeanRadius}},
		{"equator 90E", GNSS{Lat: 0, Lon: 90}, Vec3{Y: MeanRadius}},
		{"north pole raised", GNSS{Lat: 90, Lon: 0, Alt: 10}, Vec3{Z: MeanRadius + 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GNSSToEuclidean(tt.fix)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-6)
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanDistance(Vec3{}, Vec3{X: 3, Y: 4}), 1e-15)
	assert.InDelta(t, 13.0, Vec3{X: 3, Y: 4, Z: 12}.Norm(), 1e-15)
}

func TestGNSSDistanceMatchesHaversineForShortHops(t *testing.T) {
	a := GNSS{Lat: 51.5, Lon: -0.1}
	b := GNSS{Lat: 51.501, Lon: -0.1}
	chord, err := GNSSDistance(a, b)
	require.NoError(t, err)
	arc := HaversineDistance(a.LonLat(), b.LonLat())
	assert.InDelta(t, 111.195, chord, 1e-3)
	assert.InDelta(t, arc, chord, 1e-5)
}

func TestGNSSDistanceChordShorterThanArc(t *testing.T) {
	a := GNSS{Lat: 0, Lon: 0}
	b := GNSS{Lat: 0, Lon: 90}
	chord, err := GNSSDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2*MeanRadius, chord, 1e-3)
	assert.Less(t, chord, HaversineDistance(a.LonLat(), b.LonLat()))
}

func TestGNSSDistanceInvalid(t *testing.T) {
	_, err := GNSSDistance(GNSS{Lat: 95}, GNSS{})
	assert.ErrorIs(t, err, units.ErrInvalidCoordinate)
	_, err = GNSSDistance(GNSS{}, GNSS{Lat: -95})
	assert.ErrorIs(t, err, units.ErrInvalidCoordinate)
}

func TestRelativeGNSSPosition(t *testing.T) {
	origin := GNSS{Lat: 0, Lon: 0, Alt: 0}
	up := GNSS{Lat: 0, Lon: 0, Alt: 25}
	d, err := RelativeGNSSPosition(up, origin)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, d.X, 1e-6)
	assert.InDelta(t, 0.0, d.Y, 1e-6)
	assert.InDelta(t, 0.0, d.Z, 1e-6)

	zero, err := RelativeGNSSPosition(origin, origin)
	require.NoError(t, err)
	assert.Equal(t, Vec3{}, zero)

	_, err = RelativeGNSSPosition(GNSS{Lat: 200}, origin)
	assert.ErrorIs(t, err, units.ErrInvalidCoordinate)
}

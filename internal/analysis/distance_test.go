package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/runlog/internal/geodesy"
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/units"
	"github.com/banshee-data/runlog/internal/wgs84"
)

const metersPerDegree = wgs84.MeanRadius * math.Pi / 180

// northbound returns n fixes 10 m apart heading due north from the equator
// at sea level, one second apart, as the receiver would report them.
func northbound(n int) []recording.Location {
	locs := make([]recording.Location, n)
	for i := range locs {
		locs[i] = recording.Location{
			TimeInterval: float64(i),
			Latitude:     units.Degrees(float64(i) * 10 / metersPerDegree),
			Speed:        10,
			Course:       0,
		}
	}
	return locs
}

func TestCumulativeDistance(t *testing.T) {
	got := CumulativeDistance(northbound(11))
	require.Len(t, got, 11)
	assert.Equal(t, 0.0, got[0])
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
	assert.InDelta(t, 100, got[10], 1e-6)
	assert.InDelta(t, 100, TotalDistance(northbound(11)), 1e-6)
}

func TestCumulativeDistanceShort(t *testing.T) {
	assert.Nil(t, CumulativeDistance(nil))
	assert.Equal(t, []float64{0}, CumulativeDistance(northbound(1)))
	assert.Nil(t, SegmentDistances(northbound(1)))
	assert.Equal(t, 0.0, TotalDistance(nil))
}

func TestChordPathLength(t *testing.T) {
	got, err := ChordPathLength(northbound(11))
	require.NoError(t, err)
	// chords are shorter than arcs, but not measurably at 10 m
	assert.InDelta(t, 100, got, 1e-6)
	// Earth-centred coordinates lose ~1e-10 m per hop to rounding.
	assert.LessOrEqual(t, got, TotalDistance(northbound(11))+1e-6)
}

func TestChordPathLengthInvalid(t *testing.T) {
	locs := northbound(2)
	locs[1].Altitude = math.NaN()
	_, err := ChordPathLength(locs)
	assert.ErrorIs(t, err, units.ErrInvalidType)
}

func TestMercatorPathLength(t *testing.T) {
	locs := []recording.Location{{Longitude: 0}, {Longitude: 1}}
	got, err := MercatorPathLength(locs)
	require.NoError(t, err)
	assert.InEpsilon(t, wgs84.SemiMajorAxis*math.Pi/180, got, 1e-12)

	_, err = MercatorPathLength([]recording.Location{{Latitude: 95}})
	assert.ErrorIs(t, err, units.ErrInvalidCoordinate)
}

func TestRelativePositions(t *testing.T) {
	locs := northbound(3)
	got, err := RelativePositions(locs, locs[0].GNSS())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, geodesy.Vec3{}, got[0])
	assert.InDelta(t, 20, got[2].Norm(), 1e-6)
}

func TestBounds(t *testing.T) {
	_, err := BoundsOf(nil)
	assert.ErrorIs(t, err, ErrNoLocations)

	b, err := BoundsOf([]recording.Location{
		{Longitude: -0.2, Latitude: 51.4},
		{Longitude: -0.1, Latitude: 51.6},
		{Longitude: -0.3, Latitude: 51.5},
	})
	require.NoError(t, err)
	assert.Equal(t, Bounds{MinLon: -0.3, MaxLon: -0.1, MinLat: 51.4, MaxLat: 51.6}, b)

	c := b.Center()
	assert.InDelta(t, -0.2, float64(c.X), 1e-12)
	assert.InDelta(t, 51.5, float64(c.Y), 1e-12)
}

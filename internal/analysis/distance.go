// Package analysis derives distances, dead-reckoned paths and R-R interval
// statistics from recorded runs.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/runlog/internal/geodesy"
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/wgs84"
)

// ErrNoLocations is returned when a calculation needs at least one fix.
var ErrNoLocations = errors.New("no locations")

// SegmentDistances returns the haversine distance in meters between each pair
// of consecutive locations.
func SegmentDistances(locs []recording.Location) []float64 {
	if len(locs) < 2 {
		return nil
	}
	out := make([]float64, len(locs)-1)
	for i := range out {
		out[i] = geodesy.HaversineDistance(locs[i].GNSS().LonLat(), locs[i+1].GNSS().LonLat())
	}
	return out
}

// CumulativeDistance returns the distance covered up to each location,
// starting at zero. Locations are taken in the order given; sort them first.
func CumulativeDistance(locs []recording.Location) []float64 {
	if len(locs) == 0 {
		return nil
	}
	out := make([]float64, len(locs))
	floats.CumSum(out[1:], SegmentDistances(locs))
	return out
}

// TotalDistance is the haversine path length in meters.
func TotalDistance(locs []recording.Location) float64 {
	return floats.Sum(SegmentDistances(locs))
}

// MercatorPathLength sums straight segments on the Mercator plane, scaling
// longitude by the equatorial radius and latitude by 2b/π. It is a poor
// distance measure away from the equator and is kept as a reference figure.
func MercatorPathLength(locs []recording.Location) (float64, error) {
	var total float64
	var prevX, prevY float64
	for i, loc := range locs {
		p, err := geodesy.Project(loc.GNSS())
		if err != nil {
			return 0, fmt.Errorf("location %d: %w", i, err)
		}
		x := wgs84.SemiMajorAxis * p.X
		y := 2 * wgs84.SemiMinorAxis * p.Y / math.Pi
		if i > 0 {
			total += math.Hypot(x-prevX, y-prevY)
		}
		prevX, prevY = x, y
	}
	return total, nil
}

// ChordPathLength sums the straight-line Earth-centred distances between
// consecutive fixes, altitude included.
func ChordPathLength(locs []recording.Location) (float64, error) {
	var total float64
	for i := 1; i < len(locs); i++ {
		d, err := geodesy.GNSSDistance(locs[i-1].GNSS(), locs[i].GNSS())
		if err != nil {
			return 0, fmt.Errorf("location %d: %w", i, err)
		}
		total += d
	}
	return total, nil
}

// RelativePositions returns every fix as an Earth-centred offset from origin.
func RelativePositions(locs []recording.Location, origin geodesy.GNSS) ([]geodesy.Vec3, error) {
	out := make([]geodesy.Vec3, len(locs))
	for i, loc := range locs {
		v, err := geodesy.RelativeGNSSPosition(loc.GNSS(), origin)
		if err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

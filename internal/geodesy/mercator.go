package geodesy

import (
	"fmt"
	"math"

	"github.com/banshee-data/runlog/internal/units"
)

// Mercator is a point on the Mercator plane in radian-derived units.
type Mercator struct {
	X float64
	Y float64
}

// ProjectLatitude returns the Mercator ordinate ln(tan(π/4 + φ/2)) for a
// latitude in degrees. The result diverges to ±Inf at the poles; callers that
// plot it must clip.
// See https://mathworld.wolfram.com/MercatorProjection.html
func ProjectLatitude(lat units.Degrees) (float64, error) {
	if err := units.CheckLatitude(lat); err != nil {
		return 0, err
	}
	phi := float64(lat.Radians())
	return math.Log(math.Tan(math.Pi/4 + phi/2)), nil
}

// ProjectLongitude returns the longitude in radians. Longitudes are not
// range checked.
func ProjectLongitude(lon units.Degrees) float64 {
	return float64(lon.Radians())
}

// ProjectLatitudes projects every latitude, stopping at the first invalid one.
func ProjectLatitudes(lats []units.Degrees) ([]float64, error) {
	out := make([]float64, len(lats))
	for i, lat := range lats {
		y, err := ProjectLatitude(lat)
		if err != nil {
			return nil, fmt.Errorf("latitude[%d]: %w", i, err)
		}
		out[i] = y
	}
	return out, nil
}

// ProjectLongitudes converts every longitude to radians.
func ProjectLongitudes(lons []units.Degrees) []float64 {
	out := make([]float64, len(lons))
	for i, lon := range lons {
		out[i] = ProjectLongitude(lon)
	}
	return out
}

// Project maps a fix onto the Mercator plane.
func Project(g GNSS) (Mercator, error) {
	if err := units.CheckLongitude(g.Lon); err != nil {
		return Mercator{}, err
	}
	y, err := ProjectLatitude(g.Lat)
	if err != nil {
		return Mercator{}, err
	}
	return Mercator{X: ProjectLongitude(g.Lon), Y: y}, nil
}

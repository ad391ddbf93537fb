// Package geodesy projects geographic coordinates onto a Mercator plane and
// computes great-circle, chord and planar-approximation distances on a
// spherical Earth.
//
// Only the WGS84 mean radius is used; there is no ellipsoidal geodesy here.
// Offsets and bearings are accurate for the short distances covered in a
// single run.
package geodesy

import (
	"github.com/banshee-data/runlog/internal/units"
	"github.com/banshee-data/runlog/internal/wgs84"
)

// MeanRadius is the sphere every distance in this package is measured on.
const MeanRadius = wgs84.MeanRadius

// GNSS is a receiver fix: latitude and longitude in degrees and altitude in
// meters above the mean sphere.
type GNSS struct {
	Lat units.Degrees
	Lon units.Degrees
	Alt float64
}

// Validate runs the shared coordinate guard.
func (g GNSS) Validate() error {
	if err := units.CheckLatitude(g.Lat); err != nil {
		return err
	}
	if err := units.CheckLongitude(g.Lon); err != nil {
		return err
	}
	return units.CheckFinite("altitude", g.Alt)
}

// LonLat is a position in radians, longitude first. HaversineDistance takes
// its arguments in this order.
type LonLat struct {
	Lon units.Radians
	Lat units.Radians
}

// LonLat converts the horizontal part of g to radians.
func (g GNSS) LonLat() LonLat {
	return LonLat{Lon: g.Lon.Radians(), Lat: g.Lat.Radians()}
}

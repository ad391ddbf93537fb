package analysis

import (
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/trackgeom"
	"github.com/banshee-data/runlog/internal/units"
)

// Bounds is the bounding box of a set of fixes in degrees.
type Bounds struct {
	MinLon, MaxLon units.Degrees
	MinLat, MaxLat units.Degrees
}

// BoundsOf returns the bounding box of locs.
func BoundsOf(locs []recording.Location) (Bounds, error) {
	if len(locs) == 0 {
		return Bounds{}, ErrNoLocations
	}
	b := Bounds{
		MinLon: locs[0].Longitude, MaxLon: locs[0].Longitude,
		MinLat: locs[0].Latitude, MaxLat: locs[0].Latitude,
	}
	for _, l := range locs[1:] {
		b.MinLon = min(b.MinLon, l.Longitude)
		b.MaxLon = max(b.MaxLon, l.Longitude)
		b.MinLat = min(b.MinLat, l.Latitude)
		b.MaxLat = max(b.MaxLat, l.Latitude)
	}
	return b, nil
}

// Center is the midpoint of the box, where a track overlay is anchored.
func (b Bounds) Center() trackgeom.Coord {
	return trackgeom.Coord{
		X: (b.MinLon + b.MaxLon) / 2,
		Y: (b.MinLat + b.MaxLat) / 2,
	}
}

package geodesy

import (
	"math"

	"github.com/banshee-data/runlog/internal/units"
)

// HaversineDistance returns the great-circle distance in meters between two
// positions given in radians.
func HaversineDistance(p1, p2 LonLat) float64 {
	lambda1, phi1 := float64(p1.Lon), float64(p1.Lat)
	lambda2, phi2 := float64(p2.Lon), float64(p2.Lat)

	sinDPhi := math.Sin((phi2 - phi1) / 2)
	sinDLambda := math.Sin((lambda2 - lambda1) / 2)
	h := sinDPhi*sinDPhi + math.Cos(phi1)*math.Cos(phi2)*sinDLambda*sinDLambda
	return 2 * MeanRadius * math.Asin(math.Sqrt(h))
}

// Bearing returns atan2(Δlat, Δlon) from p1 to p2: counter-clockwise from
// east on a flat plane. Curvature is ignored, so this is only meaningful over
// short distances.
func Bearing(p1, p2 GNSS) units.Radians {
	return units.Radians(math.Atan2(float64(p2.Lat-p1.Lat), float64(p2.Lon-p1.Lon)))
}

// PositionDelta resolves a distance travelled along theta into planar x/y
// offsets.
func PositionDelta(theta units.Radians, distance float64) (dx, dy float64) {
	return distance * math.Cos(float64(theta)), distance * math.Sin(float64(theta))
}

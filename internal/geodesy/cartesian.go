package geodesy

import (
	"math"

	"github.com/banshee-data/runlog/internal/units"
)

// Spherical holds a polar angle theta measured from the north pole, an
// azimuth phi and a radius in meters.
type Spherical struct {
	Theta  units.Radians
	Phi    units.Radians
	Radius float64
}

// Vec3 is an Earth-centred Cartesian vector in meters.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// GNSSToSpherical converts a fix to spherical coordinates on the mean sphere
// raised by the fix altitude.
func GNSSToSpherical(g GNSS) (Spherical, error) {
	if err := g.Validate(); err != nil {
		return Spherical{}, err
	}
	return Spherical{
		Theta:  math.Pi/2 - g.Lat.Radians(),
		Phi:    g.Lon.Radians(),
		Radius: MeanRadius + g.Alt,
	}, nil
}

// SphericalToEuclidean converts spherical coordinates to Earth-centred x/y/z.
func SphericalToEuclidean(s Spherical) Vec3 {
	theta, phi := float64(s.Theta), float64(s.Phi)
	return Vec3{
		X: s.Radius * math.Cos(phi) * math.Sin(theta),
		Y: s.Radius * math.Sin(phi) * math.Sin(theta),
		Z: s.Radius * math.Cos(theta),
	}
}

// EuclideanDistance returns the straight-line distance between two vectors.
func EuclideanDistance(p1, p2 Vec3) float64 {
	return p2.Sub(p1).Norm()
}

// GNSSToEuclidean composes GNSSToSpherical and SphericalToEuclidean.
func GNSSToEuclidean(g GNSS) (Vec3, error) {
	s, err := GNSSToSpherical(g)
	if err != nil {
		return Vec3{}, err
	}
	return SphericalToEuclidean(s), nil
}

// GNSSDistance returns the chord (not arc) length in meters between two
// fixes. It cross-checks HaversineDistance: for short hops the two agree to
// well under a millimeter.
func GNSSDistance(p1, p2 GNSS) (float64, error) {
	start, err := GNSSToEuclidean(p1)
	if err != nil {
		return 0, err
	}
	end, err := GNSSToEuclidean(p2)
	if err != nil {
		return 0, err
	}
	return EuclideanDistance(start, end), nil
}

// RelativeGNSSPosition returns the Cartesian offset of point from origin.
// It is not a tangent-plane projection; keep offsets small.
func RelativeGNSSPosition(point, origin GNSS) (Vec3, error) {
	p, err := GNSSToEuclidean(point)
	if err != nil {
		return Vec3{}, err
	}
	o, err := GNSSToEuclidean(origin)
	if err != nil {
		return Vec3{}, err
	}
	return p.Sub(o), nil
}

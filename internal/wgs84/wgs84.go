// Package wgs84 holds the WGS84 constants shared by the geodesy and track
// geometry packages.
package wgs84

// Ellipsoid axes in meters.
const (
	SemiMajorAxis = 6378137.0
	SemiMinorAxis = 6356752.314245
)

// MeanRadius is the (2a+b)/3 spherical approximation of the Earth used
// wherever a single radius is needed. It is not a true ellipsoidal radius.
const MeanRadius = (2*SemiMajorAxis + SemiMinorAxis) / 3

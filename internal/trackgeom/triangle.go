// Package trackgeom builds synthetic point sequences (circles, arcs, lines and
// a 400 m running track outline) around a geographic origin by solving right
// spherical triangles on a unit sphere.
package trackgeom

import (
	"math"

	"github.com/banshee-data/runlog/internal/units"
)

// SolveRightUnitTriangle returns the legs a and b of a right spherical
// triangle on the unit sphere with hypotenuse c and angle B, right angle at C.
// a lies along the x axis and b along the y axis.
func SolveRightUnitTriangle(c, B units.Radians) (a, b units.Radians) {
	if c == 0 {
		return 0, 0
	}
	if B == 0 {
		return c, 0
	}

	cc, bb := float64(c), float64(B)
	// Napier's rules with C = π/2. Both stay well conditioned for the tiny
	// hypotenuses of metre-scale offsets.
	a = units.Radians(math.Atan(math.Tan(cc) * math.Cos(bb)))
	b = units.Radians(math.Asin(math.Sin(cc) * math.Sin(bb)))
	return a, b
}

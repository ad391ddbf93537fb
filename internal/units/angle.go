package units

import "math"

// Degrees is an angle in degrees. Geographic coordinates are carried in
// degrees until a function explicitly converts them.
type Degrees float64

// Radians is an angle in radians. All trigonometric helpers take Radians.
type Radians float64

// FullTurn is one revolution.
const FullTurn Radians = 2 * math.Pi

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

// Normalize wraps r into [0, 2π).
func (r Radians) Normalize() Radians {
	n := Radians(math.Mod(float64(r), float64(FullTurn)))
	if n < 0 {
		n += FullTurn
	}
	// math.Mod of a tiny negative value can round back up to 2π.
	if n >= FullTurn {
		n = 0
	}
	return n
}

// DegreesSlice converts plain floats to Degrees.
func DegreesSlice(values []float64) []Degrees {
	out := make([]Degrees, len(values))
	for i, v := range values {
		out[i] = Degrees(v)
	}
	return out
}

package trackgeom

import (
	"fmt"
	"math"

	"github.com/banshee-data/runlog/internal/units"
	"github.com/banshee-data/runlog/internal/wgs84"
)

// Coord is a position on the plotting plane: X is longitude and Y latitude,
// both in degrees.
type Coord struct {
	X units.Degrees
	Y units.Degrees
}

// Add offsets c by dx, dy degrees.
func (c Coord) Add(dx, dy units.Degrees) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Sphere fixes the radius used to turn meters into unit-sphere arc lengths.
type Sphere struct {
	Radius float64
}

// Default uses the WGS84 mean radius.
var Default = Sphere{Radius: wgs84.MeanRadius}

const quarterTurn = units.Radians(math.Pi / 2)

// Point returns the coordinate magnitude meters from origin along direction.
// Direction is measured counter-clockwise from +X (east). Whole turns are
// removed; negative directions are rejected.
//
// The triangle identity only holds for directions in [0, π/2), so each other
// quadrant is rotated into that range before solving and the resulting legs
// are rotated back.
func (s Sphere) Point(origin Coord, magnitude float64, direction units.Radians) (Coord, error) {
	if err := units.CheckFinite("magnitude", magnitude); err != nil {
		return Coord{}, err
	}
	if err := units.CheckFinite("direction", float64(direction)); err != nil {
		return Coord{}, err
	}

	unitMagnitude := units.Radians(magnitude / s.Radius)

	if rotations := direction / units.FullTurn; rotations >= 1 {
		direction -= units.Radians(math.Trunc(float64(rotations))) * units.FullTurn
	}
	if err := units.CheckDirection(direction); err != nil {
		return Coord{}, err
	}

	var x, y units.Radians
	switch {
	case direction < quarterTurn:
		a, b := SolveRightUnitTriangle(unitMagnitude, direction)
		x, y = a, b
	case direction < 2*quarterTurn:
		a, b := SolveRightUnitTriangle(unitMagnitude, direction-quarterTurn)
		x, y = -b, a
	case direction < 3*quarterTurn:
		a, b := SolveRightUnitTriangle(unitMagnitude, direction-2*quarterTurn)
		x, y = -a, -b
	default:
		a, b := SolveRightUnitTriangle(unitMagnitude, direction-3*quarterTurn)
		x, y = b, -a
	}

	return origin.Add(x.Degrees(), y.Degrees()), nil
}

// Point uses the Default sphere.
func Point(origin Coord, magnitude float64, direction units.Radians) (Coord, error) {
	return Default.Point(origin, magnitude, direction)
}

func sample(n int, at func(i int) (Coord, error)) ([]Coord, error) {
	out := make([]Coord, n)
	for i := range out {
		p, err := at(i)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

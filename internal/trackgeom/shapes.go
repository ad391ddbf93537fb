package trackgeom

import (
	"errors"
	"fmt"

	"github.com/banshee-data/runlog/internal/units"
)

// CirclePoints is the number of samples Circle takes around a full turn.
const CirclePoints = 40

// DefaultSamples is the number of points Arc and Line produce when callers
// have no preference.
const DefaultSamples = 10

// ErrTooFewPoints is returned when an arc or line is asked for fewer than two
// samples.
var ErrTooFewPoints = errors.New("at least two points are required")

// linspace returns the i-th of n evenly spaced values from start to stop
// inclusive. The last value is exactly stop.
func linspace(start, stop float64, n, i int) float64 {
	if i == n-1 {
		return stop
	}
	return start + float64(i)*(stop-start)/float64(n-1)
}

// Circle samples CirclePoints points at radius meters around center, starting
// due east.
func (s Sphere) Circle(center Coord, radius float64) ([]Coord, error) {
	return sample(CirclePoints, func(i int) (Coord, error) {
		step := units.FullTurn * units.Radians(i) / CirclePoints
		return s.Point(center, radius, step)
	})
}

// Arc samples n points at radius meters around center, from start to
// start+angle inclusive.
func (s Sphere) Arc(center Coord, radius float64, start, angle units.Radians, n int) ([]Coord, error) {
	if n < 2 {
		return nil, fmt.Errorf("arc with %d points: %w", n, ErrTooFewPoints)
	}
	return sample(n, func(i int) (Coord, error) {
		step := linspace(float64(start), float64(start+angle), n, i)
		return s.Point(center, radius, units.Radians(step))
	})
}

// Line samples n points from start out to magnitude meters along direction.
func (s Sphere) Line(start Coord, magnitude float64, direction units.Radians, n int) ([]Coord, error) {
	if n < 2 {
		return nil, fmt.Errorf("line with %d points: %w", n, ErrTooFewPoints)
	}
	return sample(n, func(i int) (Coord, error) {
		return s.Point(start, linspace(0, magnitude, n, i), direction)
	})
}

// Circle uses the Default sphere.
func Circle(center Coord, radius float64) ([]Coord, error) {
	return Default.Circle(center, radius)
}

// Arc uses the Default sphere.
func Arc(center Coord, radius float64, start, angle units.Radians, n int) ([]Coord, error) {
	return Default.Arc(center, radius, start, angle, n)
}

// Line uses the Default sphere.
func Line(start Coord, magnitude float64, direction units.Radians, n int) ([]Coord, error) {
	return Default.Line(start, magnitude, direction, n)
}

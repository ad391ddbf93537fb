package analysis

import (
	"math"

	"github.com/banshee-data/runlog/internal/geodesy"
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/units"
)

// Offset is a planar displacement in meters: X east, Y north.
type Offset struct {
	X, Y float64
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// DeadReckon integrates the receiver's own speed and course readings into a
// path starting at the origin. Each step uses the earlier fix's speed and
// course over the time to the next fix. Readings the receiver flagged
// invalid (negative speed or course) contribute no movement.
func DeadReckon(locs []recording.Location) []Offset {
	if len(locs) == 0 {
		return nil
	}
	path := make([]Offset, len(locs))
	for i := 1; i < len(locs); i++ {
		prev := locs[i-1]
		step := Offset{}
		if prev.Speed >= 0 && prev.Course >= 0 {
			dt := locs[i].TimeInterval - prev.TimeInterval
			dx, dy := geodesy.PositionDelta(courseToTheta(prev.Course), prev.Speed*dt)
			step = Offset{X: dx, Y: dy}
		}
		path[i] = path[i-1].Add(step)
	}
	return path
}

// ReckonFromFixes rebuilds a path from the fixes themselves: each step is the
// haversine distance along the planar bearing between consecutive fixes.
func ReckonFromFixes(locs []recording.Location) []Offset {
	if len(locs) == 0 {
		return nil
	}
	path := make([]Offset, len(locs))
	for i := 1; i < len(locs); i++ {
		a, b := locs[i-1].GNSS(), locs[i].GNSS()
		d := geodesy.HaversineDistance(a.LonLat(), b.LonLat())
		dx, dy := geodesy.PositionDelta(geodesy.Bearing(a, b), d)
		path[i] = path[i-1].Add(Offset{X: dx, Y: dy})
	}
	return path
}

// courseToTheta turns a compass course (clockwise from north) into an angle
// counter-clockwise from east.
func courseToTheta(course units.Degrees) units.Radians {
	return units.Radians(math.Pi/2) - course.Radians()
}

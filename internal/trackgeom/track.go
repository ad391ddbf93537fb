package trackgeom

import (
	"fmt"
	"math"

	"github.com/banshee-data/runlog/internal/units"
)

// Standard 400 m track dimensions in meters.
const (
	StraightLength = 84.39
	TurnRadius     = 36.5
	LaneWidth      = 1.220
	Lanes          = 8
	TrackWidth     = Lanes * LaneWidth
)

// Part names a piece of the track.
type Part string

const (
	FrontStraight Part = "front_straight"
	FirstCorner   Part = "first_corner"
	BackStraight  Part = "back_straight"
	SecondCorner  Part = "second_corner"
)

// Segment is a labelled [Start, End) range of Outline points.
type Segment struct {
	Part  Part
	Outer bool
	Start int
	End   int
}

// Outline is the inner and outer boundary of a track as one ordered sequence.
type Outline struct {
	Segments []Segment
	points   []Coord
}

// Points returns the flat point sequence in construction order.
func (o Outline) Points() []Coord {
	return o.points
}

// Len returns the number of points.
func (o Outline) Len() int {
	return len(o.points)
}

// Segment returns the points of one labelled range.
func (o Outline) Segment(i int) []Coord {
	seg := o.Segments[i]
	return o.points[seg.Start:seg.End]
}

func (o *Outline) append(part Part, outer bool, pts []Coord) {
	start := len(o.points)
	o.points = append(o.points, pts...)
	o.Segments = append(o.Segments, Segment{Part: part, Outer: outer, Start: start, End: len(o.points)})
}

// Track returns the outline of a standard 400 m track centred on center with
// its straights running along direction. Segments are emitted front straight,
// first corner, back straight, second corner; inner boundary before outer.
func (s Sphere) Track(center Coord, direction units.Radians) (Outline, error) {
	if err := units.CheckFinite("direction", float64(direction)); err != nil {
		return Outline{}, err
	}
	direction = direction.Normalize()

	const half = StraightLength / 2
	cornerToCenter := math.Hypot(half, TurnRadius)
	cornerAngle := units.Radians(math.Atan(TurnRadius / half))

	var o Outline
	build := func(steps ...func() error) error {
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	}

	straight := func(part Part, startDirection, outerDirection, runDirection units.Radians) func() error {
		return func() error {
			inner, err := s.Point(center, cornerToCenter, startDirection)
			if err != nil {
				return fmt.Errorf("%s start: %w", part, err)
			}
			outer, err := s.Point(inner, TrackWidth, outerDirection)
			if err != nil {
				return fmt.Errorf("%s outer start: %w", part, err)
			}
			innerPts, err := s.Line(inner, StraightLength, runDirection, DefaultSamples)
			if err != nil {
				return fmt.Errorf("%s: %w", part, err)
			}
			outerPts, err := s.Line(outer, StraightLength, runDirection, DefaultSamples)
			if err != nil {
				return fmt.Errorf("%s outer: %w", part, err)
			}
			o.append(part, false, innerPts)
			o.append(part, true, outerPts)
			return nil
		}
	}

	corner := func(part Part, centerDirection, startDirection units.Radians) func() error {
		return func() error {
			turnCenter, err := s.Point(center, half, centerDirection)
			if err != nil {
				return fmt.Errorf("%s center: %w", part, err)
			}
			innerPts, err := s.Arc(turnCenter, TurnRadius, startDirection, math.Pi, DefaultSamples)
			if err != nil {
				return fmt.Errorf("%s: %w", part, err)
			}
			outerPts, err := s.Arc(turnCenter, TurnRadius+TrackWidth, startDirection, math.Pi, DefaultSamples)
			if err != nil {
				return fmt.Errorf("%s outer: %w", part, err)
			}
			o.append(part, false, innerPts)
			o.append(part, true, outerPts)
			return nil
		}
	}

	err := build(
		straight(FrontStraight, cornerAngle+math.Pi+direction, 3*quarterTurn+direction, direction),
		corner(FirstCorner, direction, 3*quarterTurn+direction),
		straight(BackStraight, cornerAngle+direction, quarterTurn+direction, math.Pi+direction),
		corner(SecondCorner, math.Pi+direction, quarterTurn+direction),
	)
	if err != nil {
		return Outline{}, err
	}
	return o, nil
}

// Track uses the Default sphere.
func Track(center Coord, direction units.Radians) (Outline, error) {
	return Default.Track(center, direction)
}

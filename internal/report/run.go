package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/runlog/internal/analysis"
	"github.com/banshee-data/runlog/internal/geodesy"
	"github.com/banshee-data/runlog/internal/recording"
	"github.com/banshee-data/runlog/internal/trackgeom"
	"github.com/banshee-data/runlog/internal/units"
)

// elapsedMinutes returns the minutes since the first location, which must be
// the earliest.
func elapsedMinutes(locs []recording.Location, i int) float64 {
	return (locs[i].TimeInterval - locs[0].TimeInterval) / 60
}

// projectedPositions maps every fix onto the Mercator plane.
func projectedPositions(locs []recording.Location) (plotter.XYs, error) {
	xys := make(plotter.XYs, len(locs))
	for i, loc := range locs {
		m, err := geodesy.Project(loc.GNSS())
		if err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}
		xys[i] = plotter.XY{X: m.X, Y: m.Y}
	}
	return xys, nil
}

// trackOutline anchors a 400 m track at the centre of bounds.
func trackOutline(bounds analysis.Bounds, direction units.Radians) (trackgeom.Outline, error) {
	outline, err := trackgeom.Track(bounds.Center(), direction)
	if err != nil {
		return trackgeom.Outline{}, fmt.Errorf("track overlay: %w", err)
	}
	return outline, nil
}

// trackOverlay returns a 400 m track centred on the fixes and rotated by the
// configured direction, projected onto the Mercator plane.
func (r *Renderer) trackOverlay(locs []recording.Location) (plotter.XYs, error) {
	bounds, err := analysis.BoundsOf(locs)
	if err != nil {
		return nil, err
	}
	outline, err := trackOutline(bounds, r.cfg.GetTrackDirection())
	if err != nil {
		return nil, err
	}
	pts := outline.Points()
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		y, err := geodesy.ProjectLatitude(pt.Y)
		if err != nil {
			return nil, fmt.Errorf("track overlay: %w", err)
		}
		xys[i] = plotter.XY{X: geodesy.ProjectLongitude(pt.X), Y: y}
	}
	return xys, nil
}

// positionPlot scatters the projected fixes, with the track overlay when
// configured.
func (r *Renderer) positionPlot(locs []recording.Location) (*plot.Plot, error) {
	p := newPlot("Position", "Longitude (Mercator)", "Latitude (Mercator)")
	if r.cfg.GetTrackOverlay() && len(locs) > 0 {
		overlay, err := r.trackOverlay(locs)
		if err != nil {
			return nil, err
		}
		if err := addScatter(p, "400m track", overlay, highlight, vg.Points(1.5)); err != nil {
			return nil, err
		}
	}
	xys, err := projectedPositions(locs)
	if err != nil {
		return nil, err
	}
	if err := addScatter(p, "", xys, palette(1)[0], vg.Points(0.75)); err != nil {
		return nil, err
	}
	squareRanges(p)
	return p, nil
}

func distancePlot(locs []recording.Location) (*plot.Plot, error) {
	p := newPlot("", "Time (minute)", "Distance (km)")
	p.Add(plotter.NewGrid())
	cumulative := analysis.CumulativeDistance(locs)
	xys := make(plotter.XYs, len(locs))
	for i := range locs {
		xys[i] = plotter.XY{X: elapsedMinutes(locs, i), Y: cumulative[i] / 1000}
	}
	return p, addScatter(p, "", xys, palette(1)[0], vg.Points(0.75))
}

func altitudePlot(locs []recording.Location) (*plot.Plot, error) {
	p := newPlot("", "Time (minute)", "Altitude (m)")
	xys := make(plotter.XYs, len(locs))
	for i, loc := range locs {
		xys[i] = plotter.XY{X: elapsedMinutes(locs, i), Y: loc.Altitude}
	}
	return p, addScatter(p, "", xys, palette(1)[0], vg.Points(0.75))
}

func accuracyPlot(locs []recording.Location) (*plot.Plot, error) {
	p := newPlot("", "Time (minute)", "Accuracy (m)")
	horizontal := make(plotter.XYs, len(locs))
	vertical := make(plotter.XYs, len(locs))
	for i, loc := range locs {
		t := elapsedMinutes(locs, i)
		horizontal[i] = plotter.XY{X: t, Y: loc.HorizontalAccuracy}
		vertical[i] = plotter.XY{X: t, Y: loc.VerticalAccuracy}
	}
	colors := palette(2)
	if err := addScatter(p, "Horizontal", horizontal, colors[0], vg.Points(0.75)); err != nil {
		return nil, err
	}
	if err := addScatter(p, "Vertical", vertical, colors[1], vg.Points(0.75)); err != nil {
		return nil, err
	}
	topRightLegend(p)
	return p, nil
}

// Position writes the standalone position chart.
func (r *Renderer) Position(name string, split int, locs []recording.Location) (string, error) {
	p, err := r.positionPlot(locs)
	if err != nil {
		return "", err
	}
	return r.savePlots(FileName(name, "position", split, ".png"), [][]*plot.Plot{{p}})
}

// Summary writes the 2×2 overview: position, accuracy, altitude and
// cumulative distance.
func (r *Renderer) Summary(name string, split int, locs []recording.Location) (string, error) {
	position, err := r.positionPlot(locs)
	if err != nil {
		return "", err
	}
	accuracy, err := accuracyPlot(locs)
	if err != nil {
		return "", err
	}
	altitude, err := altitudePlot(locs)
	if err != nil {
		return "", err
	}
	distance, err := distancePlot(locs)
	if err != nil {
		return "", err
	}
	return r.savePlots(FileName(name, "", split, ".png"), [][]*plot.Plot{
		{position, accuracy},
		{altitude, distance},
	})
}

// Velocity writes the 2×2 receiver velocity chart: speed, course arrows on
// the Mercator plane, speed accuracy and course accuracy.
func (r *Renderer) Velocity(name string, split int, locs []recording.Location) (string, error) {
	unit := r.cfg.GetSpeedUnit()
	speed := newPlot("", "Time (minute)", units.Label(unit))
	speedAccuracy := newPlot("", "Time (minute)", "Speed accuracy")
	courseAccuracy := newPlot("", "Time (minute)", "Course accuracy")

	var speeds, speedAcc, courseAcc plotter.XYs
	for i, loc := range locs {
		t := elapsedMinutes(locs, i)
		if loc.Speed >= 0 {
			speeds = append(speeds, plotter.XY{X: t, Y: units.ConvertSpeed(loc.Speed, unit)})
		}
		speedAcc = append(speedAcc, plotter.XY{X: t, Y: loc.SpeedAccuracy})
		courseAcc = append(courseAcc, plotter.XY{X: t, Y: loc.CourseAccuracy})
	}
	c := palette(1)[0]
	for _, s := range []struct {
		p   *plot.Plot
		xys plotter.XYs
	}{{speed, speeds}, {speedAccuracy, speedAcc}, {courseAccuracy, courseAcc}} {
		if err := addScatter(s.p, "", s.xys, c, vg.Points(0.75)); err != nil {
			return "", err
		}
	}

	course, err := r.coursePlot(locs)
	if err != nil {
		return "", err
	}
	return r.savePlots(FileName(name, "velocity", split, ".png"), [][]*plot.Plot{
		{speed, course},
		{speedAccuracy, courseAccuracy},
	})
}

func (r *Renderer) coursePlot(locs []recording.Location) (*plot.Plot, error) {
	p := newPlot("Course", "Longitude (Mercator)", "Latitude (Mercator)")
	from, to := r.cfg.GetCourseArrows()
	from, to = min(from, len(locs)), min(to, len(locs))
	arrows := &courseArrows{Color: palette(1)[0]}
	for i, loc := range locs[from:to] {
		if loc.Course < 0 {
			continue
		}
		m, err := geodesy.Project(loc.GNSS())
		if err != nil {
			return nil, fmt.Errorf("location %d: %w", from+i, err)
		}
		theta := float64(loc.Course.Radians())
		arrows.XYs = append(arrows.XYs, plotter.XY{X: m.X, Y: m.Y})
		arrows.U = append(arrows.U, math.Sin(theta))
		arrows.V = append(arrows.V, math.Cos(theta))
	}
	if len(arrows.XYs) > 0 {
		arrows.Length = arrowLength(arrows.XYs)
		p.Add(arrows)
	}
	squareRanges(p)
	return p, nil
}

// DeadReckoning writes the path integrated from speed and course next to the
// path rebuilt from the fixes, both in meters from the first fix.
func (r *Renderer) DeadReckoning(name string, split int, locs []recording.Location) (string, error) {
	p := newPlot("Dead reckoning", "East (m)", "North (m)")
	colors := palette(2)
	for i, path := range []struct {
		label   string
		offsets []analysis.Offset
	}{
		{"Speed and course", analysis.DeadReckon(locs)},
		{"Fixes", analysis.ReckonFromFixes(locs)},
	} {
		xys := make(plotter.XYs, len(path.offsets))
		for j, o := range path.offsets {
			xys[j] = plotter.XY{X: o.X, Y: o.Y}
		}
		if err := addScatter(p, path.label, xys, colors[i], vg.Points(1)); err != nil {
			return "", err
		}
	}
	topRightLegend(p)
	squareRanges(p)
	return r.savePlots(FileName(name, "dead-reckoning", split, ".png"), [][]*plot.Plot{{p}})
}

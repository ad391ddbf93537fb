package report

import (
	"fmt"

	"github.com/banshee-data/runlog/internal/analysis"
	"github.com/banshee-data/runlog/internal/monitoring"
	"github.com/banshee-data/runlog/internal/recording"
)

// Distances compares path length measures for a run, in meters.
type Distances struct {
	Haversine float64
	Chord     float64
	Mercator  float64
}

// MeasureDistances computes every path length for time-ordered locs.
func MeasureDistances(locs []recording.Location) (Distances, error) {
	chord, err := analysis.ChordPathLength(locs)
	if err != nil {
		return Distances{}, err
	}
	mercator, err := analysis.MercatorPathLength(locs)
	if err != nil {
		return Distances{}, err
	}
	return Distances{
		Haversine: analysis.TotalDistance(locs),
		Chord:     chord,
		Mercator:  mercator,
	}, nil
}

// Run renders every run chart for one split, or for the whole recording when
// split is WholeRecording, and returns the paths written.
func (r *Renderer) Run(rec *recording.Recording, split int) ([]string, error) {
	s := rec.Merged()
	if split != WholeRecording {
		var err error
		if s, err = rec.Split(split); err != nil {
			return nil, err
		}
	}

	locs := s.SortedLocations()
	if len(locs) == 0 {
		return nil, fmt.Errorf("%s: %w", rec.Name, analysis.ErrNoLocations)
	}
	samples := s.HeartRate()

	d, err := MeasureDistances(locs)
	if err != nil {
		return nil, err
	}
	monitoring.Logf("%s: %d fixes, %d heart rate samples, distance %.0f m (chord %.0f m, Mercator %.0f m)",
		rec.Name, len(locs), len(samples), d.Haversine, d.Chord, d.Mercator)

	steps := []func() (string, error){
		func() (string, error) { return r.Summary(rec.Name, split, locs) },
		func() (string, error) { return r.Position(rec.Name, split, locs) },
		func() (string, error) { return r.HeartRate(rec.Name, split, samples) },
		func() (string, error) { return r.Velocity(rec.Name, split, locs) },
		func() (string, error) { return r.DeadReckoning(rec.Name, split, locs) },
	}
	if r.cfg.GetHTML() {
		steps = append(steps,
			func() (string, error) { return r.PositionPage(rec.Name, split, locs) },
			func() (string, error) { return r.HeartRatePage(rec.Name, split, samples) },
		)
	}

	var paths []string
	for _, step := range steps {
		path, err := step()
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

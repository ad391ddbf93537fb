package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/runlog/internal/monitoring"
	"github.com/banshee-data/runlog/internal/motion"
	"github.com/banshee-data/runlog/internal/recording"
)

// accelerationLimit bounds the acceleration axes in G.
const accelerationLimit = 3

// spectrumLimit is the highest frequency shown, in Hz.
const spectrumLimit = 10

// Motion writes two motion charts for an accelerometer trace: a close-up of
// the configured excerpt and an overview of its start. It returns the paths
// written and the repeat detection result for each chart, in that order.
func (r *Renderer) Motion(name string, samples []recording.Acceleration) ([]string, []motion.Repeats, error) {
	from, to := r.cfg.GetExcerpt()
	charts := []struct {
		kind   string
		window []recording.Acceleration
	}{
		{"motion", clip(samples, from, to)},
		{"motion-full", clip(samples, 0, r.cfg.GetOverviewSamples())},
	}

	var paths []string
	var repeats []motion.Repeats
	for _, c := range charts {
		path, rep, err := r.motionChart(FileName(name, c.kind, WholeRecording, ".png"), c.window)
		if err != nil {
			return paths, repeats, err
		}
		paths = append(paths, path)
		repeats = append(repeats, rep)
	}
	return paths, repeats, nil
}

func clip(samples []recording.Acceleration, from, to int) []recording.Acceleration {
	from, to = min(from, len(samples)), min(to, len(samples))
	return samples[from:to]
}

func (r *Renderer) repeatOptions() motion.RepeatOptions {
	return motion.RepeatOptions{
		SamplePeriod: r.cfg.GetSamplePeriod(),
		WindowPeriod: r.cfg.GetWindowPeriod(),
		PeakFraction: r.cfg.GetPeakFraction(),
	}
}

// motionChart stacks the three axes, the x-axis magnitude spectrum and the
// x-axis repeat correlation. A trace too short or too flat for repeat
// detection still gets its acceleration and spectrum panels.
func (r *Renderer) motionChart(name string, samples []recording.Acceleration) (string, motion.Repeats, error) {
	if len(samples) == 0 {
		return "", motion.Repeats{}, fmt.Errorf("%s: %w", name, motion.ErrEmptySignal)
	}
	times := recording.Timestamps(samples)
	colors := palette(3)

	var rows [][]*plot.Plot
	for i, axis := range []recording.Axis{recording.AxisX, recording.AxisY, recording.AxisZ} {
		p := newPlot("", "Time (seconds)", fmt.Sprintf("Acceleration in %s (G)", axis))
		values := recording.Component(samples, axis)
		xys := make(plotter.XYs, len(values))
		for j, v := range values {
			xys[j] = plotter.XY{X: times[j], Y: v}
		}
		if err := addScatter(p, "", xys, colors[i], vg.Points(0.5)); err != nil {
			return "", motion.Repeats{}, err
		}
		p.Y.Min, p.Y.Max = -accelerationLimit, accelerationLimit
		rows = append(rows, []*plot.Plot{p})
	}

	x := recording.Component(samples, recording.AxisX)
	repeatOpts := r.repeatOptions()

	spectrum := newPlot("", "Frequency (Hz)", "Magnitude")
	freqs, mags := motion.MagnitudeSpectrum(x, 1/repeatOpts.SamplePeriod)
	var bins plotter.XYs
	for i, f := range freqs {
		if f <= spectrumLimit {
			bins = append(bins, plotter.XY{X: f, Y: mags[i]})
		}
	}
	if err := addLine(spectrum, "", bins, colors[0]); err != nil {
		return "", motion.Repeats{}, err
	}
	spectrum.X.Min, spectrum.X.Max = 0, spectrumLimit
	rows = append(rows, []*plot.Plot{spectrum})

	correlation := newPlot("", "Lag (seconds)", "Correlation")
	rep, err := motion.DetectRepeats(x, repeatOpts)
	if err != nil {
		monitoring.Logf("%s: repeat detection skipped: %v", name, err)
	} else {
		monitoring.Verbosef("%s: mean=%g variance=%g peaks at %v s", name, rep.Mean, rep.Variance, rep.PeakTimes(repeatOpts.SamplePeriod))
		all := make(plotter.XYs, len(rep.Correlation))
		for i, c := range rep.Correlation {
			all[i] = plotter.XY{X: float64(rep.Lags[i]) * repeatOpts.SamplePeriod, Y: c}
		}
		peaks := make(plotter.XYs, len(rep.Peaks))
		for i, p := range rep.Peaks {
			peaks[i] = all[p]
		}
		if err := addScatter(correlation, "", all, colors[0], vg.Points(0.5)); err != nil {
			return "", rep, err
		}
		if err := addScatter(correlation, "Repeats", peaks, highlight, vg.Points(2)); err != nil {
			return "", rep, err
		}
		topRightLegend(correlation)
	}
	rows = append(rows, []*plot.Plot{correlation})

	path, err := r.savePlots(name, rows)
	return path, rep, err
}

package report

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/runlog/internal/analysis"
	"github.com/banshee-data/runlog/internal/heartrate"
	"github.com/banshee-data/runlog/internal/recording"
)

// zoneTicks marks the configured heart rate zone boundaries.
func zoneTicks(ticks []float64) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ticks))
	for i, v := range ticks {
		out[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return out
}

func (r *Renderer) heartRatePlot(samples []recording.HeartRateSample) (*plot.Plot, error) {
	p := newPlot("", "Time (minute)", "Heart Rate (BPM)")
	p.Add(plotter.NewGrid())
	p.Y.Tick.Marker = zoneTicks(r.cfg.GetHeartRateTicks())

	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i] = plotter.XY{X: (s.TimeInterval - samples[0].TimeInterval) / 60, Y: float64(s.HeartRate)}
	}
	return p, addScatter(p, "", xys, palette(1)[0], vg.Points(0.75))
}

// HeartRate writes the 2×2 heart chart: heart rate over time, R-R intervals
// in seconds and in raw 1/1024 s units by beat, and a histogram of the raw
// intervals.
func (r *Renderer) HeartRate(name string, split int, samples []recording.HeartRateSample) (string, error) {
	beats, err := r.heartRatePlot(samples)
	if err != nil {
		return "", err
	}

	rr := recording.RRIntervals(samples)
	seconds := newPlot("", "Beat", "R-R interval (s)")
	raw := newPlot("", "Beat", "R-R interval (1/1024 s)")
	secXYs := make(plotter.XYs, len(rr))
	rawXYs := make(plotter.XYs, len(rr))
	rawValues := make([]float64, len(rr))
	for i, v := range rr {
		secXYs[i] = plotter.XY{X: float64(i), Y: v.Seconds()}
		rawXYs[i] = plotter.XY{X: float64(i), Y: float64(v)}
		rawValues[i] = float64(v)
	}
	c := palette(1)[0]
	if err := addScatter(seconds, "", secXYs, c, vg.Points(0.75)); err != nil {
		return "", err
	}
	if err := addScatter(raw, "", rawXYs, c, vg.Points(0.75)); err != nil {
		return "", err
	}

	variability := newPlot("", "R-R interval (1/1024 s)", "Count")
	if err := addHistogram(variability, rawValues, r.cfg.GetRRHistogramBins(), false); err != nil {
		return "", err
	}

	return r.savePlots(FileName(name, "heart-rate", split, ".png"), [][]*plot.Plot{
		{beats, seconds},
		{raw, variability},
	})
}

// RRIntervals writes side-by-side density histograms of R-R intervals in
// seconds: every interval, and only those within the configured number of
// standard deviations of the mean.
func (r *Renderer) RRIntervals(name string, rr []heartrate.RRInterval) (analysis.RRStats, string, error) {
	stats, err := analysis.SummarizeRR(rr)
	if err != nil {
		return analysis.RRStats{}, "", err
	}
	secs := analysis.RRSeconds(rr)
	bins := r.cfg.GetRRStatsBins()
	k := r.cfg.GetRRBandSigma()

	full := newPlot("All intervals", "R-R interval (s)", "Density")
	if err := addHistogram(full, secs, bins, true); err != nil {
		return stats, "", err
	}

	band := newPlot("Within "+strconv.FormatFloat(k, 'f', -1, 64)+"σ", "R-R interval (s)", "Density")
	lo, hi := stats.Mean-k*stats.StdDev, stats.Mean+k*stats.StdDev
	if err := addHistogram(band, analysis.Within(secs, lo, hi), bins, true); err != nil {
		return stats, "", err
	}

	path, err := r.savePlots(FileName(name, "rr-intervals", WholeRecording, ".png"), [][]*plot.Plot{{full, band}})
	return stats, path, err
}

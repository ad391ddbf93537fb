package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/runlog/internal/analysis"
	"github.com/banshee-data/runlog/internal/monitoring"
	"github.com/banshee-data/runlog/internal/recording"
)

// renderer is satisfied by go-echarts charts and pages.
type renderer interface {
	Render(w io.Writer) error
}

func (r *Renderer) saveHTML(name string, page renderer) (string, error) {
	w, path, err := r.create(name)
	if err != nil {
		return "", err
	}
	if err := page.Render(w); err != nil {
		w.Close()
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	monitoring.Verbosef("wrote %s", path)
	return path, nil
}

// PositionPage writes an interactive scatter of the fixes in degrees, with
// the track overlay when configured.
func (r *Renderer) PositionPage(name string, split int, locs []recording.Location) (string, error) {
	points := make([]opts.ScatterData, len(locs))
	for i, loc := range locs {
		points[i] = opts.ScatterData{Value: []interface{}{float64(loc.Longitude), float64(loc.Latitude), loc.TimeInterval - locs[0].TimeInterval}}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: name + " position", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Position", Subtitle: fmt.Sprintf("%s fixes=%d", name, len(locs))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Scale: opts.Bool(true), Name: "Longitude (°)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Scale: opts.Bool(true), Name: "Latitude (°)", NameLocation: "middle", NameGap: 40}),
	)
	scatter.AddSeries("fixes", points, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	if r.cfg.GetTrackOverlay() && len(locs) > 0 {
		bounds, err := analysis.BoundsOf(locs)
		if err != nil {
			return "", err
		}
		outline, err := trackOutline(bounds, r.cfg.GetTrackDirection())
		if err != nil {
			return "", err
		}
		track := make([]opts.ScatterData, 0, outline.Len())
		for _, pt := range outline.Points() {
			track = append(track, opts.ScatterData{Value: []interface{}{float64(pt.X), float64(pt.Y)}})
		}
		scatter.AddSeries("400m track", track,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#dc322f"}))
	}

	return r.saveHTML(FileName(name, "position", split, ".html"), scatter)
}

// HeartRatePage writes an interactive page with heart rate over time and a
// histogram of R-R intervals.
func (r *Renderer) HeartRatePage(name string, split int, samples []recording.HeartRateSample) (string, error) {
	minutes := make([]string, len(samples))
	bpm := make([]opts.LineData, len(samples))
	for i, s := range samples {
		minutes[i] = fmt.Sprintf("%.2f", (s.TimeInterval-samples[0].TimeInterval)/60)
		bpm[i] = opts.LineData{Value: s.HeartRate}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: name + " heart rate", Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Heart Rate", Subtitle: fmt.Sprintf("%s samples=%d", name, len(samples))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (minute)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "BPM", Scale: opts.Bool(true)}),
	)
	line.SetXAxis(minutes).AddSeries("heart rate", bpm,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	rr := analysis.RRSeconds(recording.RRIntervals(samples))
	labels, counts := histogram(rr, r.cfg.GetRRHistogramBins())
	bars := make([]opts.BarData, len(counts))
	for i, c := range counts {
		bars[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "R-R Intervals", Subtitle: fmt.Sprintf("n=%d", len(rr))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Interval (s)", NameLocation: "middle", NameGap: 25}),
	)
	bar.SetXAxis(labels).AddSeries("intervals", bars)

	page := components.NewPage()
	page.PageTitle = name + " heart rate"
	page.AddCharts(line, bar)

	return r.saveHTML(FileName(name, "heart-rate", split, ".html"), page)
}

// histogram counts values into bins equal-width buckets and labels each by
// its lower edge.
func histogram(values []float64, bins int) ([]string, []float64) {
	if len(values) == 0 || bins <= 0 {
		return nil, nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram excludes the upper edge.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	labels := make([]string, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3f", dividers[i])
	}
	return labels, counts
}

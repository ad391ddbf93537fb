// Package report renders run recordings, R-R interval statistics and motion
// traces as PNG charts (gonum/plot) and interactive HTML pages (go-echarts).
//
// Output files are named <input>[-kind][-split].png (or .html) inside the
// configured output directory.
package report

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/runlog/internal/config"
	"github.com/banshee-data/runlog/internal/fsutil"
	"github.com/banshee-data/runlog/internal/monitoring"
)

// WholeRecording selects every split instead of a single one.
const WholeRecording = -1

// FileName builds <base>[-kind][-split]<ext>, reducing base to a safe name.
func FileName(base, kind string, split int, ext string) string {
	name := fsutil.SafeName(base)
	if kind != "" {
		name += "-" + kind
	}
	if split != WholeRecording {
		name += "-" + strconv.Itoa(split)
	}
	return name + ext
}

// Renderer writes charts into the configured output directory.
type Renderer struct {
	fs  fsutil.FileSystem
	cfg *config.ReportConfig
}

// NewRenderer returns a Renderer writing through fs. A nil cfg uses defaults.
func NewRenderer(fs fsutil.FileSystem, cfg *config.ReportConfig) *Renderer {
	if cfg == nil {
		cfg = config.EmptyReportConfig()
	}
	return &Renderer{fs: fs, cfg: cfg}
}

// OutputDir is where charts are written.
func (r *Renderer) OutputDir() string {
	return r.cfg.GetOutputDir()
}

// create opens name inside the output directory for writing.
func (r *Renderer) create(name string) (io.WriteCloser, string, error) {
	dir := r.OutputDir()
	if err := r.fs.MkdirAll(dir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	w, err := r.fs.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	return w, path, nil
}

// savePlots tiles rows of plots into one PNG. Nil entries leave a gap.
func (r *Renderer) savePlots(name string, rows [][]*plot.Plot) (string, error) {
	w, path, err := r.create(name)
	if err != nil {
		return "", err
	}
	if err := r.drawPNG(w, rows); err != nil {
		w.Close()
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	monitoring.Verbosef("wrote %s", path)
	return path, nil
}

func (r *Renderer) drawPNG(w io.Writer, rows [][]*plot.Plot) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return fmt.Errorf("no plots to draw")
	}
	width := vg.Length(r.cfg.GetWidthInches()) * vg.Inch
	height := vg.Length(r.cfg.GetHeightInches()) * vg.Inch
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(r.cfg.GetDPI()))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      len(rows[0]),
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align(rows, tiles, dc)
	for j := range rows {
		for i, p := range rows[j] {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}

// newPlot creates a plot with title and axis labels.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// addScatter adds small dot markers for xys. Empty series are skipped.
func addScatter(p *plot.Plot, label string, xys plotter.XYs, c color.Color, radius vg.Length) error {
	if len(xys) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Color = c
	p.Add(s)
	if label != "" {
		p.Legend.Add(label, s)
	}
	return nil
}

// addLine adds a line for xys. Empty series are skipped.
func addLine(p *plot.Plot, label string, xys plotter.XYs, c color.Color) error {
	if len(xys) == 0 {
		return nil
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.Color = c
	l.Width = vg.Points(1)
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return nil
}

// addHistogram adds a histogram of values. Empty input is skipped.
func addHistogram(p *plot.Plot, values []float64, bins int, density bool) error {
	if len(values) == 0 {
		return nil
	}
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	if density {
		h.Normalize(1)
	}
	h.FillColor = palette(1)[0]
	p.Add(h)
	return nil
}

// topRightLegend places the legend inside the top right corner.
func topRightLegend(p *plot.Plot) {
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
}

// squareRanges widens the narrower axis so both axes span the same
// distance, keeping map-like data undistorted on square panels.
func squareRanges(p *plot.Plot) {
	dx := p.X.Max - p.X.Min
	dy := p.Y.Max - p.Y.Min
	if dx <= 0 || dy <= 0 {
		return
	}
	if dx > dy {
		mid := (p.Y.Min + p.Y.Max) / 2
		p.Y.Min, p.Y.Max = mid-dx/2, mid+dx/2
	} else {
		mid := (p.X.Min + p.X.Max) / 2
		p.X.Min, p.X.Max = mid-dy/2, mid+dy/2
	}
}

// palette returns n distinct colors spread around the hue circle.
func palette(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := 0.6 + float64(i)/float64(n)
		if hue > 1 {
			hue--
		}
		r, g, b := hslToRGB(hue, 0.7, 0.45)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// highlight is the marker color for peaks and overlays.
var highlight = color.RGBA{R: 220, G: 50, B: 47, A: 255}

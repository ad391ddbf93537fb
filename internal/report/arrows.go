package report

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// courseArrows draws a unit direction (U, V) at every point, scaled to
// Length data units, with a short tick at the head.
type courseArrows struct {
	plotter.XYs
	U, V   []float64
	Length float64
	Color  color.Color
}

var (
	_ plot.Plotter    = (*courseArrows)(nil)
	_ plot.DataRanger = (*courseArrows)(nil)
)

// Plot implements plot.Plotter.
func (a *courseArrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	style := draw.LineStyle{Color: a.Color, Width: vg.Points(0.75)}
	head := vg.Points(2)

	for i, xy := range a.XYs {
		x0, y0 := trX(xy.X), trY(xy.Y)
		x1, y1 := trX(xy.X+a.U[i]*a.Length), trY(xy.Y+a.V[i]*a.Length)
		c.StrokeLine2(style, x0, y0, x1, y1)

		angle := math.Atan2(float64(y1-y0), float64(x1-x0))
		for _, side := range []float64{-1, 1} {
			back := angle + math.Pi - side*math.Pi/6
			hx := x1 + vg.Length(math.Cos(back))*head
			hy := y1 + vg.Length(math.Sin(back))*head
			c.StrokeLine2(style, x1, y1, hx, hy)
		}
	}
}

// DataRange implements plot.DataRanger, covering both tails and heads.
func (a *courseArrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for i, xy := range a.XYs {
		for _, p := range [2]plotter.XY{xy, {X: xy.X + a.U[i]*a.Length, Y: xy.Y + a.V[i]*a.Length}} {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

// arrowLength picks an arrow length of a tenth of the larger data span, so
// arrows stay visible whatever the zoom.
func arrowLength(xys plotter.XYs) float64 {
	xmin, xmax, ymin, ymax := plotter.XYRange(xys)
	span := math.Max(xmax-xmin, ymax-ymin)
	if span == 0 {
		// ~1 m on the Mercator plane
		return 1.0 / 6371000
	}
	return span / 10
}

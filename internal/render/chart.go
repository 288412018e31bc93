package render

import (
	"errors"
	"image/color"
	"io"
	"math"

	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/petreg/internal/analysis"
)

// ErrEmptyResult is returned when a selection has no rows to draw.
var ErrEmptyResult = errors.New("no rows to plot")

// ChartOptions sets the output size in inches.
type ChartOptions struct {
	WidthIn  float64
	HeightIn float64
}

// DefaultChartOptions matches a 12x7 inch figure.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{WidthIn: 12, HeightIn: 7}
}

// magma stops, dark to light, skipping the near-black start.
var magma = []color.RGBA{
	{R: 0x3b, G: 0x0f, B: 0x70, A: 0xff},
	{R: 0x65, G: 0x1a, B: 0x80, A: 0xff},
	{R: 0x8c, G: 0x29, B: 0x81, A: 0xff},
	{R: 0xb7, G: 0x37, B: 0x79, A: 0xff},
	{R: 0xde, G: 0x49, B: 0x68, A: 0xff},
	{R: 0xf7, G: 0x70, B: 0x5c, A: 0xff},
	{R: 0xfe, G: 0x9f, B: 0x6d, A: 0xff},
	{R: 0xfe, G: 0xcf, B: 0x92, A: 0xff},
}

// Palette spreads n colors across the magma stops.
func Palette(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		idx := 0
		if n > 1 {
			idx = i * (len(magma) - 1) / (n - 1)
		}
		out[i] = magma[idx]
	}
	return out
}

const (
	maxBarWidth = 20 // points
	// axisReserve approximates the width taken by the y axis and padding.
	axisReserve = 1.25 * vg.Inch
)

// barWidth fits n bars into the data area of a chart of the given size,
// leaving a gap between neighbours.
func barWidth(n int, opt ChartOptions) vg.Length {
	if opt.WidthIn <= 0 || opt.HeightIn <= 0 {
		opt = DefaultChartOptions()
	}
	usable := vg.Length(opt.WidthIn)*vg.Inch - axisReserve
	if usable <= 0 || n <= 0 {
		return vg.Points(1)
	}
	w := 0.7 * usable / vg.Length(n)
	return vg.Length(math.Max(1, math.Min(float64(w), maxBarWidth)))
}

// BarChart draws res as vertical bars in row order with rotated category labels.
// Bars are sized for a chart written with the same opt.
func BarChart(res *analysis.Result, title string, opt ChartOptions) (*plot.Plot, error) {
	if res == nil || len(res.Rows) == 0 {
		return nil, ErrEmptyResult
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = res.XAxis
	p.Y.Label.Text = res.Metric

	colors := Palette(len(res.Rows))
	width := barWidth(len(res.Rows), opt)
	minValue := 0.0
	for i, row := range res.Rows {
		// one chart per bar so each bar gets its own palette color
		bars, err := plotter.NewBarChart(plotter.Values{row.Value}, width)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "bar %q", row.Label)
		}
		bars.XMin = float64(i)
		bars.Color = colors[i]
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		minValue = math.Min(minValue, row.Value)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	p.NominalX(res.Labels()...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = minValue
	return p, nil
}

// WriteChart encodes p as "svg" or "png".
func WriteChart(w io.Writer, p *plot.Plot, format string, opt ChartOptions) error {
	switch format {
	case "svg", "png":
	default:
		return pkgerrors.Errorf("unsupported chart format %q (use svg or png)", format)
	}
	if opt.WidthIn <= 0 || opt.HeightIn <= 0 {
		opt = DefaultChartOptions()
	}
	wt, err := p.WriterTo(vg.Length(opt.WidthIn)*vg.Inch, vg.Length(opt.HeightIn)*vg.Inch, format)
	if err != nil {
		return pkgerrors.Wrap(err, "render chart")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return pkgerrors.Wrap(err, "write chart")
	}
	return nil
}

// Chart builds and encodes the chart for a view in one step.
func Chart(w io.Writer, v *analysis.View, format string, opt ChartOptions) error {
	p, err := BarChart(v.Result, v.ChartTitle, opt)
	if err != nil {
		return err
	}
	return WriteChart(w, p, format, opt)
}

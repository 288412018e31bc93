package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/petreg/internal/analysis"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Region: analysis.AllRegions,
		Metric: "cnt",
		XAxis:  "region",
		Rows:   []analysis.Row{{Label: "A", Value: 15}, {Label: "B", Value: 7}},
		Total:  22,
	}
}

func TestFormatTotal(t *testing.T) {
	cases := map[float64]string{
		0:        "0",
		22:       "22",
		999:      "999",
		1234:     "1,234",
		1234567:  "1,234,567",
		15.6:     "16",
		-4321.49: "-4,321",
	}
	for in, want := range cases {
		if got := FormatTotal(in); got != want {
			t.Fatalf("FormatTotal(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestBarChartSVG(t *testing.T) {
	p, err := BarChart(sampleResult(), "all regions cnt", DefaultChartOptions())
	if err != nil {
		t.Fatalf("BarChart: %v", err)
	}
	if p.X.Label.Text != "region" || p.Y.Label.Text != "cnt" {
		t.Fatalf("axis titles not set: %q / %q", p.X.Label.Text, p.Y.Label.Text)
	}
	if p.Y.Min != 0 {
		t.Fatalf("expected y axis to start at 0, got %v", p.Y.Min)
	}
	var buf bytes.Buffer
	if err := WriteChart(&buf, p, "svg", DefaultChartOptions()); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected svg output, got %.80q", out)
	}
	if !strings.Contains(out, "all regions cnt") {
		t.Fatalf("chart title missing from svg")
	}
}

func TestBarChartPNG(t *testing.T) {
	p, err := BarChart(sampleResult(), "png", ChartOptions{WidthIn: 4, HeightIn: 3})
	if err != nil {
		t.Fatalf("BarChart: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteChart(&buf, p, "png", ChartOptions{WidthIn: 4, HeightIn: 3}); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("expected png magic")
	}
}

func TestWriteChartRejectsUnknownFormat(t *testing.T) {
	p, err := BarChart(sampleResult(), "x", DefaultChartOptions())
	if err != nil {
		t.Fatalf("BarChart: %v", err)
	}
	if err := WriteChart(&bytes.Buffer{}, p, "gif", DefaultChartOptions()); err == nil {
		t.Fatal("expected error for gif")
	}
}

func TestBarChartEmpty(t *testing.T) {
	_, err := BarChart(&analysis.Result{Metric: "cnt"}, "empty", DefaultChartOptions())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestBarChartManyRowsFitSlots(t *testing.T) {
	res := &analysis.Result{Metric: "cnt", XAxis: "읍면동명"}
	for i := 0; i < 60; i++ {
		res.Rows = append(res.Rows, analysis.Row{Label: fmt.Sprintf("동%02d", i), Value: float64(100 - i)})
	}
	for _, opt := range []ChartOptions{DefaultChartOptions(), {WidthIn: 6, HeightIn: 4}} {
		p, err := BarChart(res, "many", opt)
		if err != nil {
			t.Fatalf("BarChart: %v", err)
		}
		c := draw.New(vgimg.New(vg.Length(opt.WidthIn)*vg.Inch, vg.Length(opt.HeightIn)*vg.Inch))
		dc := p.DataCanvas(c)
		slot := (dc.Max.X - dc.Min.X) / vg.Length(len(res.Rows)-1)

		if w := barWidth(len(res.Rows), opt); w >= slot {
			t.Fatalf("%vin chart: bar width %v overlaps slot %v", opt.WidthIn, w, slot)
		}
	}
	if w := barWidth(2, DefaultChartOptions()); w != maxBarWidth {
		t.Fatalf("few bars should keep the full width, got %v", w)
	}
}

func TestPalette(t *testing.T) {
	if got := Palette(1); len(got) != 1 || got[0] != magma[0] {
		t.Fatalf("single color palette should use first stop")
	}
	got := Palette(20)
	if got[0] != magma[0] || got[19] != magma[len(magma)-1] {
		t.Fatalf("palette should span dark to light")
	}
}

func TestSetupFontsMissingIsWarningAndIdempotent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "malgun.ttf")
	warn, err := SetupFonts(missing)
	if err != nil {
		t.Fatalf("SetupFonts: %v", err)
	}
	if !strings.Contains(warn, "malgun.ttf") {
		t.Fatalf("expected warning naming the font, got %q", warn)
	}
	again, err := SetupFonts(filepath.Join(t.TempDir(), "other.ttf"))
	if err != nil || again != warn {
		t.Fatalf("second call should return the first outcome, got %q, %v", again, err)
	}
}

func TestRegisterFont(t *testing.T) {
	prev, prevPlotter := plot.DefaultFont, plotter.DefaultFont
	t.Cleanup(func() {
		plot.DefaultFont = prev
		plotter.DefaultFont = prevPlotter
	})

	path := filepath.Join(t.TempDir(), "GoRegular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	warn, err := registerFont(path)
	if err != nil || warn != "" {
		t.Fatalf("registerFont: %q, %v", warn, err)
	}
	if plot.DefaultFont.Typeface != "GoRegular" {
		t.Fatalf("default font not switched: %+v", plot.DefaultFont)
	}
	if _, err := BarChart(sampleResult(), "with font", DefaultChartOptions()); err != nil {
		t.Fatalf("BarChart after font registration: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := registerFont(bad); err == nil {
		t.Fatal("expected parse error")
	}
}

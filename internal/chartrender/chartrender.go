// internal/chartrender/chartrender.go
// Package chartrender draws dashboard chart specs as static SVG or PNG images.
package chartrender

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mwiater/prodsight/internal/dashboard"
)

// Format selects the image encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
	barWidth      = 40
	barSpacing    = 16
)

// ErrUnsupported is returned for unknown formats and chart kinds.
var ErrUnsupported = errors.New("chartrender: unsupported")

// ParseFormat accepts "svg" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w format %q", ErrUnsupported, s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case FormatSVG:
		return chart.SVG, nil
	case FormatPNG:
		return chart.PNG, nil
	}
	return nil, fmt.Errorf("%w format %q", ErrUnsupported, f)
}

// Render draws spec to w. Grouped bars are flattened to one bar per
// (category, series) pair and horizontal bars are drawn vertically.
func Render(w io.Writer, spec dashboard.ChartSpec, format Format) error {
	rp, err := format.provider()
	if err != nil {
		return err
	}
	switch spec.Kind {
	case dashboard.ChartBar, dashboard.ChartHorizontalBar:
		return renderBars(w, spec, rp)
	case dashboard.ChartPie:
		return renderPie(w, spec, rp)
	case dashboard.ChartScatter:
		return renderScatter(w, spec, rp)
	}
	return fmt.Errorf("%w chart kind %q", ErrUnsupported, spec.Kind)
}

// RenderAll writes one image per chart of d into dir and returns the paths written.
func RenderAll(dir string, d dashboard.Dashboard, format Format) ([]string, error) {
	if _, err := format.provider(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create charts dir: %w", err)
	}
	var written []string
	for _, spec := range d.Charts() {
		path := filepath.Join(dir, spec.ID+format.Ext())
		if err := renderFile(path, spec, format); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func renderFile(path string, spec dashboard.ChartSpec, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Render(f, spec, format); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", spec.ID, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func renderBars(w io.Writer, spec dashboard.ChartSpec, rp chart.RendererProvider) error {
	var bars []chart.Value
	if spec.Grouped {
		for i := range firstCategories(spec) {
			for _, s := range spec.Series {
				if i >= len(s.Values) {
					continue
				}
				bars = append(bars, chart.Value{
					Label: fmt.Sprintf("%s %s", abbreviate(s.Categories[i]), strings.TrimSuffix(s.Name, " (%)")),
					Value: s.Values[i],
					Style: fillStyle(s.Color),
				})
			}
		}
	} else {
		for _, s := range spec.Series {
			for i, v := range s.Values {
				bars = append(bars, chart.Value{Label: s.Categories[i], Value: v, Style: fillStyle(colorAt(s, i))})
			}
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("%w: chart %q has no bars", ErrUnsupported, spec.ID)
	}

	yAxis := chart.YAxis{Name: valueAxis(spec).Label}
	if r := valueAxis(spec).Range; r != nil {
		yAxis.Range = &chart.ContinuousRange{Min: r.Min, Max: r.Max}
	}
	bc := chart.BarChart{
		Title:      spec.Title,
		Width:      max(defaultWidth, 120+len(bars)*(barWidth+barSpacing)),
		Height:     heightOf(spec),
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      yAxis,
		Bars:       bars,
	}
	return bc.Render(rp, w)
}

func renderPie(w io.Writer, spec dashboard.ChartSpec, rp chart.RendererProvider) error {
	var values []chart.Value
	for _, s := range spec.Series {
		for i, v := range s.Values {
			values = append(values, chart.Value{Label: s.Categories[i], Value: v, Style: fillStyle(colorAt(s, i))})
		}
	}
	pc := chart.PieChart{
		Title:  spec.Title,
		Width:  heightOf(spec) * 2,
		Height: heightOf(spec) * 2,
		Values: values,
	}
	return pc.Render(rp, w)
}

func renderScatter(w io.Writer, spec dashboard.ChartSpec, rp chart.RendererProvider) error {
	var series []chart.Series
	for _, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(hexColor(s.Color)),
		})
	}
	for _, ref := range spec.References {
		style := chart.Style{StrokeColor: hexColor(ref.Color), StrokeWidth: 2}
		if ref.Dashed {
			style.StrokeDashArray = []float64{6, 4}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ref.Label,
			XValues: []float64{ref.From.X, ref.To.X},
			YValues: []float64{ref.From.Y, ref.To.Y},
			Style:   style,
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("%w: chart %q has no points", ErrUnsupported, spec.ID)
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      defaultWidth,
		Height:     heightOf(spec),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: spec.XAxis.Label, Range: continuousRange(spec.XAxis.Range)},
		YAxis:      chart.YAxis{Name: spec.YAxis.Label, Range: continuousRange(spec.YAxis.Range)},
		Series:     series,
	}
	if spec.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch.Render(rp, w)
}

// pointStyle renders dots only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

func fillStyle(hex string) chart.Style {
	col := hexColor(hex)
	return chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1}
}

func hexColor(hex string) drawing.Color {
	if hex == "" {
		return chart.ColorAlternateGray
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func continuousRange(r *dashboard.AxisRange) chart.Range {
	if r == nil {
		return nil
	}
	return &chart.ContinuousRange{Min: r.Min, Max: r.Max}
}

// valueAxis is the axis carrying bar magnitudes; horizontal bars keep it on X.
func valueAxis(spec dashboard.ChartSpec) dashboard.Axis {
	if spec.Kind == dashboard.ChartHorizontalBar {
		return spec.XAxis
	}
	return spec.YAxis
}

func colorAt(s dashboard.Series, i int) string {
	if i < len(s.Colors) {
		return s.Colors[i]
	}
	return s.Color
}

func firstCategories(spec dashboard.ChartSpec) []string {
	if len(spec.Series) == 0 {
		return nil
	}
	return spec.Series[0].Categories
}

// abbreviate reduces "Random Forest" to "RF" so flattened labels fit under a bar.
func abbreviate(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return name
	}
	var b strings.Builder
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func heightOf(spec dashboard.ChartSpec) int {
	if spec.Height > 0 {
		return spec.Height
	}
	return defaultHeight
}

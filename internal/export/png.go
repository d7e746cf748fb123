// Package export writes a render cycle to files: the four panels as PNG
// charts and the underlying numbers as an xlsx workbook.
package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/0Shafa/education-dashboard/internal/dashboard"
)

var (
	blueActual     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	orangePredict  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	redMissing     = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	greenHistogram = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// Charts writes one PNG per rendered panel into dir and returns the paths
// written. Panels without data (an empty selection, a skipped forecast) are
// left out rather than producing empty images.
func Charts(res *dashboard.RenderResult, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir export dir: %w", err)
	}
	var written []string
	save := func(name string, fn func(string) error) error {
		path := filepath.Join(dir, name)
		if err := fn(path); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}
	if res.Trend != nil && len(res.Series.Clean()) > 0 {
		if err := save("trend.png", func(p string) error { return saveTrend(res, p) }); err != nil {
			return written, err
		}
	}
	if res.Forecast != nil && len(res.Predicted) > 0 {
		if err := save("forecast.png", func(p string) error { return saveForecast(res, p) }); err != nil {
			return written, err
		}
	}
	if res.Completeness != nil && len(res.MissingByYear) > 0 {
		if err := save("completeness.png", func(p string) error { return saveCompleteness(res, p) }); err != nil {
			return written, err
		}
	}
	if res.Distribution != nil && len(res.Histogram.Bins) > 0 {
		if err := save("distribution.png", func(p string) error { return saveDistribution(res, p) }); err != nil {
			return written, err
		}
	}
	return written, nil
}

func saveTrend(res *dashboard.RenderResult, path string) error {
	p := plot.New()
	p.Title.Text = res.Trend.Title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Value"

	clean := res.Series.Clean()
	pts := make(plotter.XYs, len(clean))
	for i, r := range clean {
		pts[i].X = float64(r.Year)
		pts[i].Y = r.Value
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trend line: %w", err)
	}
	line.LineStyle.Color = blueActual
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("trend markers: %w", err)
	}
	scatter.GlyphStyle.Color = blueActual

	p.Add(plotter.NewGrid(), line, scatter)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save trend chart: %w", err)
	}
	return nil
}

func saveForecast(res *dashboard.RenderResult, path string) error {
	p := plot.New()
	p.Title.Text = res.Forecast.Title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Predicted"

	pts := make(plotter.XYs, len(res.Predicted))
	for i, fp := range res.Predicted {
		pts[i].X = float64(fp.Year)
		pts[i].Y = fp.Value
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("forecast line: %w", err)
	}
	line.LineStyle.Color = orangePredict

	p.Add(plotter.NewGrid(), line)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save forecast chart: %w", err)
	}
	return nil
}

func saveCompleteness(res *dashboard.RenderResult, path string) error {
	p := plot.New()
	p.Title.Text = res.Completeness.Title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Missing rate"

	values := make(plotter.Values, len(res.MissingByYear))
	labels := make([]string, len(res.MissingByYear))
	for i, row := range res.MissingByYear {
		values[i] = row.MissingRate
		labels[i] = fmt.Sprintf("%d", row.Year)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("completeness bars: %w", err)
	}
	bars.Color = redMissing

	p.Add(bars)
	p.NominalX(labels...)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save completeness chart: %w", err)
	}
	return nil
}

func saveDistribution(res *dashboard.RenderResult, path string) error {
	p := plot.New()
	p.Title.Text = res.Distribution.Title
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Count"

	values := make(plotter.Values, len(res.Histogram.Bins))
	labels := make([]string, len(res.Histogram.Bins))
	for i, b := range res.Histogram.Bins {
		values[i] = float64(b.Count)
		labels[i] = fmt.Sprintf("%.4g", (b.Low+b.High)/2)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return fmt.Errorf("distribution bars: %w", err)
	}
	bars.Color = greenHistogram

	p.Add(bars)
	p.NominalX(labels...)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save distribution chart: %w", err)
	}
	return nil
}

package dashboard

import (
	"fmt"

	"github.com/0Shafa/education-dashboard/internal/analytics"
	"github.com/0Shafa/education-dashboard/internal/dataset"
)

// ChartType selects how a frontend draws a panel.
type ChartType string

const (
	ChartLine ChartType = "line"
	ChartBar  ChartType = "bar"
)

// Point is one plotted observation. Y is nil for a missing value so a line
// trace renders a gap there instead of interpolating across it.
type Point struct {
	X float64  `json:"x"`
	Y *float64 `json:"y"`
}

// Series is one named trace inside a chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
	Color  string  `json:"color,omitempty"`
}

// ChartConfig is a render-ready chart description: the frontend maps it onto
// plot traces without computing anything itself.
type ChartConfig struct {
	Type       ChartType `json:"type"`
	Title      string    `json:"title"`
	XLabel     string    `json:"xLabel"`
	YLabel     string    `json:"yLabel"`
	Series     []Series  `json:"series"`
	BarWidth   float64   `json:"barWidth,omitempty"`
	ShowLegend bool      `json:"showLegend"`
	ShowGrid   bool      `json:"showGrid"`
}

const (
	colorActual       = "#1f77b4"
	colorPredicted    = "#ff7f0e"
	colorMissingRate  = "#d62728"
	colorDistribution = "#2ca02c"
)

func trendChart(sel dataset.Selection, s dataset.LongSeries) *ChartConfig {
	pts := make([]Point, len(s))
	for i, r := range s {
		p := Point{X: float64(r.Year)}
		if !r.Missing {
			v := r.Value
			p.Y = &v
		}
		pts[i] = p
	}
	return &ChartConfig{
		Type:     ChartLine,
		Title:    fmt.Sprintf("Actual Trend: %s — %s", sel.Indicator, sel.Country),
		XLabel:   "Year",
		YLabel:   "Value",
		Series:   []Series{{Name: "Value", Points: pts, Color: colorActual}},
		ShowGrid: true,
	}
}

func forecastChart(points []analytics.ForecastPoint) *ChartConfig {
	pts := make([]Point, len(points))
	for i, fp := range points {
		v := fp.Value
		pts[i] = Point{X: float64(fp.Year), Y: &v}
	}
	return &ChartConfig{
		Type:     ChartLine,
		Title:    "Predicted Trend (Linear Regression)",
		XLabel:   "Year",
		YLabel:   "Predicted",
		Series:   []Series{{Name: "Predicted", Points: pts, Color: colorPredicted}},
		ShowGrid: true,
	}
}

func completenessChart(rows []analytics.YearCompleteness) *ChartConfig {
	pts := make([]Point, len(rows))
	for i, r := range rows {
		v := r.MissingRate
		pts[i] = Point{X: float64(r.Year), Y: &v}
	}
	return &ChartConfig{
		Type:     ChartBar,
		Title:    "Missing Rate by Year",
		XLabel:   "Year",
		YLabel:   "Missing rate (0–1)",
		Series:   []Series{{Name: "Missing rate", Points: pts, Color: colorMissingRate}},
		ShowGrid: true,
	}
}

func distributionChart(h analytics.Histogram) *ChartConfig {
	pts := make([]Point, len(h.Bins))
	width := 0.0
	for i, b := range h.Bins {
		v := float64(b.Count)
		pts[i] = Point{X: (b.Low + b.High) / 2, Y: &v}
		if w := b.High - b.Low; w > width {
			width = w
		}
	}
	return &ChartConfig{
		Type:     ChartBar,
		Title:    "Value Distribution (Non-missing)",
		XLabel:   "Value",
		YLabel:   "Count",
		Series:   []Series{{Name: "Count", Points: pts, Color: colorDistribution}},
		BarWidth: width,
		ShowGrid: true,
	}
}

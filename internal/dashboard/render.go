// Package dashboard runs one full render cycle over a raw table: detect and
// validate the schema, filter to the selection, reshape to a long series, and
// derive the four panels. Render is pure apart from the generated render ID,
// so the whole pipeline is exercisable in tests without any UI or server.
package dashboard

import (
	"errors"

	"github.com/google/uuid"

	"github.com/0Shafa/education-dashboard/internal/analytics"
	"github.com/0Shafa/education-dashboard/internal/dataset"
)

// BannerLevel grades a banner message.
type BannerLevel string

const (
	BannerWarning BannerLevel = "warning"
	BannerInfo    BannerLevel = "info"
)

// Banner is a message shown above the chart panels.
type Banner struct {
	Level   BannerLevel `json:"level"`
	Message string      `json:"message"`
}

// User-facing banner texts.
const (
	msgNoYearsInRange   = "No year columns found in this range for the selected country/indicator."
	msgInsufficientData = "Not enough data points for regression. Choose another indicator or widen the year range."
)

// RenderResult is the complete output of one render cycle. A new result
// supersedes any previous one; RenderID makes the cycle identifiable in logs
// and responses. Chart fields are nil when their panel is skipped for this
// cycle (forecast without enough data, or the whole section on an empty year
// range). The unexported-to-JSON data fields carry the numbers behind the
// charts for the CLI summary and the file exporters.
type RenderResult struct {
	RenderID     string            `json:"renderId"`
	Selection    dataset.Selection `json:"selection"`
	Shape        string            `json:"shape"`
	Observations int               `json:"observations"`
	CleanCount   int               `json:"cleanCount"`
	Fit          *analytics.Line   `json:"fit,omitempty"`

	Trend        *ChartConfig `json:"trend,omitempty"`
	Forecast     *ChartConfig `json:"forecast,omitempty"`
	Completeness *ChartConfig `json:"completeness,omitempty"`
	Distribution *ChartConfig `json:"distribution,omitempty"`

	Banners []Banner `json:"banners"`

	Series        dataset.LongSeries           `json:"-"`
	Predicted     []analytics.ForecastPoint    `json:"-"`
	MissingByYear []analytics.YearCompleteness `json:"-"`
	Histogram     analytics.Histogram          `json:"-"`
}

// Render executes one synchronous pipeline run for the selection. A schema
// problem is returned as an error (*dataset.SchemaError) and no partial
// result is produced. Every other degraded case comes back as a result with
// banners: an empty year range halts the chart section with a warning, and a
// series too thin for regression replaces the forecast panel with a notice
// while the other panels still render.
func Render(t *dataset.Table, sel dataset.Selection) (*RenderResult, error) {
	shape, err := dataset.Validate(t)
	if err != nil {
		return nil, err
	}
	sub, err := dataset.FilterSelection(t, sel.Country, sel.Indicator)
	if err != nil {
		return nil, err
	}
	res := &RenderResult{
		RenderID:  uuid.NewString(),
		Selection: sel,
		Shape:     shape.String(),
		Banners:   []Banner{},
	}
	series, err := dataset.Reshape(sub, shape, sel)
	if err != nil {
		if errors.Is(err, dataset.ErrNoYearsInRange) {
			res.Banners = append(res.Banners, Banner{Level: BannerWarning, Message: msgNoYearsInRange})
			return res, nil
		}
		return nil, err
	}
	res.Series = series
	res.Observations = len(series)
	clean := series.Clean()
	res.CleanCount = len(clean)

	res.Trend = trendChart(sel, series)

	line, predicted, err := analytics.Forecast(series, analytics.ForecastHorizon)
	switch {
	case errors.Is(err, analytics.ErrInsufficientData):
		res.Banners = append(res.Banners, Banner{Level: BannerInfo, Message: msgInsufficientData})
	case err != nil:
		return nil, err
	default:
		res.Fit = &line
		res.Predicted = predicted
		res.Forecast = forecastChart(predicted)
	}

	res.MissingByYear = analytics.Completeness(series)
	res.Completeness = completenessChart(res.MissingByYear)

	res.Histogram = analytics.NewHistogram(clean.Values(), analytics.HistogramBins)
	res.Distribution = distributionChart(res.Histogram)
	return res, nil
}

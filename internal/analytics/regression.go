// Package analytics computes the derived statistics behind the dashboard
// panels: a least-squares trend forecast, per-year completeness, and a fixed
// bin histogram. Everything is deterministic float64 math on a LongSeries;
// missing values never reach a computation unless the function counts them.
package analytics

import (
	"errors"

	"github.com/0Shafa/education-dashboard/internal/dataset"
)

// ForecastHorizon is the number of consecutive future years a forecast spans.
const ForecastHorizon = 10

// ErrInsufficientData means too few usable observations for a line fit. It is
// an expected outcome, surfaced as a notice rather than a failure.
var ErrInsufficientData = errors.New("not enough data points for a linear fit")

// Line is a first-degree polynomial fitted by ordinary least squares.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// FitLine fits y = slope*x + intercept by ordinary least squares. It needs at
// least two points with distinct x values; otherwise ErrInsufficientData.
func FitLine(xs, ys []float64) (Line, error) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return Line{}, ErrInsufficientData
	}
	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)
	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		// All observations share one x; the slope is undefined.
		return Line{}, ErrInsufficientData
	}
	slope := sxy / sxx
	return Line{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

// ForecastPoint is one predicted future observation.
type ForecastPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Forecast fits a line to the non-missing records of the series and projects
// it over horizon consecutive years starting the year after the last clean
// observation. The gaps a trend chart shows do not influence the fit: only
// clean records enter it.
func Forecast(s dataset.LongSeries, horizon int) (Line, []ForecastPoint, error) {
	clean := s.Clean()
	if len(clean) < 2 {
		return Line{}, nil, ErrInsufficientData
	}
	xs := make([]float64, len(clean))
	ys := make([]float64, len(clean))
	lastYear := clean[0].Year
	for i, r := range clean {
		xs[i] = float64(r.Year)
		ys[i] = r.Value
		if r.Year > lastYear {
			lastYear = r.Year
		}
	}
	line, err := FitLine(xs, ys)
	if err != nil {
		return Line{}, nil, err
	}
	points := make([]ForecastPoint, horizon)
	for i := 0; i < horizon; i++ {
		year := lastYear + 1 + i
		points[i] = ForecastPoint{Year: year, Value: line.At(float64(year))}
	}
	return line, points, nil
}

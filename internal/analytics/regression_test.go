package analytics

import (
	"errors"
	"math"
	"testing"

	"github.com/0Shafa/education-dashboard/internal/dataset"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func obs(year int, value float64) dataset.LongRecord {
	return dataset.LongRecord{Country: "Chile", Indicator: "Literacy rate", Year: year, Value: value}
}

func gap(year int) dataset.LongRecord {
	return dataset.LongRecord{Country: "Chile", Indicator: "Literacy rate", Year: year, Missing: true}
}

func TestFitLineRecoversKnownLine(t *testing.T) {
	var xs, ys []float64
	for year := 2000; year <= 2010; year++ {
		xs = append(xs, float64(year))
		ys = append(ys, 2*float64(year)+3)
	}
	line, err := FitLine(xs, ys)
	if err != nil {
		t.Fatalf("FitLine: %v", err)
	}
	if !almostEqual(line.Slope, 2, 1e-9) {
		t.Fatalf("slope = %v, want 2", line.Slope)
	}
	if !almostEqual(line.Intercept, 3, 1e-6) {
		t.Fatalf("intercept = %v, want 3", line.Intercept)
	}
	if got := line.At(2020); !almostEqual(got, 4043, 1e-6) {
		t.Fatalf("At(2020) = %v, want 4043", got)
	}
}

func TestFitLineRejectsDegenerateInput(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{2000}, []float64{1}},
		{"length mismatch", []float64{2000, 2001}, []float64{1}},
		{"zero x variance", []float64{2000, 2000, 2000}, []float64{1, 2, 3}},
	}
	for _, tc := range cases {
		if _, err := FitLine(tc.xs, tc.ys); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("%s: error = %v, want ErrInsufficientData", tc.name, err)
		}
	}
}

func TestForecastProjectsTenConsecutiveYears(t *testing.T) {
	series := dataset.LongSeries{
		obs(2000, 1), obs(2001, 3), obs(2002, 5), obs(2003, 7), obs(2004, 9),
	}
	line, points, err := Forecast(series, ForecastHorizon)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if !almostEqual(line.Slope, 2, 1e-9) {
		t.Fatalf("slope = %v, want 2", line.Slope)
	}
	if len(points) != ForecastHorizon {
		t.Fatalf("points = %d, want %d", len(points), ForecastHorizon)
	}
	for i, p := range points {
		if p.Year != 2005+i {
			t.Fatalf("points[%d].Year = %d, want %d", i, p.Year, 2005+i)
		}
		if !almostEqual(p.Value, line.At(float64(p.Year)), 1e-9) {
			t.Fatalf("points[%d].Value = %v, want on the fitted line", i, p.Value)
		}
	}
	// The fit extends the observed progression.
	if !almostEqual(points[0].Value, 11, 1e-6) {
		t.Fatalf("first forecast = %v, want 11", points[0].Value)
	}
}

func TestForecastMatchesKnownLine(t *testing.T) {
	var series dataset.LongSeries
	for year := 2000; year <= 2010; year++ {
		series = append(series, obs(year, 2*float64(year)+3))
	}
	_, points, err := Forecast(series, ForecastHorizon)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	for i, p := range points {
		want := 2*float64(2011+i) + 3
		if !almostEqual(p.Value, want, 1e-6) {
			t.Fatalf("points[%d].Value = %v, want %v", i, p.Value, want)
		}
	}
}

func TestForecastUsesOnlyCleanRecords(t *testing.T) {
	series := dataset.LongSeries{
		obs(2000, 1), gap(2001), obs(2003, 7), gap(2004),
	}
	line, points, err := Forecast(series, ForecastHorizon)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	// Two clean points: (2000,1) and (2003,7).
	if !almostEqual(line.Slope, 2, 1e-9) {
		t.Fatalf("slope = %v, want 2", line.Slope)
	}
	// The horizon starts after the last clean year, not the last record.
	if points[0].Year != 2004 || points[len(points)-1].Year != 2013 {
		t.Fatalf("forecast years = %d-%d, want 2004-2013", points[0].Year, points[len(points)-1].Year)
	}
}

func TestForecastInsufficientData(t *testing.T) {
	cases := []struct {
		name   string
		series dataset.LongSeries
	}{
		{"empty", nil},
		{"single clean", dataset.LongSeries{obs(2000, 1)}},
		{"all missing", dataset.LongSeries{gap(2000), gap(2001), gap(2002)}},
		{"one year duplicated", dataset.LongSeries{obs(2000, 1), obs(2000, 2)}},
	}
	for _, tc := range cases {
		_, points, err := Forecast(tc.series, ForecastHorizon)
		if !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("%s: error = %v, want ErrInsufficientData", tc.name, err)
		}
		if points != nil {
			t.Fatalf("%s: points = %+v, want nil", tc.name, points)
		}
	}
}

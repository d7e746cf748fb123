package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/0Shafa/education-dashboard/internal/dashboard"
)

// Sheet names inside the exported workbook.
const (
	sheetSeries       = "Series"
	sheetForecast     = "Forecast"
	sheetCompleteness = "Completeness"
	sheetDistribution = "Distribution"
	sheetSummary      = "Summary"
)

// Workbook writes the numbers behind one render cycle as an xlsx workbook:
// the long series, the forecast, the per-year completeness, the histogram
// bins, and a summary sheet with the selection and fit.
func Workbook(res *dashboard.RenderResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetSeries)
	writeHeader(f, sheetSeries, []string{"Year", "Value"})
	for i, r := range res.Series {
		row := i + 2
		f.SetCellValue(sheetSeries, fmt.Sprintf("A%d", row), r.Year)
		if !r.Missing {
			f.SetCellValue(sheetSeries, fmt.Sprintf("B%d", row), r.Value)
		}
	}

	f.NewSheet(sheetForecast)
	writeHeader(f, sheetForecast, []string{"Year", "Predicted"})
	for i, fp := range res.Predicted {
		row := i + 2
		f.SetCellValue(sheetForecast, fmt.Sprintf("A%d", row), fp.Year)
		f.SetCellValue(sheetForecast, fmt.Sprintf("B%d", row), fp.Value)
	}

	f.NewSheet(sheetCompleteness)
	writeHeader(f, sheetCompleteness, []string{"Year", "Total", "Missing", "MissingRate"})
	for i, c := range res.MissingByYear {
		row := i + 2
		f.SetCellValue(sheetCompleteness, fmt.Sprintf("A%d", row), c.Year)
		f.SetCellValue(sheetCompleteness, fmt.Sprintf("B%d", row), c.Total)
		f.SetCellValue(sheetCompleteness, fmt.Sprintf("C%d", row), c.Missing)
		f.SetCellValue(sheetCompleteness, fmt.Sprintf("D%d", row), c.MissingRate)
	}

	f.NewSheet(sheetDistribution)
	writeHeader(f, sheetDistribution, []string{"BinLow", "BinHigh", "Count"})
	for i, b := range res.Histogram.Bins {
		row := i + 2
		f.SetCellValue(sheetDistribution, fmt.Sprintf("A%d", row), b.Low)
		f.SetCellValue(sheetDistribution, fmt.Sprintf("B%d", row), b.High)
		f.SetCellValue(sheetDistribution, fmt.Sprintf("C%d", row), b.Count)
	}

	f.NewSheet(sheetSummary)
	summary := [][2]any{
		{"RenderID", res.RenderID},
		{"Country", res.Selection.Country},
		{"Indicator", res.Selection.Indicator},
		{"FromYear", res.Selection.Years.From},
		{"ToYear", res.Selection.Years.To},
		{"Shape", res.Shape},
		{"Observations", res.Observations},
		{"CleanCount", res.CleanCount},
	}
	if res.Fit != nil {
		summary = append(summary,
			[2]any{"Slope", res.Fit.Slope},
			[2]any{"Intercept", res.Fit.Intercept},
		)
	}
	for i, kv := range summary {
		row := i + 1
		f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), kv[0])
		f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), kv[1])
	}
	f.SetColWidth(sheetSummary, "A", "B", 24)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 16)
	}
}

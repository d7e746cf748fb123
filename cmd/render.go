package cmd

import (
	"fmt"
	"os"

	"github.com/0Shafa/education-dashboard/internal/dashboard"
	"github.com/0Shafa/education-dashboard/internal/dataset"
	"github.com/0Shafa/education-dashboard/internal/export"
	"github.com/spf13/cobra"
)

var (
	renderCountry   string
	renderIndicator string
	renderFrom      int
	renderTo        int
	renderPNGDir    string
	renderXLSX      string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run one render cycle and print or export the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderCountry == "" || renderIndicator == "" {
			return fmt.Errorf("--country and --indicator are required")
		}
		t, err := loadTable()
		if err != nil {
			return err
		}
		shape, err := dataset.Validate(t)
		if err != nil {
			return err
		}
		bounds, err := dataset.YearBounds(t, shape)
		if err != nil {
			return err
		}
		win := dataset.DefaultWindow(bounds)
		from, to := win.From, win.To
		if cmd.Flags().Changed("from") {
			from = renderFrom
		}
		if cmd.Flags().Changed("to") {
			to = renderTo
		}

		sel := dataset.Selection{
			Country:   renderCountry,
			Indicator: renderIndicator,
			Years:     dataset.YearRange{From: from, To: to},
		}
		res, err := dashboard.Render(t, sel)
		if err != nil {
			return err
		}
		printResult(res)

		if renderPNGDir != "" {
			paths, err := export.Charts(res, renderPNGDir)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %d chart(s) to %s\n", len(paths), renderPNGDir)
		}
		if renderXLSX != "" {
			if err := export.Workbook(res, renderXLSX); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote workbook to %s\n", renderXLSX)
		}
		return nil
	},
}

func printResult(res *dashboard.RenderResult) {
	fmt.Printf("Render %s\n", res.RenderID)
	fmt.Printf("Selection: %s / %s, years %d-%d (%s shape)\n",
		res.Selection.Country, res.Selection.Indicator,
		res.Selection.Years.From, res.Selection.Years.To, res.Shape)
	for _, b := range res.Banners {
		if b.Level == dashboard.BannerWarning {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", b.Message)
		} else {
			fmt.Printf("Note: %s\n", b.Message)
		}
	}
	if res.Trend == nil {
		return
	}
	fmt.Printf("Observations: %d (%d with values, %d missing)\n",
		res.Observations, res.CleanCount, res.Observations-res.CleanCount)
	if res.Fit != nil {
		fmt.Printf("Fit: value = %.6g*year %+.6g\n", res.Fit.Slope, res.Fit.Intercept)
		first := res.Predicted[0]
		last := res.Predicted[len(res.Predicted)-1]
		fmt.Printf("Forecast: %d-%d (%.6g to %.6g)\n", first.Year, last.Year, first.Value, last.Value)
	}
	if debug {
		for _, c := range res.MissingByYear {
			fmt.Printf("  %d: %d/%d missing (rate %.3f)\n", c.Year, c.Missing, c.Total, c.MissingRate)
		}
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderCountry, "country", "c", "", "exact Country Name to select")
	renderCmd.Flags().StringVarP(&renderIndicator, "indicator", "i", "", "exact Indicator Name to select")
	renderCmd.Flags().IntVar(&renderFrom, "from", 0, "start year (default: clamped dataset range)")
	renderCmd.Flags().IntVar(&renderTo, "to", 0, "end year (default: clamped dataset range)")
	renderCmd.Flags().StringVar(&renderPNGDir, "png-dir", "", "directory to write the panel charts as PNG files")
	renderCmd.Flags().StringVar(&renderXLSX, "xlsx", "", "path to write an xlsx workbook with the render data")
}

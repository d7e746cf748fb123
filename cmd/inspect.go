package cmd

import (
	"fmt"
	"strings"

	"github.com/0Shafa/education-dashboard/internal/analytics"
	"github.com/0Shafa/education-dashboard/internal/dataset"
	"github.com/spf13/cobra"
)

const inspectColumnPreview = 30

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the dataset: shape, columns, year coverage, value stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		fmt.Printf("Dataset: %s\n", t.Path())
		fmt.Printf("Rows: %d\n", t.NumRows())
		fmt.Printf("Columns: %d\n", len(t.Columns()))

		shape, err := dataset.Validate(t)
		if err != nil {
			return err
		}
		fmt.Printf("Shape: %s\n", shape)
		if shape == dataset.ShapeWide {
			fmt.Printf("Year columns: %d\n", len(dataset.YearColumns(t)))
		}

		bounds, err := dataset.YearBounds(t, shape)
		if err != nil {
			return err
		}
		win := dataset.DefaultWindow(bounds)
		fmt.Printf("Years: %d-%d (default window %d-%d)\n", bounds.From, bounds.To, win.From, win.To)
		fmt.Printf("Countries: %d\n", len(dataset.Countries(t)))
		fmt.Printf("Indicators: %d\n", len(dataset.Indicators(t)))

		values := parsedValues(t, shape)
		if s := analytics.Describe(values); s.Count > 0 {
			fmt.Printf("Values: %d parsed (min %.4g, max %.4g, mean %.4g, std %.4g)\n",
				s.Count, s.Min, s.Max, s.Mean, s.Std)
		} else {
			fmt.Println("Values: none parsed")
		}

		cols := t.Columns()
		n := len(cols)
		if n > inspectColumnPreview {
			cols = cols[:inspectColumnPreview]
			fmt.Printf("Column names (first %d of %d): %s\n", inspectColumnPreview, n, strings.Join(cols, ", "))
		} else {
			fmt.Printf("Column names: %s\n", strings.Join(cols, ", "))
		}
		return nil
	},
}

// parsedValues collects every cell that coerces to a number from the value
// carrying columns: all year columns for wide tables, the Value column for
// long ones.
func parsedValues(t *dataset.Table, shape dataset.Shape) []float64 {
	var out []float64
	if shape == dataset.ShapeWide {
		for _, c := range dataset.YearColumns(t) {
			for _, cell := range t.Column(c) {
				if v, ok := dataset.ParseNumericOrMissing(cell); ok {
					out = append(out, v)
				}
			}
		}
		return out
	}
	for _, cell := range t.Column(dataset.ColValue) {
		if v, ok := dataset.ParseNumericOrMissing(cell); ok {
			out = append(out, v)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

package cmd

import (
	"fmt"

	"github.com/0Shafa/education-dashboard/internal/dataset"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <countries|indicators>",
	Short: "List the distinct countries or indicators in the dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		if _, err := dataset.Validate(t); err != nil {
			return err
		}
		var vals []string
		switch args[0] {
		case "countries":
			vals = dataset.Countries(t)
		case "indicators":
			vals = dataset.Indicators(t)
		default:
			return fmt.Errorf("unknown kind %q (use countries or indicators)", args[0])
		}
		if len(vals) == 0 {
			fmt.Println("(none)")
			return nil
		}
		for _, v := range vals {
			fmt.Printf("- %s\n", v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/0Shafa/education-dashboard/internal/dataset"
	"github.com/0Shafa/education-dashboard/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable()
		if err != nil {
			return err
		}
		// Fail fast on a malformed table instead of 422ing every request.
		shape, err := dataset.Validate(t)
		if err != nil {
			return err
		}
		bounds, err := dataset.YearBounds(t, shape)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" && cfg != nil && cfg.ListenAddr != "" {
			addr = cfg.ListenAddr
		}
		if addr == "" {
			addr = ":8080"
		}

		fmt.Printf("✓ Loaded %s: %d rows, %s shape, years %d-%d\n",
			t.Path(), t.NumRows(), shape, bounds.From, bounds.To)
		log.Printf("starting dashboard on %s", addr)
		if err := http.ListenAndServe(addr, server.New(t).Router()); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, else :8080)")
}

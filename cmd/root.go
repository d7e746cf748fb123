package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/0Shafa/education-dashboard/internal/config"
	"github.com/0Shafa/education-dashboard/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile  string
	debug    bool
	flagData string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "edstats",
	Short: "EdStats: explore education indicator tables in the browser or terminal",
	Long: `EdStats loads education indicator CSVs in wide (one column per year) or long
(Year/Value columns) layout, serves an interactive dashboard with trend,
forecast, completeness, and distribution panels, and exports render results
as PNG charts or an xlsx workbook.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.edstats/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "dataset CSV path (overrides config data_path)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data") && flagData != "" {
		cfg.DataPath = flagData
	}
}

// dataPath resolves the dataset file from the --data flag or the config.
func dataPath() (string, error) {
	if flagData != "" {
		return flagData, nil
	}
	if cfg != nil && cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	return "", fmt.Errorf("no dataset configured: pass --data or run 'edstats config set data_path <file>'")
}

// loadTable reads the configured dataset through the loader cache.
func loadTable() (*dataset.Table, error) {
	path, err := dataPath()
	if err != nil {
		return nil, err
	}
	return dataset.Load(path)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and load the dataset",
	Long: `Validate checks the configuration and loads the dataset once without
starting the server.

Checks performed:
  - Configuration syntax and required fields
  - Data source reachable (CSV file or MySQL table)
  - Required columns present, integral years, unique country/year pairs
  - EU aggregate present at the latest year

Example:
  greenshare validate --config greenshare.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type loadStatser interface {
	Stats() source.LoadStats
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	cmd.Printf("\n=== Configuration Validation ===\n")
	if cfgFile := GetConfigFile(); cfgFile != "" {
		cmd.Printf("Config file: %s\n", cfgFile)
	} else {
		cmd.Printf("Config file: (none, defaults and environment)\n")
	}
	cmd.Printf("Data source: %s\n\n", a.src.Name())

	snap, err := a.snapshot(context.Background())
	if err != nil {
		cmd.Printf("❌ %v\n", err)
		return fmt.Errorf("validation failed")
	}

	cmd.Printf("Rows:        %d\n", len(snap.Full))
	if ls, ok := a.src.(loadStatser); ok && ls.Stats().DroppedNaN > 0 {
		cmd.Printf("Dropped:     %d row(s) without a share\n", ls.Stats().DroppedNaN)
	}
	cmd.Printf("Years:       %d-%d\n", snap.Bounds.MinYear, snap.Bounds.MaxYear)
	cmd.Printf("Countries:   %d\n", len(snap.Roster))
	cmd.Printf("Aggregates:  %d row(s)\n", len(snap.Aggregates))
	cmd.Printf("Checksum:    %s\n\n", a.cache.Checksum())

	if _, err := analysis.EUAverage(snap.Full, a.cfg.Dashboard.EULabel, snap.Bounds.MaxYear); err != nil {
		if !dataset.IsDataNotFound(err) {
			return err
		}
		cmd.Printf("⚠️  No %q row for %d, the EU average KPI will be unavailable\n\n", a.cfg.Dashboard.EULabel, snap.Bounds.MaxYear)
	}

	cmd.Println("=== Validation Complete ===")
	cmd.Println("✅ Configuration and dataset are valid")
	return nil
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/report"
)

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Print the headline KPIs",
	Long: `KPI prints the three headline figures at the latest year in the dataset:
the EU average, the top performing country and the number of reporting
countries. A missing figure is reported without hiding the others.

Example:
  greenshare kpi --data cleaned_renewable_data.csv`,
	RunE: runKPI,
}

func init() {
	rootCmd.AddCommand(kpiCmd)
}

func runKPI(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	snap, err := a.snapshot(context.Background())
	if err != nil {
		return err
	}

	k := analysis.DeriveKPIs(snap, a.cfg.Dashboard.EULabel)
	report.NewPrinter(cmd.OutOrStdout(), !noColor).KPIs(k, a.cfg.Dashboard.EULabel)
	return nil
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/greenshare/internal/export"
	"github.com/dbsmedya/greenshare/internal/report"
)

var (
	exportOut   string
	exportFlags selectionFlags
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard view to an XLSX workbook",
	Long: `Export writes the KPIs, the filtered rows and the leaderboard for the
upper selected year to an XLSX workbook with one sheet each.

Example:
  greenshare export --out renewables.xlsx --country Sweden,Finland --from 2015`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output .xlsx path (required)")
	_ = exportCmd.MarkFlagRequired("out")
	addSelectionFlags(exportCmd, &exportFlags)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	snap, err := a.snapshot(context.Background())
	if err != nil {
		return err
	}

	sel := exportFlags.selection(snap, a.cfg.Dashboard.DefaultCountries, cmd.Flags().Changed("country"))
	report.NewPrinter(cmd.ErrOrStderr(), !noColor).SelectionNotes(sel)

	view := export.NewView(snap, sel, a.cfg.Dashboard)
	if err := export.WriteFile(exportOut, view); err != nil {
		return err
	}

	a.log.Infow("Workbook written", "path", exportOut, "rows", len(view.Filtered))
	cmd.Printf("Wrote %s (%d rows, %d leaders for %d)\n", exportOut, len(view.Filtered), len(view.Leaders), view.LeaderYear)
	return nil
}

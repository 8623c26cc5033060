package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/report"
)

var filterFlags selectionFlags

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print renewable shares for selected countries and years",
	Long: `Filter prints the rows for the selected countries within an inclusive
year range, in dataset order. Unknown countries are ignored and reported, an
inverted range is swapped and years outside the dataset are clamped.

Example:
  greenshare filter --country Germany,France --from 2010 --to 2022`,
	RunE: runFilter,
}

func init() {
	addSelectionFlags(filterCmd, &filterFlags)
	rootCmd.AddCommand(filterCmd)
}

func addSelectionFlags(cmd *cobra.Command, f *selectionFlags) {
	cmd.Flags().StringSliceVar(&f.countries, "country", nil,
		"Countries to include, repeatable or comma separated (default: dashboard.default_countries)")
	cmd.Flags().IntVar(&f.from, "from", 0, "First year, inclusive (default: earliest year)")
	cmd.Flags().IntVar(&f.to, "to", 0, "Last year, inclusive (default: latest year)")
}

func runFilter(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	snap, err := a.snapshot(context.Background())
	if err != nil {
		return err
	}

	sel := filterFlags.selection(snap, a.cfg.Dashboard.DefaultCountries, cmd.Flags().Changed("country"))
	rows := analysis.Filter(snap.Countries, sel.Countries, sel.From, sel.To)

	p := report.NewPrinter(cmd.OutOrStdout(), !noColor)
	p.SelectionNotes(sel)
	p.Records(sel, rows)
	return nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/chart"
	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/report"
)

var (
	leaderboardYear int
	leaderboardTop  int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the countries with the highest renewable share",
	Long: `Leaderboard ranks countries by renewable share for one year.
Aggregates such as the EU-27 are excluded. Equal shares keep dataset order.

Example:
  greenshare leaderboard --year 2022 --top 10`,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVar(&leaderboardYear, "year", 0, "Year to rank (default: latest year)")
	leaderboardCmd.Flags().IntVar(&leaderboardTop, "top", 0, "Number of countries (default: dashboard.leaderboard_size)")
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	snap, err := a.snapshot(context.Background())
	if err != nil {
		return err
	}

	year := leaderboardYear
	if year == 0 {
		year = snap.Bounds.MaxYear
	}
	if !snap.Bounds.Contains(year) {
		return &dataset.DataNotFoundError{
			What:   "leaderboard",
			Year:   year,
			Reason: fmt.Sprintf("outside dataset bounds %d-%d", snap.Bounds.MinYear, snap.Bounds.MaxYear),
		}
	}

	n := leaderboardTop
	if n == 0 {
		n = a.cfg.Dashboard.LeaderboardSize
	}
	if n < 0 {
		return fmt.Errorf("--top must be positive, got %d", n)
	}

	scale, err := chart.NewScale(a.cfg.Dashboard.BarScale)
	if err != nil {
		return err
	}

	leaders := analysis.TopN(snap.Countries, year, n)
	report.NewPrinter(cmd.OutOrStdout(), !noColor).Leaderboard(year, leaders, scale)
	return nil
}

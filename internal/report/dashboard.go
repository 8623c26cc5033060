package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/chart"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

const barWidth = 30

// FormatShare renders a share with one decimal, e.g. "23.0%".
func FormatShare(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// KPIs prints the headline figures. A missing lookup prints as "n/a" with the
// reason, the other figures are unaffected.
func (p *Printer) KPIs(k analysis.KPIs, euLabel string) {
	p.Heading(fmt.Sprintf("Key figures (%d)", k.LatestYear))

	eu := FormatShare(k.EUAverage.RenewableShare)
	if k.EUAverageErr != nil {
		eu = p.style(color.New(color.FgYellow), "n/a") + "  " + k.EUAverageErr.Error()
	}
	top := fmt.Sprintf("%s (%s)", k.TopPerformer.Country, FormatShare(k.TopPerformer.RenewableShare))
	if k.TopPerformerErr != nil {
		top = p.style(color.New(color.FgYellow), "n/a") + "  " + k.TopPerformerErr.Error()
	}

	rows := [][]string{
		{"EU average (" + euLabel + ")", eu},
		{"Top performer", top},
		{"Reporting countries", strconv.Itoa(k.ReportingCountries)},
	}
	for _, r := range rows {
		fmt.Fprintf(p.w, "  %s  %s\n", p.style(color.New(color.FgGray), runewidth.FillRight(r[0], 24)), r[1])
	}
}

// Leaderboard prints ranked rows with a bar proportional to the leader's share,
// coloured on scale when styling is enabled.
func (p *Printer) Leaderboard(year int, leaders dataset.Table, scale *chart.Scale) {
	p.Heading(fmt.Sprintf("Top %d leaders (%d)", len(leaders), year))
	if len(leaders) == 0 {
		fmt.Fprintln(p.w, "  no country rows for that year")
		return
	}

	lo, hi, _ := analysis.ShareRange(leaders)
	rows := make([][]string, 0, len(leaders))
	for _, r := range analysis.Rank(leaders) {
		n := 0
		if hi > 0 {
			n = int(r.RenewableShare / hi * barWidth)
		}
		bar := strings.Repeat("█", max(n, 0))
		if scale != nil {
			bar = p.hex(chart.Hex(scale.At(r.RenewableShare, lo, hi)), bar)
		}
		rows = append(rows, []string{strconv.Itoa(r.Rank), r.Country, FormatShare(r.RenewableShare), bar})
	}
	p.Table(
		[]string{"#", "Country", "Share", ""},
		rows,
		[]Align{AlignRight, AlignLeft, AlignRight, AlignLeft},
	)
}

// Records prints a filtered table in row order. sel is the selection the
// rows were filtered with and only matters when rows is empty.
func (p *Printer) Records(sel analysis.NormalizedSelection, rows dataset.Table) {
	if len(rows) == 0 {
		if len(sel.Countries) == 0 {
			fmt.Fprintln(p.w, "Please select at least one country.")
			return
		}
		fmt.Fprintf(p.w, "No rows in range %d-%d for the selected countries.\n", sel.From, sel.To)
		return
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.Country, strconv.Itoa(r.Year), FormatShare(r.RenewableShare)}
	}
	p.Table([]string{"Country", "Year", "Share"}, out, []Align{AlignLeft, AlignRight, AlignRight})
}

// SelectionNotes prints what normalisation corrected, if anything.
func (p *Printer) SelectionNotes(n analysis.NormalizedSelection) {
	warn := color.New(color.FgYellow)
	if len(n.Unknown) > 0 {
		fmt.Fprintln(p.w, p.style(warn, "Ignored unknown countries: "+strings.Join(n.Unknown, ", ")))
	}
	if n.Swapped {
		fmt.Fprintln(p.w, p.style(warn, "Year range was inverted and has been swapped"))
	}
	if n.Clamped {
		fmt.Fprintln(p.w, p.style(warn, fmt.Sprintf("Year range clamped to %d-%d", n.From, n.To)))
	}
}

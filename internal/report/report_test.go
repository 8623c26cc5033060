package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/chart"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Table(
		[]string{"Country", "Year"},
		[][]string{{"Germany", "2021"}, {"Sweden", "22"}},
		[]Align{AlignLeft, AlignRight},
	)

	assert.Equal(t, []string{
		"Country  Year",
		"───────  ────",
		"Germany  2021",
		"Sweden     22",
	}, lines(&buf))
}

func TestTable_WideRunes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Table(
		[]string{"Country", "Share"},
		[][]string{{"Türkiye", "19.7%"}, {"Euro area – 20 countries", "23.5%"}},
		[]Align{AlignLeft, AlignRight},
	)

	out := lines(&buf)
	require.Len(t, out, 4)
	assert.Equal(t, runewidth.StringWidth(out[2]), runewidth.StringWidth(out[3]))
}

func TestTable_TruncatesLongCells(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	long := strings.Repeat("x", 60)
	p.Table([]string{"Country"}, [][]string{{long}}, nil)

	out := lines(&buf)
	require.Len(t, out, 3)
	assert.Equal(t, maxCellWidth, runewidth.StringWidth(out[2]))
	assert.True(t, strings.HasSuffix(out[2], "…"))
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "23.0%", FormatShare(23))
	assert.Equal(t, "66.4%", FormatShare(66.39))
}

func TestKPIs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.KPIs(analysis.KPIs{
		LatestYear:         2022,
		EUAverage:          dataset.Record{Country: dataset.LabelEU27, Year: 2022, RenewableShare: 23.0},
		TopPerformer:       dataset.Record{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
		ReportingCountries: 27,
	}, dataset.LabelEU27)

	out := buf.String()
	assert.Contains(t, out, "Key figures (2022)")
	assert.Contains(t, out, "23.0%")
	assert.Contains(t, out, "Sweden (66.0%)")
	assert.Contains(t, out, "27")
}

func TestKPIs_MissingEU(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.KPIs(analysis.KPIs{
		LatestYear:         2022,
		EUAverageErr:       errors.New("data not found: EU average"),
		TopPerformer:       dataset.Record{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
		ReportingCountries: 1,
	}, dataset.LabelEU27)

	out := buf.String()
	assert.Contains(t, out, "n/a  data not found: EU average")
	assert.Contains(t, out, "Sweden (66.0%)")
}

func TestLeaderboard(t *testing.T) {
	scale, err := chart.NewScale("Greens")
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Leaderboard(2022, dataset.Table{
		{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
		{Country: "Finland", Year: 2022, RenewableShare: 33.0},
	}, scale)

	out := lines(&buf)
	require.Len(t, out, 5)
	assert.Equal(t, "Top 2 leaders (2022)", out[0])
	assert.Contains(t, out[3], "Sweden")
	assert.Contains(t, out[3], strings.Repeat("█", barWidth))
	assert.Contains(t, out[4], "Finland")
	assert.Contains(t, out[4], strings.Repeat("█", barWidth/2))
	assert.NotContains(t, out[4], strings.Repeat("█", barWidth/2+1))
}

func TestLeaderboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Leaderboard(2022, dataset.Table{}, nil)
	assert.Contains(t, buf.String(), "no country rows")
}

func TestRecords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	sel := analysis.NormalizedSelection{Selection: analysis.Selection{Countries: []string{"Germany"}, From: 2022, To: 2022}}
	p.Records(sel, dataset.Table{{Country: "Germany", Year: 2022, RenewableShare: 20.8}})

	out := lines(&buf)
	require.Len(t, out, 3)
	assert.Equal(t, "Germany  2022  20.8%", out[2])
}

func TestRecords_EmptySelection(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Records(analysis.NormalizedSelection{}, dataset.Table{})
	assert.Equal(t, "Please select at least one country.\n", buf.String())
}

func TestRecords_NoRowsInRange(t *testing.T) {
	var buf bytes.Buffer
	sel := analysis.NormalizedSelection{Selection: analysis.Selection{Countries: []string{"Sweden"}, From: 1990, To: 1991}}
	NewPrinter(&buf, false).Records(sel, nil)
	assert.Equal(t, "No rows in range 1990-1991 for the selected countries.\n", buf.String())
}

func TestSelectionNotes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.SelectionNotes(analysis.NormalizedSelection{
		Selection: analysis.Selection{From: 2004, To: 2022},
		Unknown:   []string{"Atlantis"},
		Swapped:   true,
		Clamped:   true,
	})

	out := buf.String()
	assert.Contains(t, out, "Atlantis")
	assert.Contains(t, out, "swapped")
	assert.Contains(t, out, "2004-2022")

	buf.Reset()
	p.SelectionNotes(analysis.NormalizedSelection{})
	assert.Empty(t, buf.String())
}

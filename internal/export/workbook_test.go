package export

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

func sampleView() View {
	return View{
		Title: "Renewable Energy Transition in Europe",
		Selection: analysis.NormalizedSelection{
			Selection: analysis.Selection{Countries: []string{"Germany", "Sweden"}, From: 2021, To: 2022},
			Unknown:   []string{"Atlantis"},
		},
		KPIs: analysis.KPIs{
			LatestYear:         2022,
			EUAverage:          dataset.Record{Country: dataset.LabelEU27, Year: 2022, RenewableShare: 23.0},
			TopPerformer:       dataset.Record{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
			ReportingCountries: 27,
		},
		EULabel: dataset.LabelEU27,
		Filtered: dataset.Table{
			{Country: "Germany", Year: 2021, RenewableShare: 19.4},
			{Country: "Germany", Year: 2022, RenewableShare: 20.8},
			{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
		},
		LeaderYear: 2022,
		Leaders: dataset.Table{
			{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
			{Country: "Germany", Year: 2022, RenewableShare: 20.8},
		},
		SourceNote: "Data Source: Eurostat (sdg_07_40)",
	}
}

func readBack(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleView()))

	f := readBack(t, &buf)
	assert.Equal(t, []string{SheetSummary, SheetFiltered, SheetLeaderboard}, f.GetSheetList())

	rows, err := f.GetRows(SheetFiltered)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Country", "Year", "Renewable Share (%)"}, rows[0])
	assert.Equal(t, []string{"Germany", "2021", "19.4"}, rows[1])
	assert.Equal(t, []string{"Sweden", "2022", "66"}, rows[3])

	rows, err = f.GetRows(SheetLeaderboard)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Renewable Share 2022 (%)", rows[0][2])
	assert.Equal(t, []string{"1", "Sweden", "66"}, rows[1])
	assert.Equal(t, []string{"2", "Germany", "20.8"}, rows[2])
}

func TestWrite_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleView()))
	f := readBack(t, &buf)

	cell := func(ref string) string {
		v, err := f.GetCellValue(SheetSummary, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Renewable Energy Transition in Europe", cell("A1"))
	assert.Equal(t, "2022", cell("B3"))
	assert.Equal(t, "23", cell("B4"))
	assert.Equal(t, "Sweden", cell("B5"))
	assert.Equal(t, "27", cell("B7"))
	assert.Equal(t, "Germany, Sweden", cell("B9"))
	assert.Equal(t, "Atlantis", cell("B12"))
	assert.Equal(t, "Data Source: Eurostat (sdg_07_40)", cell("A14"))
}

func TestWrite_MissingKPIs(t *testing.T) {
	v := sampleView()
	v.KPIs.EUAverageErr = errors.New("missing")
	v.KPIs.TopPerformerErr = errors.New("missing")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, v))
	f := readBack(t, &buf)

	eu, err := f.GetCellValue(SheetSummary, "B4")
	require.NoError(t, err)
	assert.Equal(t, "n/a", eu)

	top, err := f.GetCellValue(SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "n/a", top)
}

func TestWrite_EmptySelection(t *testing.T) {
	v := sampleView()
	v.Filtered = dataset.Table{}
	v.Selection.Countries = nil

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, v))
	f := readBack(t, &buf)

	rows, err := f.GetRows(SheetFiltered)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenshare.xlsx")
	require.NoError(t, WriteFile(path, sampleView()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), SheetLeaderboard)
}

func TestNewView(t *testing.T) {
	table := dataset.Table{
		{Country: "Germany", Year: 2021, RenewableShare: 19.4},
		{Country: "Germany", Year: 2022, RenewableShare: 20.8},
		{Country: "Sweden", Year: 2021, RenewableShare: 62.6},
		{Country: "Sweden", Year: 2022, RenewableShare: 66.0},
		{Country: dataset.LabelEU27, Year: 2022, RenewableShare: 23.0},
	}
	snap, err := analysis.NewSnapshot(table, dataset.NewClassifier(dataset.DefaultAggregateLabels()))
	require.NoError(t, err)

	sel := analysis.NormalizeSelection(analysis.Selection{Countries: []string{"Germany"}, From: 2021, To: 2021}, snap.Roster, snap.Bounds)
	v := NewView(snap, sel, config.DefaultConfig().Dashboard)

	assert.Equal(t, 2021, v.LeaderYear)
	assert.Equal(t, dataset.Table{{Country: "Germany", Year: 2021, RenewableShare: 19.4}}, v.Filtered)
	require.Len(t, v.Leaders, 2)
	assert.Equal(t, "Sweden", v.Leaders[0].Country)
	assert.Equal(t, 23.0, v.KPIs.EUAverage.RenewableShare)
	assert.Equal(t, "Data Source: Eurostat (sdg_07_40)", v.SourceNote)
}

// Package export writes the current dashboard view to an XLSX workbook.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// Sheet names, in workbook order.
const (
	SheetSummary     = "Summary"
	SheetFiltered    = "Filtered"
	SheetLeaderboard = "Leaderboard"
)

// View is everything the dashboard shows for one selection.
type View struct {
	Title      string
	Selection  analysis.NormalizedSelection
	KPIs       analysis.KPIs
	EULabel    string
	Filtered   dataset.Table
	LeaderYear int
	Leaders    dataset.Table
	SourceNote string
}

// NewView derives the view for sel from snap using the dashboard settings.
// The leaderboard is taken at the upper selected year.
func NewView(snap *analysis.Snapshot, sel analysis.NormalizedSelection, d config.DashboardConfig) View {
	return View{
		Title:      d.Title,
		Selection:  sel,
		KPIs:       analysis.DeriveKPIs(snap, d.EULabel),
		EULabel:    d.EULabel,
		Filtered:   analysis.Filter(snap.Countries, sel.Countries, sel.From, sel.To),
		LeaderYear: sel.To,
		Leaders:    analysis.TopN(snap.Countries, sel.To, d.LeaderboardSize),
		SourceNote: d.SourceNote,
	}
}

// Build assembles the workbook. The caller owns the returned file and must
// close it.
func Build(v View) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetFiltered, SheetLeaderboard} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	steps := []func(*excelize.File, View, int) error{
		writeSummary,
		writeFiltered,
		writeLeaderboard,
	}
	for _, step := range steps {
		if err := step(f, v, bold); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, v View) error {
	f, err := Build(v)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile builds the workbook and saves it to path.
func WriteFile(path string, v View) error {
	f, err := Build(v)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, v View, bold int) error {
	kpiValue := func(r dataset.Record, err error) interface{} {
		if err != nil {
			return "n/a"
		}
		return r.RenewableShare
	}
	topName := v.KPIs.TopPerformer.Country
	if v.KPIs.TopPerformerErr != nil {
		topName = "n/a"
	}

	rows := [][]interface{}{
		{v.Title},
		{},
		{"Latest year", v.KPIs.LatestYear},
		{v.EULabel + " share (%)", kpiValue(v.KPIs.EUAverage, v.KPIs.EUAverageErr)},
		{"Top performer", topName},
		{"Top performer share (%)", kpiValue(v.KPIs.TopPerformer, v.KPIs.TopPerformerErr)},
		{"Reporting countries", v.KPIs.ReportingCountries},
		{},
		{"Selected countries", strings.Join(v.Selection.Countries, ", ")},
		{"From", v.Selection.From},
		{"To", v.Selection.To},
	}
	if len(v.Selection.Unknown) > 0 {
		rows = append(rows, []interface{}{"Ignored countries", strings.Join(v.Selection.Unknown, ", ")})
	}
	if v.SourceNote != "" {
		rows = append(rows, []interface{}{}, []interface{}{v.SourceNote})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}

	if err := f.SetCellStyle(SheetSummary, "A1", "A1", bold); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "A", 38)
}

func writeFiltered(f *excelize.File, v View, bold int) error {
	if err := writeHeader(f, SheetFiltered, bold, "Country", "Year", "Renewable Share (%)"); err != nil {
		return err
	}
	for i, r := range v.Filtered {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.Country, r.Year, r.RenewableShare}
		if err := f.SetSheetRow(SheetFiltered, cell, &row); err != nil {
			return fmt.Errorf("filtered row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(SheetFiltered, "A", "A", 32)
}

func writeLeaderboard(f *excelize.File, v View, bold int) error {
	if err := writeHeader(f, SheetLeaderboard, bold, "Rank", "Country", fmt.Sprintf("Renewable Share %d (%%)", v.LeaderYear)); err != nil {
		return err
	}
	for i, r := range analysis.Rank(v.Leaders) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.Rank, r.Country, r.RenewableShare}
		if err := f.SetSheetRow(SheetLeaderboard, cell, &row); err != nil {
			return fmt.Errorf("leaderboard row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(SheetLeaderboard, "B", "B", 32)
}

func writeHeader(f *excelize.File, sheet string, style int, headers ...string) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

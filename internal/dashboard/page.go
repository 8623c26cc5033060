package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

//go:embed templates/index.html
var templatesFS embed.FS

func parsePage() (*template.Template, error) {
	t, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return t, nil
}

// kpiCard is one metric on the page.
type kpiCard struct {
	Label   string
	Value   string
	Missing string
}

type pageData struct {
	Title      string
	SourceNote string
	Roster     []string
	Selected   map[string]bool
	Selection  analysis.NormalizedSelection
	Bounds     dataset.Bounds
	Cards      []kpiCard
	Empty      string
	LineSrc    template.URL
	BarSrc     template.URL
	ExportHref template.URL
	MapYear    int
	TopN       int
}

func kpiCards(k analysis.KPIs) []kpiCard {
	eu := kpiCard{Label: "EU Average (Latest)"}
	if k.EUAverageErr != nil {
		eu.Missing = k.EUAverageErr.Error()
	} else {
		eu.Value = fmt.Sprintf("%.2f%%", k.EUAverage.RenewableShare)
	}

	top := kpiCard{Label: "Top Performer"}
	if k.TopPerformerErr != nil {
		top.Missing = k.TopPerformerErr.Error()
	} else {
		top.Label = "Top Performer: " + k.TopPerformer.Country
		top.Value = fmt.Sprintf("%.2f%%", k.TopPerformer.RenewableShare)
	}

	count := kpiCard{Label: "Reporting Countries", Value: strconv.Itoa(k.ReportingCountries)}
	return []kpiCard{eu, top, count}
}

func (s *Server) handleIndex(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	sel, err := s.selection(c, snap)
	if err != nil {
		abort(c, err)
		return
	}

	selected := make(map[string]bool, len(sel.Countries))
	for _, name := range sel.Countries {
		selected[name] = true
	}
	q := encodeSelection(sel.Selection)

	data := pageData{
		Title:      s.cfg.Dashboard.Title,
		SourceNote: s.cfg.Dashboard.SourceNote,
		Roster:     snap.Roster,
		Selected:   selected,
		Selection:  sel,
		Bounds:     snap.Bounds,
		Cards:      kpiCards(analysis.DeriveKPIs(snap, s.cfg.Dashboard.EULabel)),
		LineSrc:    template.URL("/charts/line.svg?" + q),
		BarSrc:     template.URL("/charts/bar.svg?" + q),
		ExportHref: template.URL("/export.xlsx?" + q),
		MapYear:    sel.To,
		TopN:       s.cfg.Dashboard.LeaderboardSize,
	}
	if len(sel.Countries) == 0 {
		data.Empty = emptySelectionMessage
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.page.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
		s.log.Errorw("Failed to render page", "error", err)
	}
}

package dashboard

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/chart"
	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/export"
)

const svgContentType = "image/svg+xml"

// emptySelectionMessage is shown wherever a chart would be empty.
const emptySelectionMessage = "Please select at least one country."

func (s *Server) snapshot(c *gin.Context) (*analysis.Snapshot, bool) {
	snap, err := s.cache.Get(c.Request.Context())
	if err != nil {
		abort(c, fmt.Errorf("dataset unavailable: %w", err))
		return nil, false
	}
	return snap, true
}

// kpiJSON is one KPI with either a value or the reason it is missing.
type kpiJSON struct {
	Country string   `json:"country,omitempty"`
	Year    int      `json:"year"`
	Share   *float64 `json:"share"`
	Error   string   `json:"error,omitempty"`
}

func newKPIJSON(r dataset.Record, err error) kpiJSON {
	if err != nil {
		return kpiJSON{Error: err.Error()}
	}
	share := r.RenewableShare
	return kpiJSON{Country: r.Country, Year: r.Year, Share: &share}
}

func (s *Server) handleMeta(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.Header("ETag", `"`+s.cache.Checksum()+`"`)
	c.JSON(http.StatusOK, gin.H{
		"title":            s.cfg.Dashboard.Title,
		"countries":        snap.Roster,
		"bounds":           snap.Bounds,
		"defaults":         analysis.DefaultSelection(s.cfg.Dashboard.DefaultCountries, snap.Roster, snap.Bounds),
		"aggregate_labels": snap.Classifier.Labels(),
		"eu_label":         s.cfg.Dashboard.EULabel,
		"source_note":      s.cfg.Dashboard.SourceNote,
		"loaded_at":        s.cache.LoadedAt().Format(time.RFC3339),
	})
}

func (s *Server) handleKPIs(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	k := analysis.DeriveKPIs(snap, s.cfg.Dashboard.EULabel)
	c.JSON(http.StatusOK, gin.H{
		"latest_year":         k.LatestYear,
		"eu_average":          newKPIJSON(k.EUAverage, k.EUAverageErr),
		"top_performer":       newKPIJSON(k.TopPerformer, k.TopPerformerErr),
		"reporting_countries": k.ReportingCountries,
	})
}

func (s *Server) handleSeries(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	sel, err := s.selection(c, snap)
	if err != nil {
		abort(c, err)
		return
	}

	filtered := analysis.Filter(snap.Countries, sel.Countries, sel.From, sel.To)
	body := gin.H{
		"selection": sel,
		"series":    analysis.BuildSeries(filtered),
	}
	if len(sel.Countries) == 0 {
		body["message"] = emptySelectionMessage
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	year, err := yearParam(c, snap.Bounds, snap.Bounds.MaxYear)
	if err != nil {
		abort(c, err)
		return
	}
	n, err := intParam(c, "n", s.cfg.Dashboard.LeaderboardSize)
	if err != nil {
		abort(c, err)
		return
	}
	if n <= 0 {
		abort(c, &paramError{Param: "n", Value: fmt.Sprint(n), Err: fmt.Errorf("must be positive")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":    year,
		"leaders": analysis.Rank(analysis.TopN(snap.Countries, year, n)),
	})
}

// mapEntryJSON is a choropleth entry with its precomputed colour.
type mapEntryJSON struct {
	analysis.MapEntry
	Color string `json:"color"`
}

func (s *Server) handleMap(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	year, err := yearParam(c, snap.Bounds, snap.Bounds.MaxYear)
	if err != nil {
		abort(c, err)
		return
	}

	rows := analysis.AtYear(snap.Countries, year)
	lo, hi, _ := analysis.ShareRange(rows)
	entries := make([]mapEntryJSON, 0, len(rows))
	for _, e := range analysis.MapData(snap.Countries, year) {
		entries = append(entries, mapEntryJSON{MapEntry: e, Color: chart.Hex(s.mapped.At(e.Share, lo, hi))})
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"title":        fmt.Sprintf("Renewable Energy Share Across Europe (%d)", year),
		"locationmode": "country names",
		"scale":        s.mapped.Name,
		"colorscale":   s.mapped.Stops(),
		"min":          lo,
		"max":          hi,
		"entries":      entries,
	})
}

func (s *Server) handleLineChart(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	sel, err := s.selection(c, snap)
	if err != nil {
		abort(c, err)
		return
	}

	series := analysis.BuildSeries(analysis.Filter(snap.Countries, sel.Countries, sel.From, sel.To))
	var buf bytes.Buffer
	if err := chart.LineChart(&buf, series, chart.Options{Title: "Renewable Share % Over Time"}); err != nil {
		abort(c, err)
		return
	}
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *Server) handleBarChart(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	sel, err := s.selection(c, snap)
	if err != nil {
		abort(c, err)
		return
	}
	year, err := yearParam(c, snap.Bounds, sel.To)
	if err != nil {
		abort(c, err)
		return
	}

	leaders := analysis.TopN(snap.Countries, year, s.cfg.Dashboard.LeaderboardSize)
	title := fmt.Sprintf("Top %d Leaders in %d", s.cfg.Dashboard.LeaderboardSize, year)
	var buf bytes.Buffer
	if err := chart.BarChart(&buf, leaders, s.bar, chart.Options{Title: title}); err != nil {
		abort(c, err)
		return
	}
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *Server) handleExport(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	sel, err := s.selection(c, snap)
	if err != nil {
		abort(c, err)
		return
	}

	view := export.NewView(snap, sel, s.cfg.Dashboard)
	var buf bytes.Buffer
	if err := export.Write(&buf, view); err != nil {
		abort(c, err)
		return
	}

	filename := fmt.Sprintf("greenshare_%d-%d.xlsx", sel.From, sel.To)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// handleReload re-reads the source. With ?lazy=1 it only drops the cached
// snapshot and the next request loads it.
func (s *Server) handleReload(c *gin.Context) {
	lazy := false
	if raw := c.Query("lazy"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			abort(c, &paramError{Param: "lazy", Value: raw, Err: err})
			return
		}
		lazy = v
	}
	if lazy {
		s.cache.Invalidate()
		s.log.Infow("Dataset invalidated")
		c.JSON(http.StatusAccepted, gin.H{"status": "invalidated"})
		return
	}

	snap, err := s.cache.Reload(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": fmt.Sprintf("reload failed, keeping previous data: %v", err),
		})
		return
	}
	s.log.Infow("Dataset reloaded", "rows", len(snap.Full), "checksum", s.cache.Checksum())
	c.JSON(http.StatusOK, gin.H{
		"status":    "reloaded",
		"rows":      len(snap.Full),
		"bounds":    snap.Bounds,
		"checksum":  s.cache.Checksum(),
		"loaded_at": s.cache.LoadedAt().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	snap, err := s.cache.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
			"time":   time.Now().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"source":    s.cache.Source().Name(),
		"rows":      len(snap.Full),
		"checksum":  s.cache.Checksum(),
		"loads":     s.cache.Loads(),
		"loaded_at": s.cache.LoadedAt().Format(time.RFC3339),
		"time":      time.Now().Format(time.RFC3339),
	})
}

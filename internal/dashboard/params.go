package dashboard

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// intParam reads an optional integer query parameter; absent or blank
// yields def.
func intParam(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{Param: name, Value: raw, Err: err}
	}
	return v, nil
}

// selection reads ?country=..&country=..&from=..&to=.. and normalises it
// against the snapshot. Without any country parameter the configured
// defaults apply; an explicit empty country parameter selects nothing.
func (s *Server) selection(c *gin.Context, snap *analysis.Snapshot) (analysis.NormalizedSelection, error) {
	var sel analysis.Selection

	countries, present := c.GetQueryArray("country")
	if present {
		for _, v := range countries {
			if v = strings.TrimSpace(v); v != "" {
				sel.Countries = append(sel.Countries, v)
			}
		}
	} else {
		sel.Countries = s.cfg.Dashboard.DefaultCountries
	}

	var err error
	if sel.From, err = intParam(c, "from", 0); err != nil {
		return analysis.NormalizedSelection{}, err
	}
	if sel.To, err = intParam(c, "to", 0); err != nil {
		return analysis.NormalizedSelection{}, err
	}

	return analysis.NormalizeSelection(sel, snap.Roster, snap.Bounds), nil
}

// yearParam reads ?year=, defaulting to def, and rejects years outside the
// dataset.
func yearParam(c *gin.Context, bounds dataset.Bounds, def int) (int, error) {
	year, err := intParam(c, "year", def)
	if err != nil {
		return 0, err
	}
	if !bounds.Contains(year) {
		return 0, &dataset.DataNotFoundError{
			What:   "year",
			Year:   year,
			Reason: "outside dataset bounds " + strconv.Itoa(bounds.MinYear) + "-" + strconv.Itoa(bounds.MaxYear),
		}
	}
	return year, nil
}

// encodeSelection renders sel back into query parameters.
func encodeSelection(sel analysis.Selection) string {
	q := url.Values{}
	if len(sel.Countries) == 0 {
		q.Set("country", "")
	}
	for _, c := range sel.Countries {
		q.Add("country", c)
	}
	q.Set("from", strconv.Itoa(sel.From))
	q.Set("to", strconv.Itoa(sel.To))
	return q.Encode()
}

package analysis

import (
	"sort"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/greenshare/internal/dataset"
)

// Point is one (year, share) sample of a series.
type Point struct {
	Year  int     `json:"year"`
	Share float64 `json:"share"`
}

// Series is the time series of one country.
type Series struct {
	Country string  `json:"country"`
	Points  []Point `json:"points"`
}

// BuildSeries groups rows per country. Series come out in the order each
// country first appears in rows; points within a series are sorted by year.
func BuildSeries(rows dataset.Table) []Series {
	groups := orderedmap.NewOrderedMap[string, []Point]()
	for _, r := range rows {
		pts, _ := groups.Get(r.Country)
		groups.Set(r.Country, append(pts, Point{Year: r.Year, Share: r.RenewableShare}))
	}

	out := make([]Series, 0, groups.Len())
	for el := groups.Front(); el != nil; el = el.Next() {
		pts := el.Value
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
		out = append(out, Series{Country: el.Key, Points: pts})
	}
	return out
}

// MapEntry is one country's value on the choropleth.
type MapEntry struct {
	Country string  `json:"country"`
	Share   float64 `json:"share"`
}

// MapData returns one entry per country reporting in year, in input order.
func MapData(countryRows dataset.Table, year int) []MapEntry {
	rows := AtYear(countryRows, year)
	out := make([]MapEntry, len(rows))
	for i, r := range rows {
		out[i] = MapEntry{Country: r.Country, Share: r.RenewableShare}
	}
	return out
}

// ShareRange returns the min and max share in rows. ok is false for no rows.
func ShareRange(rows dataset.Table) (lo, hi float64, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	lo, hi = rows[0].RenewableShare, rows[0].RenewableShare
	for _, r := range rows[1:] {
		if r.RenewableShare < lo {
			lo = r.RenewableShare
		}
		if r.RenewableShare > hi {
			hi = r.RenewableShare
		}
	}
	return lo, hi, true
}

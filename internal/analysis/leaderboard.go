package analysis

import (
	"sort"

	"github.com/dbsmedya/greenshare/internal/dataset"
)

// DefaultLeaderboardSize is the number of leaders shown in the bar chart.
const DefaultLeaderboardSize = 10

// TopN returns up to n rows for year sorted by share, highest first.
// The sort is stable so equal shares keep their input order.
func TopN(rows dataset.Table, year, n int) dataset.Table {
	if n <= 0 {
		return dataset.Table{}
	}
	out := AtYear(rows, year)
	SortByShareDesc(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SortByShareDesc sorts rows in place by share, highest first, keeping the
// relative order of equal shares.
func SortByShareDesc(rows dataset.Table) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RenewableShare > rows[j].RenewableShare
	})
}

// Ranked is a leaderboard entry with its 1-based position.
type Ranked struct {
	Rank int `json:"rank"`
	dataset.Record
}

// Rank numbers an already sorted leaderboard.
func Rank(rows dataset.Table) []Ranked {
	out := make([]Ranked, len(rows))
	for i, r := range rows {
		out[i] = Ranked{Rank: i + 1, Record: r}
	}
	return out
}

package analysis

import (
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// Filter returns the subsequence of rows whose country is in selected and whose
// year lies in [yearLo, yearHi]. An empty selection yields an empty table.
func Filter(rows dataset.Table, selected []string, yearLo, yearHi int) dataset.Table {
	out := make(dataset.Table, 0)
	if len(selected) == 0 {
		return out
	}

	set := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		set[c] = struct{}{}
	}

	for _, r := range rows {
		if r.Year < yearLo || r.Year > yearHi {
			continue
		}
		if _, ok := set[r.Country]; !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AtYear returns the rows recorded for year, in input order.
func AtYear(rows dataset.Table, year int) dataset.Table {
	out := make(dataset.Table, 0)
	for _, r := range rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Selection is what the user picked in the sidebar: a set of countries and a
// closed year range. A zero From or To means "dataset bound".
type Selection struct {
	Countries []string `json:"countries"`
	From      int      `json:"from"`
	To        int      `json:"to"`
}

// NormalizedSelection is a Selection that is safe to filter with, plus notes
// on what had to be corrected.
type NormalizedSelection struct {
	Selection
	Unknown []string `json:"unknown,omitempty"` // requested countries missing from the roster
	Swapped bool     `json:"swapped"`           // From and To were inverted
	Clamped bool     `json:"clamped"`           // a bound fell outside the dataset
}

// NormalizeSelection validates sel against the roster and year bounds.
// Inverted ranges are swapped, out-of-range years are clamped, duplicate
// countries are collapsed and unknown ones are dropped and reported.
func NormalizeSelection(sel Selection, roster []string, bounds dataset.Bounds) NormalizedSelection {
	known := make(map[string]struct{}, len(roster))
	for _, c := range roster {
		known[c] = struct{}{}
	}

	var n NormalizedSelection
	n.Countries = make([]string, 0, len(sel.Countries))
	seen := make(map[string]struct{}, len(sel.Countries))
	for _, c := range sel.Countries {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := known[c]; !ok {
			n.Unknown = append(n.Unknown, c)
			continue
		}
		n.Countries = append(n.Countries, c)
	}

	from, to := sel.From, sel.To
	if from == 0 {
		from = bounds.MinYear
	}
	if to == 0 {
		to = bounds.MaxYear
	}
	if from > to {
		from, to = to, from
		n.Swapped = true
	}
	if !bounds.Contains(from) || !bounds.Contains(to) {
		n.Clamped = true
	}
	n.From = bounds.Clamp(from)
	n.To = bounds.Clamp(to)
	return n
}

// DefaultSelection returns the preselected countries that exist in the roster
// over the full year range.
func DefaultSelection(defaults []string, roster []string, bounds dataset.Bounds) Selection {
	n := NormalizeSelection(Selection{Countries: defaults}, roster, bounds)
	return n.Selection
}

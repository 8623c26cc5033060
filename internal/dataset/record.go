// Package dataset contains the record types shared by the loader, the analysis
// functions and the presentation layers.
package dataset

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Record is one row of the renewable share table.
type Record struct {
	Country        string  `json:"country"`
	Year           int     `json:"year"`
	RenewableShare float64 `json:"renewable_share"` // percentage, not range checked
}

// Table is an ordered set of records. Row order is the source order.
type Table []Record

// Bounds is the closed year interval covered by a table.
type Bounds struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}

// Contains reports whether year lies within the bounds.
func (b Bounds) Contains(year int) bool {
	return year >= b.MinYear && year <= b.MaxYear
}

// Clamp pulls year into the bounds.
func (b Bounds) Clamp(year int) int {
	if year < b.MinYear {
		return b.MinYear
	}
	if year > b.MaxYear {
		return b.MaxYear
	}
	return year
}

// Bounds returns the min and max year of the table.
// An empty table has no bounds and yields a DataNotFoundError.
func (t Table) Bounds() (Bounds, error) {
	if len(t) == 0 {
		return Bounds{}, &DataNotFoundError{What: "year bounds", Reason: "table is empty"}
	}
	b := Bounds{MinYear: t[0].Year, MaxYear: t[0].Year}
	for _, r := range t[1:] {
		if r.Year < b.MinYear {
			b.MinYear = r.Year
		}
		if r.Year > b.MaxYear {
			b.MaxYear = r.Year
		}
	}
	return b, nil
}

// Countries returns the distinct country labels in first-appearance order.
func (t Table) Countries() []string {
	seen := make(map[string]struct{}, len(t))
	out := make([]string, 0)
	for _, r := range t {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		out = append(out, r.Country)
	}
	return out
}

// Checksum returns a SHA256 over every row, in order. Two tables with equal
// rows in equal order share a checksum.
func (t Table) Checksum() string {
	h := sha256.New()
	var buf [8]byte
	for _, r := range t {
		h.Write([]byte(r.Country))
		h.Write([]byte{0})
		binary.BigEndian.PutUint64(buf[:], uint64(int64(r.Year)))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(r.RenewableShare))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

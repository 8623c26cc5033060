package analysis

import (
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// EUAverage returns the full-table record for the EU aggregate label at year.
func EUAverage(full dataset.Table, euLabel string, year int) (dataset.Record, error) {
	for _, r := range full {
		if r.Country == euLabel && r.Year == year {
			return r, nil
		}
	}
	return dataset.Record{}, &dataset.DataNotFoundError{
		What:    "EU average",
		Country: euLabel,
		Year:    year,
	}
}

// TopPerformer returns the country row with the highest share at year.
// Ties go to the row that comes first in input order.
func TopPerformer(countryRows dataset.Table, year int) (dataset.Record, error) {
	top := TopN(countryRows, year, 1)
	if len(top) == 0 {
		return dataset.Record{}, &dataset.DataNotFoundError{
			What:   "top performer",
			Year:   year,
			Reason: "no country rows for that year",
		}
	}
	return top[0], nil
}

// CountryCount returns the number of distinct countries across all country rows.
func CountryCount(countryRows dataset.Table) int {
	seen := make(map[string]struct{})
	for _, r := range countryRows {
		seen[r.Country] = struct{}{}
	}
	return len(seen)
}

// KPIs is the headline strip of the dashboard. The two lookups carry their own
// error so a missing EU row does not hide the top performer and vice versa.
type KPIs struct {
	LatestYear         int
	EUAverage          dataset.Record
	EUAverageErr       error
	TopPerformer       dataset.Record
	TopPerformerErr    error
	ReportingCountries int
}

// DeriveKPIs computes all three KPIs at the snapshot's latest year.
func DeriveKPIs(s *Snapshot, euLabel string) KPIs {
	k := KPIs{
		LatestYear:         s.Bounds.MaxYear,
		ReportingCountries: CountryCount(s.Countries),
	}
	k.EUAverage, k.EUAverageErr = EUAverage(s.Full, euLabel, s.Bounds.MaxYear)
	k.TopPerformer, k.TopPerformerErr = TopPerformer(s.Countries, s.Bounds.MaxYear)
	return k
}

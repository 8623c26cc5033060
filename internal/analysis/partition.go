// Package analysis holds the filter and aggregate logic behind the dashboard:
// splitting aggregates from countries, filtering by selection, deriving the
// headline KPIs and building leaderboards and chart series.
//
// Every function here is pure. Inputs are never mutated and results never
// alias caller-owned backing arrays.
package analysis

import (
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// Partition splits table into rows for individual countries and rows for
// aggregate labels. Relative order is preserved in both outputs and every
// input row lands in exactly one of them.
func Partition(table dataset.Table, cls *dataset.Classifier) (countryRows, aggregateRows dataset.Table) {
	countryRows = make(dataset.Table, 0, len(table))
	aggregateRows = make(dataset.Table, 0)
	for _, r := range table {
		if cls.IsAggregate(r.Country) {
			aggregateRows = append(aggregateRows, r)
			continue
		}
		countryRows = append(countryRows, r)
	}
	return countryRows, aggregateRows
}

// Snapshot is the partitioned, bounded view of one loaded table. It is built
// once per load and shared read-only by every request.
type Snapshot struct {
	Full       dataset.Table
	Countries  dataset.Table
	Aggregates dataset.Table
	Bounds     dataset.Bounds
	Roster     []string // distinct countries (aggregates excluded), first-appearance order
	Classifier *dataset.Classifier
}

// NewSnapshot partitions table and computes its bounds. An empty table yields
// a DataNotFoundError.
func NewSnapshot(table dataset.Table, cls *dataset.Classifier) (*Snapshot, error) {
	bounds, err := table.Bounds()
	if err != nil {
		return nil, err
	}
	countries, aggregates := Partition(table, cls)
	return &Snapshot{
		Full:       table,
		Countries:  countries,
		Aggregates: aggregates,
		Bounds:     bounds,
		Roster:     countries.Countries(),
		Classifier: cls,
	}, nil
}

package source

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// CSVSource reads the table from a CSV file with a header row.
type CSVSource struct {
	path    string
	columns config.ColumnsConfig
	stats   LoadStats
}

// NewCSVSource creates a CSV source for path.
func NewCSVSource(path string, columns config.ColumnsConfig) *CSVSource {
	return &CSVSource{path: path, columns: columns}
}

// Name returns the file path.
func (s *CSVSource) Name() string {
	return s.path
}

// Stats returns the statistics of the last successful load.
func (s *CSVSource) Stats() LoadStats {
	return s.stats
}

// Load opens and parses the file.
func (s *CSVSource) Load(ctx context.Context) (dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	table, stats, err := ParseCSV(f, s.columns)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	s.stats = stats
	return table, nil
}

// missingShare lists the share cell values that mean "no value".
var missingShare = map[string]bool{"": true, "NA": true, "NaN": true, "nan": true, ":": true}

// ParseCSV reads a CSV stream into a table. Extra columns are ignored and
// rows without a share are dropped. A missing column, a non-integer year, an
// unparsable share, an empty country or a duplicate (country, year) pair is
// an error.
func ParseCSV(r io.Reader, columns config.ColumnsConfig) (dataset.Table, LoadStats, error) {
	var stats LoadStats

	// Every cell is read verbatim; missing shares are decided below, per
	// column, so a country literally called "NA" survives.
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.NaNValues([]string{}),
		dataframe.WithTypes(map[string]series.Type{
			columns.Country: series.String,
			columns.Year:    series.String,
			columns.Share:   series.String,
		}),
	)
	if df.Err != nil {
		return nil, stats, fmt.Errorf("reading csv: %w", df.Err)
	}

	if err := requireColumns(df.Names(), columns); err != nil {
		return nil, stats, err
	}

	countries := df.Col(columns.Country).Records()
	years := df.Col(columns.Year).Records()
	shares := df.Col(columns.Share).Records()

	stats.SourceLines = df.Nrow()
	table := make(dataset.Table, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		line := i + 1
		country := strings.TrimSpace(countries[i])
		if country == "" || country == "NaN" {
			return nil, stats, fmt.Errorf("row %d: empty %q", line, columns.Country)
		}

		rawYear := strings.TrimSpace(years[i])
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			return nil, stats, fmt.Errorf("row %d: invalid %q value %q", line, columns.Year, rawYear)
		}

		rawShare := strings.TrimSpace(shares[i])
		if missingShare[rawShare] {
			stats.DroppedNaN++
			continue
		}
		share, err := strconv.ParseFloat(rawShare, 64)
		if err != nil || math.IsNaN(share) || math.IsInf(share, 0) {
			return nil, stats, fmt.Errorf("row %d: invalid %q value %q", line, columns.Share, rawShare)
		}

		table = append(table, dataset.Record{
			Country:        country,
			Year:           year,
			RenewableShare: share,
		})
	}

	if err := checkUnique(table); err != nil {
		return nil, stats, err
	}

	stats.Rows = len(table)
	return table, stats, nil
}

func requireColumns(names []string, columns config.ColumnsConfig) error {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	var missing []string
	for _, want := range []string{columns.Country, columns.Year, columns.Share} {
		if !present[want] {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing column(s) %s (have %s)", strings.Join(missing, ", "), strings.Join(names, ", "))
	}
	return nil
}

// Package source loads the renewable share table from a CSV file or a MySQL
// table and memoizes it for the lifetime of the process.
package source

import (
	"context"
	"fmt"
	"io"

	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/database"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// Source produces the full, unfiltered table.
type Source interface {
	// Load reads and parses the whole table. Rows come back in source order.
	Load(ctx context.Context) (dataset.Table, error)
	// Name identifies the source in logs, e.g. the file path.
	Name() string
}

// New builds the Source selected by cfg.Data.Driver.
func New(cfg *config.Config) (Source, error) {
	switch cfg.Data.Driver {
	case "csv", "":
		return NewCSVSource(cfg.Data.Path, cfg.Data.Columns), nil
	case "mysql":
		return NewSQLSource(database.NewManager(&cfg.Source), cfg.Data.Table, cfg.Data.Columns), nil
	default:
		return nil, fmt.Errorf("unsupported data driver %q", cfg.Data.Driver)
	}
}

// Close releases resources held by src, if any.
func Close(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// LoadStats describes what a load had to discard.
type LoadStats struct {
	Rows        int // rows kept
	DroppedNaN  int // rows without a share value
	SourceLines int // data rows read from the source
}

type key struct {
	country string
	year    int
}

// checkUnique enforces one row per (country, year).
func checkUnique(table dataset.Table) error {
	seen := make(map[key]int, len(table))
	for i, r := range table {
		k := key{r.Country, r.Year}
		if first, dup := seen[k]; dup {
			return fmt.Errorf("duplicate row for country %q year %d (rows %d and %d)", r.Country, r.Year, first+1, i+1)
		}
		seen[k] = i
	}
	return nil
}

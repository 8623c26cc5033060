package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/database"
	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/sqlutil"
)

// SQLSource reads the table from a MySQL table with one row per
// (country, year).
type SQLSource struct {
	db      *database.Manager
	table   string
	columns config.ColumnsConfig
	stats   LoadStats
}

// NewSQLSource creates a source reading table through db.
func NewSQLSource(db *database.Manager, table string, columns config.ColumnsConfig) *SQLSource {
	return &SQLSource{db: db, table: table, columns: columns}
}

// Name returns the table name.
func (s *SQLSource) Name() string {
	return "mysql:" + s.table
}

// Stats returns the statistics of the last successful load.
func (s *SQLSource) Stats() LoadStats {
	return s.stats
}

// Query returns the SELECT statement Load runs.
func (s *SQLSource) Query() (string, error) {
	cols := []string{s.columns.Country, s.columns.Year, s.columns.Share}
	return sqlutil.SelectColumns(s.table, cols, []string{s.columns.Country, s.columns.Year})
}

// Load connects if needed and reads every row. NULL shares are dropped.
func (s *SQLSource) Load(ctx context.Context) (dataset.Table, error) {
	query, err := s.Query()
	if err != nil {
		return nil, err
	}

	if err := s.db.Connect(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.Source.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer rows.Close()

	var stats LoadStats
	var table dataset.Table
	for rows.Next() {
		var (
			country string
			year    int
			share   sql.NullFloat64
		)
		if err := rows.Scan(&country, &year, &share); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats.SourceLines++
		if country == "" {
			return nil, fmt.Errorf("row %d: empty %s", stats.SourceLines, s.columns.Country)
		}
		if !share.Valid {
			stats.DroppedNaN++
			continue
		}
		table = append(table, dataset.Record{Country: country, Year: year, RenewableShare: share.Float64})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if err := checkUnique(table); err != nil {
		return nil, err
	}
	if table == nil {
		table = dataset.Table{}
	}

	stats.Rows = len(table)
	s.stats = stats
	return table, nil
}

// Close closes the database connection.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

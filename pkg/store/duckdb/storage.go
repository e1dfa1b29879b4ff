package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/marcboeker/go-duckdb/v2"
)

const DefaultView = "sales"

// Settings configures the embedded DuckDB database. When CSVPath is set the
// file is exposed as a read-only view named View.
type Settings struct {
	DbPath  string
	CSVPath string
	View    string
}

func NewDB(settings Settings) (*sql.DB, error) {
	bootQueries, err := settings.bootQueries()
	if err != nil {
		return nil, err
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

func (s Settings) bootQueries() ([]string, error) {
	if s.CSVPath == "" {
		return nil, nil
	}

	view := s.View
	if view == "" {
		view = DefaultView
	}
	if strings.ContainsAny(view, " ;\"'") {
		return nil, fmt.Errorf("invalid view name %q", view)
	}

	return []string{
		fmt.Sprintf(
			"CREATE OR REPLACE VIEW %s AS SELECT * FROM read_csv_auto(%s, header = true)",
			view, quoteLiteral(s.CSVPath),
		),
	}, nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

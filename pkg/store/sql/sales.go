package sql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const DefaultSalesTable = "sales"

const salesQuery = `
	SELECT
		CAST(Year AS INTEGER) AS year,
		Month,
		CAST(Recession AS INTEGER) AS recession,
		Vehicle_Type,
		CAST(Automobile_Sales AS DOUBLE) AS automobile_sales,
		CAST(Advertising_Expenditure AS DOUBLE) AS advertising_expenditure,
		CAST(unemployment_rate AS DOUBLE) AS unemployment_rate
	FROM %s`

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){0,2}$`)

type SalesReader interface {
	ReadSales(ctx context.Context) ([]store.SalesRow, error)
}

type salesReader struct {
	db    *sql.DB
	table string
}

func NewSalesReader(db *sql.DB, table string) (SalesReader, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if table == "" {
		table = DefaultSalesTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &salesReader{db: db, table: table}, nil
}

// SalesQuery returns the statement used to read table.
func SalesQuery(table string) string {
	return fmt.Sprintf(salesQuery, table)
}

func (s *salesReader) ReadSales(ctx context.Context) ([]store.SalesRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, SalesQuery(s.table))
	if err != nil {
		return nil, fmt.Errorf("sales query on %s failed: %w", s.table, err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close sales query rows")
		}
	}(rows)

	var out []store.SalesRow
	for rows.Next() {
		var r store.SalesRow
		if err := rows.Scan(
			&r.Year,
			&r.Month,
			&r.Recession,
			&r.VehicleType,
			&r.AutomobileSales,
			&r.AdvertisingExpenditure,
			&r.UnemploymentRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales rows iteration failed: %w", err)
	}
	return out, nil
}

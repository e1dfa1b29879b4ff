package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	storesql "github.com/de-tools/sales-atlas/pkg/store/sql"
	"github.com/rs/zerolog"
)

const (
	KindSQL    = "sql"
	KindDuckDB = "duckdb"
)

type sqlLoader struct {
	db     *sql.DB
	reader storesql.SalesReader
}

// NewSQLLoader reads the dataset from a table reachable through one of the
// registered database/sql drivers (databricks, snowflake, duckdb).
func NewSQLLoader(_ context.Context, cfg SourceConfig) (Loader, error) {
	if cfg.Driver == "" || cfg.DSN == "" {
		return nil, fmt.Errorf("sql source requires driver and dsn")
	}
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Driver, err)
	}
	return NewSQLLoaderWithDB(db, cfg.Table)
}

// NewDuckDBLoader opens an embedded DuckDB database. With CSV set, the file is
// queried in place through a view named after Table.
func NewDuckDBLoader(_ context.Context, cfg SourceConfig) (Loader, error) {
	if cfg.Path == "" && cfg.CSV == "" {
		return nil, fmt.Errorf("duckdb source requires a database path or a csv file")
	}
	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath:  cfg.Path,
		CSVPath: cfg.CSV,
		View:    cfg.Table,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	return NewSQLLoaderWithDB(db, cfg.Table)
}

// NewSQLLoaderWithDB takes ownership of db and closes it after Load.
func NewSQLLoaderWithDB(db *sql.DB, table string) (Loader, error) {
	reader, err := storesql.NewSalesReader(db, table)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}
	return &sqlLoader{db: db, reader: reader}, nil
}

func (l *sqlLoader) Load(ctx context.Context) ([]domain.SalesRecord, LoadReport, error) {
	logger := zerolog.Ctx(ctx)
	defer func() {
		if err := l.db.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close sales database")
		}
	}()

	rows, err := l.reader.ReadSales(ctx)
	if err != nil {
		return nil, LoadReport{}, err
	}

	report := LoadReport{Rows: len(rows)}
	records := make([]domain.SalesRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := adapters.MapStoreSalesRowToDomainRecord(row)
		if err != nil {
			report.Dropped++
			logger.Warn().Err(err).Int("row", i+1).Msg("dropping malformed sales record")
			continue
		}
		records = append(records, rec)
	}
	return records, report, nil
}

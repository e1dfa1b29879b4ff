// Package loader fetches the raw sales table from a configured source and
// turns it into the immutable dataset used by the report pipeline.
package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

var ErrEmptyDataset = errors.New("dataset has no valid records")

// Loader fetches and validates sales records from one source.
type Loader interface {
	Load(ctx context.Context) ([]domain.SalesRecord, LoadReport, error)
}

// LoadReport counts what happened to the source rows.
type LoadReport struct {
	Rows    int
	Dropped int
}

// SourceConfig describes where the dataset lives. Which fields are used
// depends on Kind.
type SourceConfig struct {
	Kind string `mapstructure:"kind" ini:"kind"`

	// file and duckdb
	Path string `mapstructure:"path" ini:"path"`

	// http
	URL     string        `mapstructure:"url" ini:"url"`
	Retries int           `mapstructure:"retries" ini:"retries"`
	Timeout time.Duration `mapstructure:"timeout" ini:"timeout"`

	// s3
	Bucket    string `mapstructure:"bucket" ini:"bucket"`
	Key       string `mapstructure:"key" ini:"key"`
	Region    string `mapstructure:"region" ini:"region"`
	Endpoint  string `mapstructure:"endpoint" ini:"endpoint"`
	Anonymous bool   `mapstructure:"anonymous" ini:"anonymous"`

	// sql and duckdb
	Driver string `mapstructure:"driver" ini:"driver"`
	DSN    string `mapstructure:"dsn" ini:"dsn"`
	Table  string `mapstructure:"table" ini:"table"`
	CSV    string `mapstructure:"csv" ini:"csv"`
}

// Load runs l and wraps the result into a dataset.
func Load(ctx context.Context, l Loader) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	records, report, err := l.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := domain.NewDataset(records)
	logger.Info().
		Int("rows", report.Rows).
		Int("dropped", report.Dropped).
		Ints("years", ds.Years()).
		Dur("elapsed", time.Since(start)).
		Msg("sales dataset loaded")
	return ds, nil
}

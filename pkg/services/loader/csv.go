package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrMissingValue  = errors.New("missing value")
)

const (
	colYear        = "year"
	colMonth       = "month"
	colRecession   = "recession"
	colVehicleType = "vehicle_type"
	colSales       = "automobile_sales"
	colAdvertising = "advertising_expenditure"
	colUnemployed  = "unemployment_rate"
)

var requiredColumns = []string{
	colYear, colMonth, colRecession, colVehicleType, colSales, colAdvertising, colUnemployed,
}

// DecodeCSV reads the historical automobile sales CSV. Columns are matched by
// name, case-insensitively; extra columns are ignored. Rows that fail to parse
// or validate are dropped and logged.
func DecodeCSV(ctx context.Context, r io.Reader) ([]domain.SalesRecord, LoadReport, error) {
	logger := zerolog.Ctx(ctx)
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeColumn(h)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, LoadReport{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var (
		records []domain.SalesRecord
		report  LoadReport
	)
	for n := 1; ; n++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return nil, report, fmt.Errorf("failed to read CSV row %d: %w", n, err)
		}
		report.Rows++
		if err != nil {
			report.Dropped++
			logger.Warn().Err(err).Int("row", n).Msg("dropping unreadable CSV row")
			continue
		}

		rec, err := parseRow(row, index)
		if err == nil {
			err = rec.Validate()
		}
		if err != nil {
			report.Dropped++
			logger.Warn().Err(err).Int("row", n).Msg("dropping malformed sales record")
			continue
		}
		records = append(records, rec)
	}

	return records, report, nil
}

func parseRow(row []string, index map[string]int) (domain.SalesRecord, error) {
	field := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := parseInt(field(colYear))
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("%s: %w", colYear, err)
	}
	recession, err := parseFlag(field(colRecession))
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("%s: %w", colRecession, err)
	}

	rec := domain.SalesRecord{
		Year:        year,
		Month:       field(colMonth),
		Recession:   recession,
		VehicleType: field(colVehicleType),
	}

	measures := []struct {
		col string
		dst *float64
	}{
		{colSales, &rec.AutomobileSales},
		{colAdvertising, &rec.AdvertisingExpenditure},
		{colUnemployed, &rec.UnemploymentRate},
	}
	for _, m := range measures {
		v, err := parseFloat(field(m.col))
		if err != nil {
			return domain.SalesRecord{}, fmt.Errorf("%s: %w", m.col, err)
		}
		*m.dst = v
	}
	return rec, nil
}

func normalizeColumn(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}

// parseInt accepts "2008" as well as float renderings such as "2008.0".
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, ErrMissingValue
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("integer out of range: %q", s)
	}
	return int(f), nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "":
		return false, ErrMissingValue
	case "1", "1.0", "true", "yes":
		return true, nil
	case "0", "0.0", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("not a flag: %q", s)
	}
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

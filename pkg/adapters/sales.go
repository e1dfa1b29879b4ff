package adapters

import (
	"errors"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
)

var ErrNullColumn = errors.New("null column")

func MapStoreSalesRowToDomainRecord(row store.SalesRow) (domain.SalesRecord, error) {
	switch {
	case !row.Year.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: year", ErrNullColumn)
	case !row.Recession.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: recession", ErrNullColumn)
	case !row.Month.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: month", ErrNullColumn)
	case !row.VehicleType.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: vehicle_type", ErrNullColumn)
	case !row.AutomobileSales.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: automobile_sales", ErrNullColumn)
	case !row.AdvertisingExpenditure.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: advertising_expenditure", ErrNullColumn)
	case !row.UnemploymentRate.Valid:
		return domain.SalesRecord{}, fmt.Errorf("%w: unemployment_rate", ErrNullColumn)
	}

	rec := domain.SalesRecord{
		Year:                   int(row.Year.Int64),
		Month:                  row.Month.String,
		Recession:              row.Recession.Int64 != 0,
		VehicleType:            row.VehicleType.String,
		AutomobileSales:        row.AutomobileSales.Float64,
		AdvertisingExpenditure: row.AdvertisingExpenditure.Float64,
		UnemploymentRate:       row.UnemploymentRate.Float64,
	}
	if err := rec.Validate(); err != nil {
		return domain.SalesRecord{}, err
	}
	return rec, nil
}

package sql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var salesColumns = []string{
	"year", "Month", "recession", "Vehicle_Type",
	"automobile_sales", "advertising_expenditure", "unemployment_rate",
}

func TestSalesReader_ReadSales(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(SalesQuery("analytics.automobile_sales"))).
		WillReturnRows(sqlmock.NewRows(salesColumns).
			AddRow(2008, "Jan", 1, "SUV", 120.5, 1500.0, 5.8).
			AddRow(nil, "Feb", 0, "Sedan", 80.0, 900.0, 6.1))

	reader, err := NewSalesReader(db, "analytics.automobile_sales")
	require.NoError(t, err)

	rows, err := reader.ReadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].Year.Valid)
	assert.Equal(t, int64(2008), rows[0].Year.Int64)
	assert.Equal(t, "SUV", rows[0].VehicleType.String)
	assert.Equal(t, 1500.0, rows[0].AdvertisingExpenditure.Float64)
	assert.False(t, rows[1].Year.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesReader_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(SalesQuery(DefaultSalesTable))).
		WillReturnError(errors.New("warehouse offline"))

	reader, err := NewSalesReader(db, "")
	require.NoError(t, err)

	_, err = reader.ReadSales(context.Background())
	assert.ErrorContains(t, err, "warehouse offline")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSalesReader_RejectsInvalidInput(t *testing.T) {
	_, err := NewSalesReader(nil, "sales")
	assert.Error(t, err)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewSalesReader(db, "sales; DROP TABLE sales")
	assert.Error(t, err)
}

package store

import "database/sql"

// SalesRow is a sales record as read from a SQL source. Any column may be NULL.
type SalesRow struct {
	Year                   sql.NullInt64
	Month                  sql.NullString
	Recession              sql.NullInt64
	VehicleType            sql.NullString
	AutomobileSales        sql.NullFloat64
	AdvertisingExpenditure sql.NullFloat64
	UnemploymentRate       sql.NullFloat64
}

// Package aggregate computes the grouped tables behind each report mode.
// Functions here are pure: they read the dataset and return new tables.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

var (
	ErrNoRecessionData = errors.New("no recession-period data")
	ErrNoYearData      = errors.New("no data for year")
)

// NoYearDataError is returned when the dataset has no rows for the requested year.
type NoYearDataError struct {
	Year int
}

func (e *NoYearDataError) Error() string {
	return fmt.Sprintf("no data for year %d", e.Year)
}

func (e *NoYearDataError) Unwrap() error {
	return ErrNoYearData
}

func isRecession(r domain.SalesRecord) bool { return r.Recession }

// Recession builds the four recession-period tables from the rows flagged as recession.
func Recession(ds *domain.Dataset) ([]domain.SeriesTable, error) {
	records := ds.Filter(isRecession)
	if len(records) == 0 {
		return nil, ErrNoRecessionData
	}

	return []domain.SeriesTable{
		{
			ID:     domain.TableAvgSalesByYear,
			Title:  "Average Automobile Sales Fluctuation Over Recession Period (Year Wise)",
			XLabel: "Year",
			YLabel: "Average Sales",
			Chart:  domain.ChartLine,
			Rows:   yearRows(records, mean),
		},
		{
			ID:     domain.TableAvgSalesByVehicleType,
			Title:  "Average Automobile Sales by Vehicle Type During Recession",
			XLabel: "Vehicle Type",
			YLabel: "Average Sales",
			Chart:  domain.ChartBar,
			Rows:   vehicleTypeRows(records, sales, mean),
		},
		{
			ID:     domain.TableAdExpenditureShareByVehicleType,
			Title:  "Total Advertising Expenditure Share by Vehicle Type During Recession",
			XLabel: "Vehicle Type",
			YLabel: "Advertising Expenditure",
			Chart:  domain.ChartPie,
			Rows:   vehicleTypeRows(records, advertising, sum),
		},
		{
			ID:         domain.TableAvgSalesByUnemploymentAndVehicleType,
			Title:      "Effect of Unemployment Rate on Vehicle Type and Sales",
			XLabel:     "Unemployment Rate (%)",
			YLabel:     "Average Automobile Sales",
			SplitLabel: "Vehicle Type",
			Chart:      domain.ChartGroupedBar,
			Rows:       rateAndTypeRows(records, mean),
		},
	}, nil
}

// Yearly builds the four tables for a single year. The first table always
// covers the whole dataset so the selected year can be read against the full history.
func Yearly(ds *domain.Dataset, year int) ([]domain.SeriesTable, error) {
	records := ds.Filter(func(r domain.SalesRecord) bool { return r.Year == year })
	if len(records) == 0 {
		return nil, &NoYearDataError{Year: year}
	}

	return []domain.SeriesTable{
		{
			ID:     domain.TableAvgSalesByYearAllTime,
			Title:  "Average Yearly Automobile Sales Across All Years",
			XLabel: "Year",
			YLabel: "Average Sales",
			Chart:  domain.ChartLine,
			Rows:   yearRows(ds.All(), mean),
		},
		{
			ID:     domain.TableTotalSalesByMonth,
			Title:  fmt.Sprintf("Total Monthly Automobile Sales in %d", year),
			XLabel: "Month",
			YLabel: "Total Sales",
			Chart:  domain.ChartLine,
			Rows:   monthRows(records, sum),
		},
		{
			ID:     domain.TableAvgSalesByVehicleType,
			Title:  fmt.Sprintf("Average Vehicles Sold by Vehicle Type in the year %d", year),
			XLabel: "Vehicle Type",
			YLabel: "Average Sales",
			Chart:  domain.ChartBar,
			Rows:   vehicleTypeRows(records, sales, mean),
		},
		{
			ID:     domain.TableAdExpenditureByVehicleType,
			Title:  "Total Advertisement Expenditure for Each Vehicle",
			XLabel: "Vehicle Type",
			YLabel: "Advertising Expenditure",
			Chart:  domain.ChartPie,
			Rows:   vehicleTypeRows(records, advertising, sum),
		},
	}, nil
}

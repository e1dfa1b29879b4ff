package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Charts(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	year := 2012
	state := domain.SelectionState{ReportType: domain.ReportYearly, Year: &year}
	result := domain.Charts([]domain.SeriesTable{
		{
			ID:     domain.TableAvgSalesByVehicleType,
			Title:  "Average Vehicles Sold by Vehicle Type in the year 2012",
			XLabel: "Vehicle Type",
			YLabel: "Average Sales",
			Rows:   []domain.SeriesRow{{Key: "Sports", Value: 300, Count: 1}},
		},
		{
			ID:         domain.TableAvgSalesByUnemploymentAndVehicleType,
			Title:      "Effect of Unemployment Rate on Vehicle Type and Sales",
			XLabel:     "Unemployment Rate (%)",
			YLabel:     "Average Automobile Sales",
			SplitLabel: "Vehicle Type",
			Rows:       []domain.SeriesRow{{Key: "5.5", Split: "Sports", Value: 20.5, Count: 2}},
		},
	})

	require.NoError(t, reporter.Handle(state, result))
	out := buf.String()

	assert.Contains(t, out, "Yearly Statistics Report (2012)")
	assert.Contains(t, out, "=== Average Vehicles Sold by Vehicle Type in the year 2012 ===")
	assert.Contains(t, out, "| Sports                   |                   300.00 |        1 |")
	assert.Contains(t, out, "| 5.5                      | Sports           |                    20.50 |        2 |")
	assert.NotContains(t, out, "No charts to display")
}

func TestReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	state := domain.SelectionState{ReportType: domain.ReportYearly}
	result := domain.Empty(domain.ConditionNoYearSelected, "please select a valid year")

	require.NoError(t, reporter.Handle(state, result))
	out := buf.String()

	assert.Contains(t, out, "Yearly Statistics Report\n")
	assert.Contains(t, out, "No charts to display (no_year_selected): please select a valid year")
	assert.NotContains(t, out, "===")
}

func TestReporter_Idle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(domain.SelectionState{}, domain.Empty(domain.ConditionNoSelection, "")))

	assert.Contains(t, buf.String(), "Welcome to the Dashboard")
	assert.Contains(t, buf.String(), "No charts to display (no_selection)\n")
}

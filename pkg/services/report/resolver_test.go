package report

import (
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset() *domain.Dataset {
	return domain.NewDataset([]domain.SalesRecord{
		{Year: 2005, Month: "Jan", Recession: false, VehicleType: "Sedan", AutomobileSales: 30, AdvertisingExpenditure: 3, UnemploymentRate: 5.1},
		{Year: 2008, Month: "Jan", Recession: true, VehicleType: "SUV", AutomobileSales: 100, AdvertisingExpenditure: 9, UnemploymentRate: 6.0},
		{Year: 2008, Month: "Feb", Recession: true, VehicleType: "Sedan", AutomobileSales: 50, AdvertisingExpenditure: 4, UnemploymentRate: 6.0},
		{Year: 2010, Month: "Mar", Recession: false, VehicleType: "Sports", AutomobileSales: 75, AdvertisingExpenditure: 8, UnemploymentRate: 9.6},
	})
}

func yearly(year int) domain.SelectionState {
	return domain.SelectionState{ReportType: domain.ReportYearly, Year: &year}
}

func recession(year int) domain.SelectionState {
	return domain.SelectionState{ReportType: domain.ReportRecession, Year: &year}
}

func TestResolve(t *testing.T) {
	ds := dataset()

	tests := []struct {
		name      string
		dataset   *domain.Dataset
		state     domain.SelectionState
		empty     bool
		condition domain.Condition
		reason    string
		tables    int
	}{
		{
			name:      "idle",
			dataset:   ds,
			state:     domain.SelectionState{},
			empty:     true,
			condition: domain.ConditionNoSelection,
			reason:    "",
		},
		{
			name:      "idle with stale year",
			dataset:   ds,
			state:     domain.SelectionState{Year: intPtr(2008)},
			empty:     true,
			condition: domain.ConditionNoSelection,
			reason:    "",
		},
		{
			name:    "recession",
			dataset: ds,
			state:   domain.SelectionState{ReportType: domain.ReportRecession},
			tables:  4,
		},
		{
			name: "recession without recession rows",
			dataset: domain.NewDataset([]domain.SalesRecord{
				{Year: 2010, Month: "Jan", VehicleType: "SUV", AutomobileSales: 1},
			}),
			state:     domain.SelectionState{ReportType: domain.ReportRecession},
			empty:     true,
			condition: domain.ConditionEmptyResultSet,
			reason:    "no recession-period data",
		},
		{
			name:      "yearly pending",
			dataset:   ds,
			state:     domain.SelectionState{ReportType: domain.ReportYearly},
			empty:     true,
			condition: domain.ConditionNoYearSelected,
			reason:    "please select a valid year",
		},
		{
			name:      "yearly without rows for year",
			dataset:   ds,
			state:     yearly(2012),
			empty:     true,
			condition: domain.ConditionEmptyResultSet,
			reason:    "no data for year 2012",
		},
		{
			name:    "yearly",
			dataset: ds,
			state:   yearly(2008),
			tables:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.dataset, tt.state)

			assert.Equal(t, tt.empty, res.IsEmpty())
			assert.Equal(t, tt.condition, res.Condition)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Len(t, res.Tables, tt.tables)
		})
	}
}

func TestResolve_MalformedYearInput(t *testing.T) {
	state, ok := selection.FromInput(domain.YearlyLabel, "abc")
	require.True(t, ok)

	res := Resolve(dataset(), state)
	assert.Equal(t, domain.Empty(domain.ConditionNoYearSelected, "please select a valid year"), res)
}

func TestResolve_IsDeterministic(t *testing.T) {
	ds := dataset()
	for _, st := range []domain.SelectionState{{}, recession(2000), yearly(2008), yearly(1990)} {
		assert.Equal(t, Resolve(ds, st), Resolve(ds, st))
	}
}

func TestResolve_RecessionIgnoresYear(t *testing.T) {
	ds := dataset()
	assert.Equal(t, Resolve(ds, recession(1999)), Resolve(ds, recession(2020)))
	assert.Equal(t, Resolve(ds, recession(1999)), Resolve(ds, domain.SelectionState{ReportType: domain.ReportRecession}))
}

func TestResolve_AllTimeTableIgnoresYear(t *testing.T) {
	ds := dataset()
	a := Resolve(ds, yearly(2005))
	b := Resolve(ds, yearly(2010))
	require.False(t, a.IsEmpty())
	require.False(t, b.IsEmpty())

	assert.Equal(t, a.Tables[0], b.Tables[0])
	assert.NotEqual(t, a.Tables[1], b.Tables[1])
}

func TestResolver(t *testing.T) {
	r := NewResolver(dataset())

	assert.Equal(t, []int{2005, 2008, 2010}, r.Years())
	assert.Equal(t, 4, r.Dataset().Len())
	assert.Equal(t, Resolve(r.Dataset(), yearly(2008)), r.Resolve(yearly(2008)))
}

func TestBannerFor(t *testing.T) {
	assert.Equal(t, "Welcome to the Dashboard", BannerFor(selection.Idle).Title)
	assert.Equal(t, "Recession Period Statistics Report", BannerFor(selection.RecessionMode).Title)
	assert.Equal(t, "Yearly Statistics Report", BannerFor(selection.YearlyMode).Title)
}

func intPtr(v int) *int {
	return &v
}

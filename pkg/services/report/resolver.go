package report

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/aggregate"
)

const ReasonInvalidYear = "please select a valid year"

// Resolve turns a selection into a report. Every pipeline condition is
// reported as an Empty result; Resolve performs no I/O and keeps no state.
func Resolve(ds *domain.Dataset, state domain.SelectionState) domain.ReportResult {
	switch state.ReportType {
	case domain.ReportRecession:
		return fromTables(aggregate.Recession(ds))
	case domain.ReportYearly:
		year, ok := state.YearValue()
		if !ok {
			return domain.Empty(domain.ConditionNoYearSelected, ReasonInvalidYear)
		}
		return fromTables(aggregate.Yearly(ds, year))
	default:
		return domain.Empty(domain.ConditionNoSelection, "")
	}
}

func fromTables(tables []domain.SeriesTable, err error) domain.ReportResult {
	if err == nil {
		return domain.Charts(tables)
	}
	// the aggregator only fails when its filter leaves no rows
	return domain.Empty(domain.ConditionEmptyResultSet, err.Error())
}

// Resolver binds the loaded dataset so callers only pass selections.
type Resolver struct {
	dataset *domain.Dataset
}

func NewResolver(ds *domain.Dataset) *Resolver {
	return &Resolver{dataset: ds}
}

func (r *Resolver) Resolve(state domain.SelectionState) domain.ReportResult {
	return Resolve(r.dataset, state)
}

// Years lists the years available to the year picker.
func (r *Resolver) Years() []int {
	return r.dataset.Years()
}

func (r *Resolver) Dataset() *domain.Dataset {
	return r.dataset
}

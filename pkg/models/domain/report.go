package domain

// ResultKind discriminates the two ReportResult variants.
type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultCharts
)

// Condition explains why a ReportResult is empty.
type Condition string

const (
	ConditionNone           Condition = ""
	ConditionNoSelection    Condition = "no_selection"
	ConditionNoYearSelected Condition = "no_year_selected"
	ConditionEmptyResultSet Condition = "empty_result_set"
)

// ChartKind is a rendering hint for the presentation layer.
type ChartKind string

const (
	ChartLine       ChartKind = "line"
	ChartBar        ChartKind = "bar"
	ChartPie        ChartKind = "pie"
	ChartGroupedBar ChartKind = "grouped_bar"
)

// TableID identifies one of the aggregate tables.
type TableID string

const (
	TableAvgSalesByYear                       TableID = "avg_sales_by_year"
	TableAvgSalesByVehicleType                TableID = "avg_sales_by_vehicle_type"
	TableAdExpenditureShareByVehicleType      TableID = "ad_expenditure_share_by_vehicle_type"
	TableAvgSalesByUnemploymentAndVehicleType TableID = "avg_sales_by_unemployment_and_vehicle_type"
	TableAvgSalesByYearAllTime                TableID = "avg_sales_by_year_all_time"
	TableTotalSalesByMonth                    TableID = "total_sales_by_month"
	TableAdExpenditureByVehicleType           TableID = "ad_expenditure_by_vehicle_type"
)

// SeriesRow is one aggregated group. Split is set only for tables with a
// secondary categorical dimension.
type SeriesRow struct {
	Key   string
	Split string
	Value float64
	Count int
}

// SeriesTable is a named aggregate table ready for charting.
type SeriesTable struct {
	ID         TableID
	Title      string
	XLabel     string
	YLabel     string
	SplitLabel string
	Chart      ChartKind
	Rows       []SeriesRow
}

// ReportResult is either Empty with a reason or a set of chart tables.
type ReportResult struct {
	Kind      ResultKind
	Condition Condition
	Reason    string
	Tables    []SeriesTable
}

func Empty(cond Condition, reason string) ReportResult {
	return ReportResult{Kind: ResultEmpty, Condition: cond, Reason: reason}
}

func Charts(tables []SeriesTable) ReportResult {
	return ReportResult{Kind: ResultCharts, Tables: tables}
}

func (r ReportResult) IsEmpty() bool {
	return r.Kind == ResultEmpty
}

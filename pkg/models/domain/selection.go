package domain

import "strings"

// ReportType is the report mode chosen by the user.
type ReportType int

const (
	ReportNone ReportType = iota
	ReportRecession
	ReportYearly
)

// Labels used by the report type picker.
const (
	RecessionLabel = "Recession Period Statistics"
	YearlyLabel    = "Yearly Statistics"
)

func (t ReportType) String() string {
	switch t {
	case ReportRecession:
		return "recession"
	case ReportYearly:
		return "yearly"
	default:
		return "none"
	}
}

// Label returns the picker label for the report type, empty for ReportNone.
func (t ReportType) Label() string {
	switch t {
	case ReportRecession:
		return RecessionLabel
	case ReportYearly:
		return YearlyLabel
	default:
		return ""
	}
}

// ParseReportType accepts the picker labels as well as the short names
// returned by String. The second result is false for anything else.
func ParseReportType(raw string) (ReportType, bool) {
	s := strings.TrimSpace(raw)
	switch {
	case s == RecessionLabel, strings.EqualFold(s, "recession"):
		return ReportRecession, true
	case s == YearlyLabel, strings.EqualFold(s, "yearly"):
		return ReportYearly, true
	default:
		return ReportNone, false
	}
}

// SelectionState is the current report type and year choice.
// Year is nil until a valid year has been picked; it only matters for ReportYearly.
type SelectionState struct {
	ReportType ReportType
	Year       *int
}

// YearValue returns the selected year and whether one is set.
func (s SelectionState) YearValue() (int, bool) {
	if s.Year == nil {
		return 0, false
	}
	return *s.Year, true
}

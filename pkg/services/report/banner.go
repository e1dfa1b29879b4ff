package report

import "github.com/de-tools/sales-atlas/pkg/services/selection"

// Banner is the informational text shown above a report for a given mode.
type Banner struct {
	Title string
	Lines []string
}

func BannerFor(mode selection.Mode) Banner {
	switch mode {
	case selection.RecessionMode:
		return Banner{
			Title: "Recession Period Statistics Report",
			Lines: []string{
				"This report shows statistics for all recession periods in the dataset.",
				"Note: Year selection is disabled for this report type as it displays all recession periods.",
			},
		}
	case selection.YearlyMode:
		return Banner{
			Title: "Yearly Statistics Report",
			Lines: []string{
				"This report shows statistics for a specific year.",
				"Please select a year from the dropdown above to view the report.",
			},
		}
	default:
		return Banner{
			Title: "Welcome to the Dashboard",
			Lines: []string{
				"Please select a report type from the dropdown above to get started.",
			},
		}
	}
}

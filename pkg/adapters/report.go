package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/selection"
)

// MapDomainReportToAPI renders a resolved report together with the selection it came from.
func MapDomainReportToAPI(state domain.SelectionState, result domain.ReportResult) api.Report {
	mode := selection.ModeOf(state.ReportType)
	banner := report.BannerFor(mode)

	out := api.Report{
		Mode:        mode.String(),
		YearEnabled: mode == selection.YearlyMode,
		Banner:      api.Banner{Title: banner.Title, Lines: banner.Lines},
		Empty:       result.IsEmpty(),
		Condition:   string(result.Condition),
		Reason:      result.Reason,
		Charts:      make([]api.Chart, 0, len(result.Tables)),
	}
	if mode == selection.YearlyMode {
		out.Year = state.Year
	}

	for _, t := range result.Tables {
		rows := make([]api.ChartRow, 0, len(t.Rows))
		for _, r := range t.Rows {
			rows = append(rows, api.ChartRow{Key: r.Key, Split: r.Split, Value: r.Value, Count: r.Count})
		}
		out.Charts = append(out.Charts, api.Chart{
			ID:         string(t.ID),
			Kind:       string(t.Chart),
			Title:      t.Title,
			XLabel:     t.XLabel,
			YLabel:     t.YLabel,
			SplitLabel: t.SplitLabel,
			Rows:       rows,
		})
	}
	return out
}

package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/selection"
)

type TableConfig struct {
	KeyWidth   int
	SplitWidth int
	ValueWidth int
	CountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KeyWidth:   24,
		SplitWidth: 16,
		ValueWidth: 24,
		CountWidth: 8,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type reportView struct {
	Banner    report.Banner
	Year      string
	Empty     bool
	Condition domain.Condition
	Reason    string
	Tables    []domain.SeriesTable
}

const reportTemplate = `
{{.Banner.Title}}{{if .Year}} ({{.Year}}){{end}}
{{range .Banner.Lines}}{{.}}
{{end}}{{if .Empty}}
No charts to display ({{.Condition}}){{if .Reason}}: {{.Reason}}{{end}}
{{else}}{{range .Tables}}
=== {{.Title}} ===
{{separator .}}
{{header .}}
{{separator .}}
{{$table := .}}{{range .Rows}}{{formatRow $table .}}
{{end}}{{separator .}}
{{end}}{{end}}`

// Handle renders one resolved report as fixed-width text tables.
func (c *Reporter) Handle(state domain.SelectionState, result domain.ReportResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(t domain.SeriesTable, r domain.SeriesRow) string {
			return c.line(t, r.Key, r.Split, formatValue(r.Value), strconv.Itoa(r.Count))
		},
		"header": func(t domain.SeriesTable) string {
			return c.line(t, t.XLabel, t.SplitLabel, t.YLabel, "Rows")
		},
		"separator": func(t domain.SeriesTable) string {
			parts := []string{strings.Repeat("-", c.config.KeyWidth+2)}
			if t.SplitLabel != "" {
				parts = append(parts, strings.Repeat("-", c.config.SplitWidth+2))
			}
			parts = append(parts,
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.CountWidth+2))
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	view := reportView{
		Banner:    report.BannerFor(selection.ModeOf(state.ReportType)),
		Empty:     result.IsEmpty(),
		Condition: result.Condition,
		Reason:    result.Reason,
		Tables:    result.Tables,
	}
	if y, ok := state.YearValue(); ok && state.ReportType == domain.ReportYearly {
		view.Year = strconv.Itoa(y)
	}

	return t.Execute(c.writer, view)
}

func (c *Reporter) line(t domain.SeriesTable, key, split, value, count string) string {
	if t.SplitLabel == "" {
		return fmt.Sprintf("| %-*s | %*s | %*s |",
			c.config.KeyWidth, key,
			c.config.ValueWidth, value,
			c.config.CountWidth, count)
	}
	return fmt.Sprintf("| %-*s | %-*s | %*s | %*s |",
		c.config.KeyWidth, key,
		c.config.SplitWidth, split,
		c.config.ValueWidth, value,
		c.config.CountWidth, count)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/selection"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var ErrAllYearsNeedsYearly = errors.New("--all-years is only valid for the yearly report")

// DatasetLoader loads the dataset a command runs against.
type DatasetLoader interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}

type ReportCmd struct {
	reportType string
	year       string
	allYears   bool
	datasets   DatasetLoader
	reporter   *export.Reporter
}

func NewReportCmd(datasets DatasetLoader, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{datasets: datasets, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the recession or yearly sales report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.reportType, "type", domain.RecessionLabel,
		"Report type: recession or yearly (the dashboard labels are accepted too)")
	cmd.Flags().StringVar(&rc.year, "year", "", "Year for the yearly report")
	cmd.Flags().BoolVar(&rc.allYears, "all-years", false, "Render the yearly report for every year in the dataset")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	state, ok := selection.FromInput(rc.reportType, rc.year)
	if !ok {
		return fmt.Errorf("unknown report type %q", rc.reportType)
	}
	if rc.allYears && state.ReportType != domain.ReportYearly {
		return ErrAllYearsNeedsYearly
	}

	ds, err := rc.datasets.LoadDataset(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	resolver := report.NewResolver(ds)

	if !rc.allYears {
		return rc.reporter.Handle(state, resolver.Resolve(state))
	}

	years := resolver.Years()
	states := make([]domain.SelectionState, len(years))
	results := make([]domain.ReportResult, len(years))

	g, gctx := errgroup.WithContext(ctx)
	for i, y := range years {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			year := y
			states[i] = domain.SelectionState{ReportType: domain.ReportYearly, Year: &year}
			results[i] = resolver.Resolve(states[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range years {
		if err := rc.reporter.Handle(states[i], results[i]); err != nil {
			return err
		}
	}
	return nil
}

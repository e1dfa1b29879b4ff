package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewYearsCmd(datasets DatasetLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years available for the yearly report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := datasets.LoadDataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			years := ds.Years()
			if len(years) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No years found in the dataset")
				return nil
			}
			for _, y := range years {
				fmt.Fprintln(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ProfileLister lists the named dataset sources that --profile can pick from.
type ProfileLister interface {
	ListProfiles(ctx context.Context) ([]string, error)
}

func NewSourcesCmd(profiles ProfileLister) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the dataset source profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := profiles.ListProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list source profiles: %w", err)
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No source profiles found")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Source profiles:\n%s\n", strings.Join(names, "\n"))
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/rowanveldt/chronolane/internal/cli/formatter"
	"github.com/rowanveldt/chronolane/internal/engine"
	"github.com/rowanveldt/chronolane/internal/repository"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var projectID string
	var filters []string
	var showVariance bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the derived timeline: rows, rollups, critical path, workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Timeline.Fetch(context.Background(), repository.FetchOptions{
				ProjectID: projectID,
				Filters:   filters,
			})
			if err != nil {
				return err
			}

			derived := engine.Compute(snap)

			if showVariance {
				fmt.Print(formatter.FormatVarianceReport(derived))
				return nil
			}
			fmt.Println(formatter.FormatTimeline(projectID, derived))
			return nil
		},
	}

	addProjectFlags(cmd.Flags(), &projectID, &filters)
	cmd.Flags().BoolVar(&showVariance, "variance", false, "Show baseline-vs-current schedule variance instead")

	return cmd
}

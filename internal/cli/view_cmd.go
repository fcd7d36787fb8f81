package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rowanveldt/chronolane/internal/repository"
	"github.com/rowanveldt/chronolane/internal/store"
	"github.com/rowanveldt/chronolane/internal/timeline"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var projectID string
	var filters []string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return errors.New("view requires an interactive terminal")
			}

			ctx := context.Background()
			snap, err := app.Timeline.Fetch(ctx, repository.FetchOptions{
				ProjectID: projectID,
				Filters:   filters,
			})
			if err != nil {
				return err
			}

			st := store.New(0)
			st.Load(snap)
			prefs := timeline.DefaultPreferences()
			ctrl := timeline.NewController(st, &prefs)

			m := newTimelineModel(app, ctrl, projectID)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	addProjectFlags(cmd.Flags(), &projectID, &filters)

	return cmd
}

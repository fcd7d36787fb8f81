package cli

import (
	"github.com/rowanveldt/chronolane/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Timeline service.TimelineService

	// IsInteractive reports whether stdin is a terminal; the view
	// command refuses to start the TUI without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chronolane" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronolane",
		Short: "Timeline scheduling and planning",
	}

	root.AddCommand(
		newStatusCmd(app),
		newItemCmd(app),
		newViewCmd(app),
	)

	return root
}

// addProjectFlags registers the flags shared by every timeline command.
func addProjectFlags(fs *pflag.FlagSet, projectID *string, filters *[]string) {
	fs.StringVarP(projectID, "project", "p", "default", "Project ID to operate on")
	fs.StringSliceVar(filters, "filter", nil, "Only include items carrying one of these tags")
}

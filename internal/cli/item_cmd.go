package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/rowanveldt/chronolane/internal/cli/formatter"
	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage timeline items",
	}
	cmd.AddCommand(newItemAddCmd(app))
	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var projectID string
	var filters []string
	var title, itemType, startStr, endStr, groupID string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an item to the timeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				title = args[0]
			}

			if title == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return errors.New("a title is required; pass it as an argument or run interactively")
				}
				if err := itemAddForm(&title, &itemType, &startStr, &endStr).Run(); err != nil {
					return err
				}
			}

			item, err := buildItem(title, itemType, startStr, endStr, groupID, tags)
			if err != nil {
				return err
			}

			if err := app.Timeline.AddItem(context.Background(), projectID, item); err != nil {
				return err
			}

			fmt.Printf("Added %s %s\n", formatter.Bold(item.Title), formatter.TruncID(item.ID))
			return nil
		},
	}

	addProjectFlags(cmd.Flags(), &projectID, &filters)
	cmd.Flags().StringVar(&itemType, "type", "task", "Item type (task, milestone, deliverable, ...)")
	cmd.Flags().StringVar(&startStr, "start", "", "Start date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&endStr, "end", "", "End date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&groupID, "group", "", "Group ID to place the item under")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags to attach")

	return cmd
}

func itemAddForm(title, itemType, startStr, endStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What needs doing?").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Task", string(domain.ItemTask)),
					huh.NewOption("Milestone", string(domain.ItemMilestone)),
					huh.NewOption("Deliverable", string(domain.ItemDeliverable)),
					huh.NewOption("Subtask", string(domain.ItemSubtask)),
				).
				Value(itemType),
			huh.NewInput().
				Title("Start date").
				Placeholder("2026-03-01 (optional)").
				Value(startStr),
			huh.NewInput().
				Title("End date").
				Placeholder("2026-03-05 (optional)").
				Value(endStr),
		),
	).WithTheme(chronoHuhTheme()).WithShowHelp(false)
}

func buildItem(title, itemType, startStr, endStr, groupID string, tags []string) (*domain.Item, error) {
	if itemType != "" && !domain.ValidItemTypes[itemType] {
		return nil, fmt.Errorf("unknown item type %q", itemType)
	}
	if itemType == "" {
		itemType = string(domain.ItemTask)
	}

	start := domain.ParseTime(startStr)
	end := domain.ParseTime(endStr)
	if startStr != "" && start == nil {
		return nil, fmt.Errorf("cannot parse start date %q", startStr)
	}
	if endStr != "" && end == nil {
		return nil, fmt.Errorf("cannot parse end date %q", endStr)
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, errors.New("end date is before start date")
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.ItemType(itemType),
		Start:     start,
		End:       end,
		GroupID:   groupID,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if start != nil && end != nil {
		item.DurationMinutes = int(end.Sub(*start) / time.Minute)
	}
	return item, nil
}

package repository

import (
	"context"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// FetchOptions selects which snapshot to load.
type FetchOptions struct {
	ProjectID   string
	SavedViewID string

	// Filters restricts loaded items to those carrying at least one of
	// the given tags. Empty means no filtering.
	Filters []string
}

// TimelineRepo is the data-access boundary for timeline snapshots. The
// engine and controller never touch it; the service layer fetches a
// snapshot once and hands it to the store.
type TimelineRepo interface {
	// LoadSnapshot assembles the full snapshot for a project. A project
	// with no rows yields an empty (non-nil) snapshot.
	LoadSnapshot(ctx context.Context, opts FetchOptions) (*domain.Snapshot, error)

	// SaveSnapshot replaces the project's persisted timeline with the
	// given snapshot in one transaction.
	SaveSnapshot(ctx context.Context, projectID string, snap *domain.Snapshot) error

	// CreateItem persists a single new item.
	CreateItem(ctx context.Context, projectID string, item *domain.Item) error

	// EnsureProject inserts the project row if it does not exist.
	EnsureProject(ctx context.Context, projectID, name string) error
}

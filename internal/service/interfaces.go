package service

import (
	"context"

	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/rowanveldt/chronolane/internal/repository"
)

// TimelineService is the application boundary for fetching and
// persisting timeline snapshots. Mutation of a loaded snapshot happens
// in memory through the interaction controller; this service only moves
// whole snapshots across the persistence boundary.
type TimelineService interface {
	Fetch(ctx context.Context, opts repository.FetchOptions) (*domain.Snapshot, error)
	Save(ctx context.Context, projectID string, snap *domain.Snapshot) error
	AddItem(ctx context.Context, projectID string, item *domain.Item) error
}

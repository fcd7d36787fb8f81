package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/rowanveldt/chronolane/internal/domain"
)

// BaseDate anchors fixture schedules to a stable, readable calendar.
var BaseDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// Day returns a pointer to BaseDate plus n days.
func Day(n int) *time.Time {
	t := BaseDate.AddDate(0, 0, n)
	return &t
}

// Item options
type ItemOption func(*domain.Item)

func WithSpan(start, end *time.Time) ItemOption {
	return func(it *domain.Item) {
		it.Start = start
		it.End = end
		if start != nil && end != nil {
			it.DurationMinutes = int(end.Sub(*start) / time.Minute)
		}
	}
}

func WithGroup(groupID string) ItemOption {
	return func(it *domain.Item) {
		it.GroupID = groupID
	}
}

func WithPercent(p float64) ItemOption {
	return func(it *domain.Item) {
		it.PercentComplete = &p
	}
}

func WithItemType(t domain.ItemType) ItemOption {
	return func(it *domain.Item) {
		it.Type = t
	}
}

func WithTags(tags ...string) ItemOption {
	return func(it *domain.Item) {
		it.Tags = tags
	}
}

// NewTestItem builds a task item with a default one-day span.
func NewTestItem(title string, opts ...ItemOption) *domain.Item {
	now := time.Now().UTC()
	it := &domain.Item{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.ItemTask,
		CreatedAt: now,
		UpdatedAt: now,
	}
	WithSpan(Day(0), Day(1))(it)
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// NewTestGroup builds a group with the given order index.
func NewTestGroup(name string, orderIndex int) *domain.Group {
	return &domain.Group{ID: uuid.New().String(), Name: name, OrderIndex: orderIndex}
}

// NewTestSnapshot assembles a snapshot from the given entities.
func NewTestSnapshot(items []*domain.Item, groups []*domain.Group) *domain.Snapshot {
	return &domain.Snapshot{
		ProjectID: "test-project",
		Items:     items,
		Groups:    groups,
	}
}

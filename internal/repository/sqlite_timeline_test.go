package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/rowanveldt/chronolane/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *SQLiteTimelineRepo {
	t.Helper()
	repo := NewSQLiteTimelineRepo(testutil.NewTestDB(t))
	require.NoError(t, repo.EnsureProject(context.Background(), "p1", "Test Project"))
	return repo
}

func fullSnapshot() *domain.Snapshot {
	pc := 0.25
	saved := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Snapshot{
		ProjectID: "p1",
		Groups: []*domain.Group{
			{ID: "g1", Name: "Phase 1", OrderIndex: 0},
			{ID: "g2", Name: "Phase 1a", ParentID: "g1", OrderIndex: 0},
		},
		Items: []*domain.Item{
			{
				ID: "i1", Title: "Design", Type: domain.ItemTask,
				Start: testutil.Day(0), End: testutil.Day(2),
				DurationMinutes: 2880, PercentComplete: &pc,
				GroupID: "g1", Tags: []string{"design", "ux"},
				CreatedAt: saved, UpdatedAt: saved,
			},
			{
				ID: "i2", Title: "Ship", Type: domain.ItemMilestone,
				Start: testutil.Day(5), End: testutil.Day(5),
				BaselineID: "ms1", CreatedAt: saved, UpdatedAt: saved,
			},
		},
		Milestones: []*domain.Milestone{{ID: "ms1", Name: "Launch", Date: testutil.Day(5)}},
		Dependencies: []*domain.Dependency{
			{ID: "d1", FromID: "i1", ToID: "i2", Type: domain.DepFinishToStart, LeadLagMinutes: 60},
		},
		Baselines: []*domain.Baseline{
			{ID: "b1", ItemID: "i1", Start: testutil.Day(0), End: testutil.Day(1), DurationMinutes: 1440, SavedAt: saved},
		},
		Overlays: []*domain.Overlay{
			{ID: "o1", Kind: "effort", Label: "Effort", Points: []domain.OverlayPoint{{ItemID: "i1", Value: 3.5}}},
		},
		Workload: []*domain.WorkloadMetric{
			{ID: "w1", ItemID: "i1", PersonID: "ana", AllocationMinutes: 480},
		},
	}
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "p1", fullSnapshot()))

	loaded, err := repo.LoadSnapshot(ctx, FetchOptions{ProjectID: "p1"})
	require.NoError(t, err)

	require.Len(t, loaded.Items, 2)
	require.Len(t, loaded.Groups, 2)
	require.Len(t, loaded.Milestones, 1)
	require.Len(t, loaded.Dependencies, 1)
	require.Len(t, loaded.Baselines, 1)
	require.Len(t, loaded.Overlays, 1)
	require.Len(t, loaded.Workload, 1)

	i1 := loaded.ItemByID("i1")
	require.NotNil(t, i1)
	assert.Equal(t, "Design", i1.Title)
	assert.Equal(t, *testutil.Day(0), *i1.Start)
	assert.Equal(t, *testutil.Day(2), *i1.End)
	require.NotNil(t, i1.PercentComplete)
	assert.Equal(t, 0.25, *i1.PercentComplete)
	assert.Equal(t, []string{"design", "ux"}, i1.Tags)

	assert.Equal(t, "g1", loaded.Groups[0].ID)
	assert.Equal(t, "g1", loaded.Groups[1].ParentID)

	d := loaded.Dependencies[0]
	assert.Equal(t, domain.DepFinishToStart, d.Type)
	assert.Equal(t, 60, d.LeadLagMinutes)

	o := loaded.Overlays[0]
	require.Len(t, o.Points, 1)
	assert.Equal(t, 3.5, o.Points[0].Value)
}

func TestSaveSnapshot_ReplacesExisting(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "p1", fullSnapshot()))

	smaller := &domain.Snapshot{
		ProjectID: "p1",
		Items:     []*domain.Item{testutil.NewTestItem("Only one")},
	}
	require.NoError(t, repo.SaveSnapshot(ctx, "p1", smaller))

	loaded, err := repo.LoadSnapshot(ctx, FetchOptions{ProjectID: "p1"})
	require.NoError(t, err)
	assert.Len(t, loaded.Items, 1)
	assert.Empty(t, loaded.Groups, "save is replace-all, not merge")
	assert.Empty(t, loaded.Dependencies)
}

func TestLoadSnapshot_EmptyProject(t *testing.T) {
	repo := newRepo(t)

	loaded, err := repo.LoadSnapshot(context.Background(), FetchOptions{ProjectID: "p1"})

	require.NoError(t, err)
	require.NotNil(t, loaded, "empty project yields an empty snapshot, not nil")
	assert.Empty(t, loaded.Items)
}

func TestLoadSnapshot_TagFilters(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveSnapshot(ctx, "p1", fullSnapshot()))

	loaded, err := repo.LoadSnapshot(ctx, FetchOptions{ProjectID: "p1", Filters: []string{"design"}})
	require.NoError(t, err)

	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "i1", loaded.Items[0].ID)
}

func TestCreateItem_Persists(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	it := testutil.NewTestItem("Standalone")
	require.NoError(t, repo.CreateItem(ctx, "p1", it))

	loaded, err := repo.LoadSnapshot(ctx, FetchOptions{ProjectID: "p1"})
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Standalone", loaded.Items[0].Title)
}

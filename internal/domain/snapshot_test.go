package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSnapshotClone_DeepCopy(t *testing.T) {
	pc := 0.5
	snap := &Snapshot{
		ProjectID: "p1",
		Items: []*Item{{
			ID:              "i1",
			Title:           "Design",
			Type:            ItemTask,
			Start:           ts("2026-03-02T00:00:00Z"),
			End:             ts("2026-03-04T00:00:00Z"),
			DurationMinutes: 2880,
			PercentComplete: &pc,
			Tags:            []string{"design"},
		}},
		Groups:       []*Group{{ID: "g1", Name: "Phase 1"}},
		Dependencies: []*Dependency{{ID: "d1", FromID: "i1", ToID: "i2", Type: DepFinishToStart}},
		Baselines:    []*Baseline{{ID: "b1", ItemID: "i1", Start: ts("2026-03-01T00:00:00Z")}},
	}

	clone := snap.Clone()
	require.NotNil(t, clone)

	// Mutating the clone must not leak into the original.
	*clone.Items[0].Start = clone.Items[0].Start.AddDate(0, 0, 7)
	*clone.Items[0].PercentComplete = 1.0
	clone.Items[0].Tags[0] = "changed"
	clone.Groups[0].Name = "changed"

	assert.Equal(t, "2026-03-02T00:00:00Z", snap.Items[0].Start.Format(time.RFC3339))
	assert.Equal(t, 0.5, *snap.Items[0].PercentComplete)
	assert.Equal(t, "design", snap.Items[0].Tags[0])
	assert.Equal(t, "Phase 1", snap.Groups[0].Name)
}

func TestSnapshotClone_Nil(t *testing.T) {
	var snap *Snapshot
	assert.Nil(t, snap.Clone())
}

func TestRemoveItems_PurgesDanglingDependencies(t *testing.T) {
	snap := &Snapshot{
		Items: []*Item{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Dependencies: []*Dependency{
			{ID: "d1", FromID: "a", ToID: "b"},
			{ID: "d2", FromID: "b", ToID: "c"},
			{ID: "d3", FromID: "a", ToID: "c"},
		},
	}

	snap.RemoveItems([]string{"b"})

	require.Len(t, snap.Items, 2)
	require.Len(t, snap.Dependencies, 1, "edges touching b should be purged")
	assert.Equal(t, "d3", snap.Dependencies[0].ID)
}

func TestParseTime_MalformedIsNil(t *testing.T) {
	assert.Nil(t, ParseTime(""))
	assert.Nil(t, ParseTime("not-a-date"))
	assert.Nil(t, ParseTime("2026-13-45"))
	require.NotNil(t, ParseTime("2026-03-02"))
	require.NotNil(t, ParseTime("2026-03-02T10:30:00Z"))
}

func TestClampSpan_EnforcesMinimumHour(t *testing.T) {
	start := ts("2026-03-02T10:00:00Z")
	end := ts("2026-03-02T09:00:00Z") // inverted
	it := &Item{ID: "i1", Start: start, End: end}

	it.ClampSpan()

	require.NotNil(t, it.End)
	assert.Equal(t, start.Add(time.Hour), *it.End, "inverted span clamps to a 1-hour floor")
	assert.Equal(t, *ts("2026-03-02T10:00:00Z"), *it.Start, "start is never moved")
}

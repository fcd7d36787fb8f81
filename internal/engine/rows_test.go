package engine

import (
	"testing"

	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRows_PreOrderWithDepths(t *testing.T) {
	snap := &domain.Snapshot{
		Groups: []*domain.Group{
			{ID: "g2", Name: "Second", OrderIndex: 1},
			{ID: "g1", Name: "First", OrderIndex: 0},
			{ID: "g1a", Name: "Nested", ParentID: "g1"},
		},
		Items: []*domain.Item{
			makeItem("late", "g1", day(5), day(6), 60, nil),
			makeItem("early", "g1", day(0), day(1), 60, nil),
			makeItem("nested", "g1a", day(2), day(3), 60, nil),
			makeItem("loose", "", day(9), day(10), 60, nil),
		},
	}

	d := Compute(snap)

	var got []struct {
		id    string
		kind  RowKind
		depth int
	}
	for _, r := range d.Rows {
		got = append(got, struct {
			id    string
			kind  RowKind
			depth int
		}{r.ID, r.Kind, r.Depth})
	}

	require.Len(t, d.Rows, 7)
	assert.Equal(t, "g1", got[0].id, "sibling groups order by OrderIndex")
	assert.Equal(t, RowGroup, got[0].kind)
	assert.Equal(t, 0, got[0].depth)
	assert.Equal(t, "early", got[1].id, "items within a group order by start")
	assert.Equal(t, 1, got[1].depth)
	assert.Equal(t, "late", got[2].id)
	assert.Equal(t, "g1a", got[3].id)
	assert.Equal(t, 1, got[3].depth)
	assert.Equal(t, "nested", got[4].id)
	assert.Equal(t, 2, got[4].depth)
	assert.Equal(t, "g2", got[5].id)
	assert.Equal(t, "loose", got[6].id, "ungrouped items trail at depth 0")
	assert.Equal(t, 0, got[6].depth)
}

func TestBuildRows_GroupRowCarriesRollup(t *testing.T) {
	snap := &domain.Snapshot{
		Groups: []*domain.Group{{ID: "g1", Name: "Phase"}},
		Items: []*domain.Item{
			makeItem("a", "g1", day(0), day(2), 120, pct(0.5)),
		},
	}

	d := Compute(snap)

	require.NotEmpty(t, d.Rows)
	g := d.Rows[0]
	require.Equal(t, RowGroup, g.Kind)
	assert.Equal(t, 120, g.DurationMinutes)
	require.NotNil(t, g.Start)
	assert.Equal(t, *day(0), *g.Start)
	require.NotNil(t, g.PercentComplete)
	assert.Equal(t, 0.5, *g.PercentComplete)
}

func TestBuildRows_MilestoneItemEmitsChildRow(t *testing.T) {
	snap := &domain.Snapshot{
		Milestones: []*domain.Milestone{{ID: "ms1", Name: "Launch", Date: day(10)}},
		Items: []*domain.Item{
			{
				ID:         "i1",
				Title:      "Release",
				Type:       domain.ItemMilestone,
				Start:      day(9),
				End:        day(10),
				BaselineID: "ms1",
			},
		},
	}

	d := Compute(snap)

	require.Len(t, d.Rows, 2)
	assert.Equal(t, RowItem, d.Rows[0].Kind)
	assert.Equal(t, RowMilestone, d.Rows[1].Kind)
	assert.Equal(t, "ms1", d.Rows[1].ID)
	assert.Equal(t, d.Rows[0].Depth+1, d.Rows[1].Depth)
	require.NotNil(t, d.Rows[1].Start)
	assert.Equal(t, *day(10), *d.Rows[1].Start)
}

func TestBuildRows_MissingMilestoneRecordSkipsChildRow(t *testing.T) {
	snap := &domain.Snapshot{
		Items: []*domain.Item{
			{ID: "i1", Title: "Release", Type: domain.ItemMilestone, BaselineID: "ghost"},
		},
	}

	d := Compute(snap)

	require.Len(t, d.Rows, 1)
	assert.Equal(t, RowItem, d.Rows[0].Kind)
}

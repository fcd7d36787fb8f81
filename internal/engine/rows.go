package engine

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

type RowKind string

const (
	RowGroup     RowKind = "group"
	RowItem      RowKind = "item"
	RowMilestone RowKind = "milestone"
)

// Row is one entry of the flattened, ordered row model that a
// virtualized-list renderer consumes directly. Depth drives indentation.
type Row struct {
	ID              string
	Kind            RowKind
	Depth           int
	Label           string
	Start           *time.Time
	End             *time.Time
	DurationMinutes int
	PercentComplete *float64
}

// buildRows walks the group forest depth-first in pre-order: a group
// row (carrying its rollup display fields), then its items by start
// time, then its child groups by order index. Ungrouped items trail at
// depth zero.
func buildRows(s *domain.Snapshot, f *forest, rollups map[string]Rollup) []Row {
	var rows []Row

	var emitItem func(it *domain.Item, depth int)
	emitItem = func(it *domain.Item, depth int) {
		rows = append(rows, Row{
			ID:              it.ID,
			Kind:            RowItem,
			Depth:           depth,
			Label:           it.Title,
			Start:           it.Start,
			End:             it.End,
			DurationMinutes: it.DurationMinutes,
			PercentComplete: it.PercentComplete,
		})
		// Milestone items link their milestone record through BaselineID
		// (the source data model reuses the field as the join key).
		if it.Type == domain.ItemMilestone && it.BaselineID != "" {
			if ms := s.MilestoneByID(it.BaselineID); ms != nil {
				rows = append(rows, Row{
					ID:    ms.ID,
					Kind:  RowMilestone,
					Depth: depth + 1,
					Label: ms.Name,
					Start: ms.Date,
					End:   ms.Date,
				})
			}
		}
	}

	var emitGroup func(g *domain.Group, depth int)
	emitGroup = func(g *domain.Group, depth int) {
		r := rollups[g.ID]
		rows = append(rows, Row{
			ID:              g.ID,
			Kind:            RowGroup,
			Depth:           depth,
			Label:           g.Name,
			Start:           r.Start,
			End:             r.End,
			DurationMinutes: r.DurationMinutes,
			PercentComplete: r.PercentComplete,
		})
		for _, it := range f.itemsByGroup[g.ID] {
			emitItem(it, depth+1)
		}
		for _, child := range f.groupsByParent[g.ID] {
			emitGroup(child, depth+1)
		}
	}

	for _, g := range f.roots {
		emitGroup(g, 0)
	}
	for _, it := range f.rootItems {
		emitItem(it, 0)
	}
	return rows
}

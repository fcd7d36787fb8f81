package engine

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// Rollup is the aggregate schedule of a group: earliest start, latest
// end, summed duration, and duration-weighted completion.
type Rollup struct {
	Start           *time.Time
	End             *time.Time
	DurationMinutes int
	PercentComplete *float64
}

// buildRollups aggregates the group forest bottom-up. Each leaf item is
// counted exactly once, at its own group, and its duration is folded
// upward through parent rollups. Items with a nil percent contribute
// zero weight to the completion mean, not a zero value.
func buildRollups(f *forest) map[string]Rollup {
	rollups := make(map[string]Rollup)

	var compute func(g *domain.Group) Rollup
	compute = func(g *domain.Group) Rollup {
		var r Rollup
		var weighted, weight float64

		for _, it := range f.itemsByGroup[g.ID] {
			r.Start = domain.MinTime(r.Start, it.Start)
			r.End = domain.MaxTime(r.End, it.End)
			r.DurationMinutes += it.DurationMinutes
			if it.PercentComplete != nil {
				weighted += *it.PercentComplete * float64(it.DurationMinutes)
				weight += float64(it.DurationMinutes)
			}
		}
		for _, child := range f.groupsByParent[g.ID] {
			cr := compute(child)
			rollups[child.ID] = cr
			r.Start = domain.MinTime(r.Start, cr.Start)
			r.End = domain.MaxTime(r.End, cr.End)
			r.DurationMinutes += cr.DurationMinutes
			if cr.PercentComplete != nil {
				weighted += *cr.PercentComplete * float64(cr.DurationMinutes)
				weight += float64(cr.DurationMinutes)
			}
		}
		if weight > 0 {
			pc := weighted / weight
			r.PercentComplete = &pc
		}
		return r
	}

	var root Rollup
	var weighted, weight float64
	for _, g := range f.roots {
		r := compute(g)
		rollups[g.ID] = r
		root.Start = domain.MinTime(root.Start, r.Start)
		root.End = domain.MaxTime(root.End, r.End)
		root.DurationMinutes += r.DurationMinutes
		if r.PercentComplete != nil {
			weighted += *r.PercentComplete * float64(r.DurationMinutes)
			weight += float64(r.DurationMinutes)
		}
	}
	for _, it := range f.rootItems {
		root.Start = domain.MinTime(root.Start, it.Start)
		root.End = domain.MaxTime(root.End, it.End)
		root.DurationMinutes += it.DurationMinutes
		if it.PercentComplete != nil {
			weighted += *it.PercentComplete * float64(it.DurationMinutes)
			weight += float64(it.DurationMinutes)
		}
	}
	if weight > 0 {
		pc := weighted / weight
		root.PercentComplete = &pc
	}
	rollups[RootRollupID] = root

	return rollups
}

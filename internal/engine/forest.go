package engine

import (
	"fmt"
	"sort"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// forest is the explicit adjacency view of the group hierarchy, built
// once per recompute so the traversals never follow raw ParentID
// pointers into a cycle.
type forest struct {
	groupsByParent map[string][]*domain.Group
	itemsByGroup   map[string][]*domain.Item
	roots          []*domain.Group

	// rootItems are items with no group, or whose group is missing.
	rootItems []*domain.Item

	// reachable marks groups connected to a root; anything else is part
	// of a parent cycle and is skipped by the walkers.
	reachable map[string]bool

	faults []string
}

func buildForest(s *domain.Snapshot) *forest {
	f := &forest{
		groupsByParent: make(map[string][]*domain.Group),
		itemsByGroup:   make(map[string][]*domain.Item),
		reachable:      make(map[string]bool),
	}

	byID := make(map[string]*domain.Group, len(s.Groups))
	for _, g := range s.Groups {
		byID[g.ID] = g
	}

	for _, g := range s.Groups {
		parent := g.ParentID
		if parent != "" && byID[parent] == nil {
			f.faults = append(f.faults, fmt.Sprintf("group %s references missing parent %s", g.ID, parent))
			parent = ""
		}
		if parent == "" {
			f.roots = append(f.roots, g)
		} else {
			f.groupsByParent[parent] = append(f.groupsByParent[parent], g)
		}
	}

	sortGroups(f.roots)
	for _, siblings := range f.groupsByParent {
		sortGroups(siblings)
	}

	// Visited-set guard: mark everything reachable from a root, then
	// report the remainder (a parent cycle) as an integrity fault.
	var mark func(g *domain.Group)
	mark = func(g *domain.Group) {
		if f.reachable[g.ID] {
			return
		}
		f.reachable[g.ID] = true
		for _, child := range f.groupsByParent[g.ID] {
			mark(child)
		}
	}
	for _, g := range f.roots {
		mark(g)
	}
	for _, g := range s.Groups {
		if !f.reachable[g.ID] {
			f.faults = append(f.faults, fmt.Sprintf("group %s is part of a parent cycle", g.ID))
		}
	}

	for _, it := range s.Items {
		if it.GroupID == "" || !f.reachable[it.GroupID] {
			f.rootItems = append(f.rootItems, it)
		} else {
			f.itemsByGroup[it.GroupID] = append(f.itemsByGroup[it.GroupID], it)
		}
	}
	sortItems(f.rootItems)
	for _, items := range f.itemsByGroup {
		sortItems(items)
	}

	return f
}

func sortGroups(groups []*domain.Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].OrderIndex != groups[j].OrderIndex {
			return groups[i].OrderIndex < groups[j].OrderIndex
		}
		return groups[i].ID < groups[j].ID
	})
}

// sortItems orders by start time, nil starts last, ID as tiebreak.
func sortItems(items []*domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Start, items[j].Start
		if (a == nil) != (b == nil) {
			return a != nil
		}
		if a != nil && b != nil && !a.Equal(*b) {
			return a.Before(*b)
		}
		return items[i].ID < items[j].ID
	})
}

package domain

// Snapshot is the complete in-memory representation of all timeline
// entities at a point in time. The interaction controller is its only
// writer; derived-data computation treats it as read-only.
type Snapshot struct {
	ProjectID    string
	Items        []*Item
	Groups       []*Group
	Milestones   []*Milestone
	Dependencies []*Dependency
	Baselines    []*Baseline
	Calendars    []*Calendar
	Constraints  []*Constraint
	Overlays     []*Overlay
	Workload     []*WorkloadMetric
	Risks        []*RiskMetric
}

// Clone returns a deep copy of the snapshot. Undo/redo history stores
// whole cloned snapshots, so every entity must be copied.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := &Snapshot{ProjectID: s.ProjectID}
	for _, it := range s.Items {
		c.Items = append(c.Items, it.Clone())
	}
	for _, g := range s.Groups {
		c.Groups = append(c.Groups, g.Clone())
	}
	for _, m := range s.Milestones {
		c.Milestones = append(c.Milestones, m.Clone())
	}
	for _, d := range s.Dependencies {
		c.Dependencies = append(c.Dependencies, d.Clone())
	}
	for _, b := range s.Baselines {
		c.Baselines = append(c.Baselines, b.Clone())
	}
	for _, cal := range s.Calendars {
		c.Calendars = append(c.Calendars, cal.Clone())
	}
	for _, cn := range s.Constraints {
		c.Constraints = append(c.Constraints, cn.Clone())
	}
	for _, o := range s.Overlays {
		c.Overlays = append(c.Overlays, o.Clone())
	}
	for _, w := range s.Workload {
		c.Workload = append(c.Workload, w.Clone())
	}
	for _, r := range s.Risks {
		c.Risks = append(c.Risks, r.Clone())
	}
	return c
}

// ItemByID returns the item with the given id, or nil.
func (s *Snapshot) ItemByID(id string) *Item {
	if s == nil {
		return nil
	}
	for _, it := range s.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// GroupByID returns the group with the given id, or nil.
func (s *Snapshot) GroupByID(id string) *Group {
	if s == nil {
		return nil
	}
	for _, g := range s.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// MilestoneByID returns the milestone with the given id, or nil.
func (s *Snapshot) MilestoneByID(id string) *Milestone {
	if s == nil {
		return nil
	}
	for _, m := range s.Milestones {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// HasDependency reports whether an edge with the same ordered pair exists.
func (s *Snapshot) HasDependency(fromID, toID string) bool {
	if s == nil {
		return false
	}
	for _, d := range s.Dependencies {
		if d.FromID == fromID && d.ToID == toID {
			return true
		}
	}
	return false
}

// RemoveItems deletes the given items and purges every dependency edge
// touching them, keeping referential integrity.
func (s *Snapshot) RemoveItems(ids []string) {
	if s == nil || len(ids) == 0 {
		return
	}
	gone := make(map[string]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}
	items := s.Items[:0]
	for _, it := range s.Items {
		if !gone[it.ID] {
			items = append(items, it)
		}
	}
	s.Items = items
	deps := s.Dependencies[:0]
	for _, d := range s.Dependencies {
		if !gone[d.FromID] && !gone[d.ToID] {
			deps = append(deps, d)
		}
	}
	s.Dependencies = deps
}

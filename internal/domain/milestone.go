package domain

import "time"

// Milestone is a dated marker, listed independently of items. Items of
// type "milestone" may reference one for row nesting via their BaselineID.
type Milestone struct {
	ID    string
	Name  string
	Date  *time.Time
	Color string
}

// Clone returns a copy of the milestone.
func (m *Milestone) Clone() *Milestone {
	c := *m
	c.Date = cloneTime(m.Date)
	return &c
}

package domain

import "time"

// MinItemSpan is the smallest span an item may occupy. Mutations that
// would produce a shorter or inverted span are clamped to this floor.
const MinItemSpan = time.Hour

// Item is a single schedulable unit on the timeline.
type Item struct {
	ID    string
	Title string
	Type  ItemType

	// Schedule. Start and End are nil for unscheduled items.
	Start           *time.Time
	End             *time.Time
	DurationMinutes int

	// PercentComplete is in [0,1]; nil means the item reports no progress.
	PercentComplete *float64

	GroupID    string
	ParentID   string
	BaselineID string
	CalendarID string
	Tags       []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	c.Start = cloneTime(i.Start)
	c.End = cloneTime(i.End)
	if i.PercentComplete != nil {
		pc := *i.PercentComplete
		c.PercentComplete = &pc
	}
	if i.Tags != nil {
		c.Tags = make([]string, len(i.Tags))
		copy(c.Tags, i.Tags)
	}
	return &c
}

// Scheduled reports whether both endpoints are set.
func (i *Item) Scheduled() bool {
	return i.Start != nil && i.End != nil
}

// ClampSpan enforces End > Start with the minimum span floor.
// It moves End, never Start.
func (i *Item) ClampSpan() {
	if i.Start == nil || i.End == nil {
		return
	}
	if floor := i.Start.Add(MinItemSpan); i.End.Before(floor) {
		f := floor
		i.End = &f
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

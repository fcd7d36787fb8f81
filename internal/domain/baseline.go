package domain

import "time"

// Baseline is a saved schedule for one item, used to compute variance
// against the current schedule.
type Baseline struct {
	ID              string
	ItemID          string
	Start           *time.Time
	End             *time.Time
	DurationMinutes int
	SavedAt         time.Time
}

// Clone returns a deep copy of the baseline.
func (b *Baseline) Clone() *Baseline {
	c := *b
	c.Start = cloneTime(b.Start)
	c.End = cloneTime(b.End)
	return &c
}

package domain

import "time"

// Calendar describes working time for scheduling context. The engine
// passes calendars through to consumers; it does not apply them.
type Calendar struct {
	ID           string
	Name         string
	WorkingDays  []time.Weekday
	HoursPerDay  int
	HolidayDates []time.Time
}

// Clone returns a deep copy of the calendar.
func (c *Calendar) Clone() *Calendar {
	out := *c
	if c.WorkingDays != nil {
		out.WorkingDays = make([]time.Weekday, len(c.WorkingDays))
		copy(out.WorkingDays, c.WorkingDays)
	}
	if c.HolidayDates != nil {
		out.HolidayDates = make([]time.Time, len(c.HolidayDates))
		copy(out.HolidayDates, c.HolidayDates)
	}
	return &out
}

// Constraint is per-item scheduling-constraint metadata, carried as
// pass-through context for consumers of derived data.
type Constraint struct {
	ID     string
	ItemID string
	Kind   ConstraintKind
	Date   *time.Time
}

// Clone returns a deep copy of the constraint.
func (c *Constraint) Clone() *Constraint {
	out := *c
	out.Date = cloneTime(c.Date)
	return &out
}

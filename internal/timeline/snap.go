package timeline

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// shiftByDays moves a timestamp by a fractional number of days.
func shiftByDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * float64(24*time.Hour)))
}

// snapTime quantizes a timestamp to the nearest boundary for the given
// snap mode: midnight for day, Monday midnight for week, the first of
// the month for month. SnapNone returns the input unchanged.
func snapTime(t time.Time, mode domain.SnapMode) time.Time {
	switch mode {
	case domain.SnapDay:
		return snapToNearest(t, startOfDay(t), startOfDay(t).AddDate(0, 0, 1))
	case domain.SnapWeek:
		ws := startOfWeek(t)
		return snapToNearest(t, ws, ws.AddDate(0, 0, 7))
	case domain.SnapMonth:
		ms := startOfMonth(t)
		return snapToNearest(t, ms, ms.AddDate(0, 1, 0))
	default:
		return t
	}
}

func snapToNearest(t, lower, upper time.Time) time.Time {
	if t.Sub(lower) < upper.Sub(t) {
		return lower
	}
	return upper
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns Monday midnight of t's week.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

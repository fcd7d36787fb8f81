package domain

import "time"

// ParseTime parses an RFC 3339 timestamp, falling back to a bare date.
// Malformed input is treated as absent (nil), never as an error:
// downstream aggregation simply excludes it.
func ParseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		u := t.UTC()
		return &u
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		u := t.UTC()
		return &u
	}
	return nil
}

// MinTime returns the earlier of two nullable times (nil is ignored).
func MinTime(a, b *time.Time) *time.Time {
	if a == nil {
		return cloneTime(b)
	}
	if b == nil || a.Before(*b) {
		return cloneTime(a)
	}
	return cloneTime(b)
}

// MaxTime returns the later of two nullable times (nil is ignored).
func MaxTime(a, b *time.Time) *time.Time {
	if a == nil {
		return cloneTime(b)
	}
	if b == nil || a.After(*b) {
		return cloneTime(a)
	}
	return cloneTime(b)
}

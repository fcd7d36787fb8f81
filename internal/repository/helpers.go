package repository

import (
	"strings"
	"time"
)

// nullableTimeToString formats a nullable time for storage, or nil.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// scanNullableTime parses a stored timestamp; malformed or NULL values
// come back nil.
func scanNullableTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		u := t.UTC()
		return &u
	}
	return nil
}

// joinTags flattens tags for the single-column representation.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags restores a tag list; an empty column means no tags.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

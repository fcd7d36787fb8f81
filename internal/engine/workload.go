package engine

import "github.com/rowanveldt/chronolane/internal/domain"

// buildWorkload buckets allocation minutes by person, falling back to
// team, falling back to the literal "unassigned" bucket.
func buildWorkload(s *domain.Snapshot) map[string]int {
	buckets := make(map[string]int)
	for _, w := range s.Workload {
		key := w.PersonID
		if key == "" {
			key = w.TeamID
		}
		if key == "" {
			key = UnassignedBucket
		}
		buckets[key] += w.AllocationMinutes
	}
	return buckets
}

package engine

import "github.com/rowanveldt/chronolane/internal/domain"

// buildCriticalPath finds the longest duration-plus-lag path through the
// dependency DAG using Kahn's topological ordering. Each node is seeded
// with its own duration; relaxing u→v considers
// longest[u] + leadLag + duration(v).
//
// A cycle makes an exact answer impossible. Rather than erroring or
// hanging, the search degrades to a one-node path holding the item with
// the largest own duration, and reports the cycle as a fault.
func buildCriticalPath(s *domain.Snapshot) ([]string, string) {
	if len(s.Items) == 0 {
		return nil, ""
	}

	duration := make(map[string]int, len(s.Items))
	for _, it := range s.Items {
		duration[it.ID] = it.DurationMinutes
	}

	succ := make(map[string][]*domain.Dependency)
	indegree := make(map[string]int, len(s.Items))
	for _, d := range s.Dependencies {
		if _, ok := duration[d.FromID]; !ok {
			continue
		}
		if _, ok := duration[d.ToID]; !ok {
			continue
		}
		succ[d.FromID] = append(succ[d.FromID], d)
		indegree[d.ToID]++
	}

	longest := make(map[string]int, len(s.Items))
	pred := make(map[string]string)
	var queue []string
	for _, it := range s.Items {
		longest[it.ID] = it.DurationMinutes
		if indegree[it.ID] == 0 {
			queue = append(queue, it.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		for _, d := range succ[u] {
			candidate := longest[u] + d.LeadLagMinutes + duration[d.ToID]
			if candidate > longest[d.ToID] {
				longest[d.ToID] = candidate
				pred[d.ToID] = u
			}
			indegree[d.ToID]--
			if indegree[d.ToID] == 0 {
				queue = append(queue, d.ToID)
			}
		}
	}

	if visited < len(s.Items) {
		// Cycle: fall back to the single item with the largest duration.
		best := s.Items[0]
		for _, it := range s.Items[1:] {
			if it.DurationMinutes > best.DurationMinutes {
				best = it
			}
		}
		return []string{best.ID}, "dependency cycle detected; critical path degraded to longest single item"
	}

	end := s.Items[0].ID
	for _, it := range s.Items[1:] {
		if longest[it.ID] > longest[end] {
			end = it.ID
		}
	}

	var path []string
	for id := end; ; {
		path = append(path, id)
		prev, ok := pred[id]
		if !ok {
			break
		}
		id = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, ""
}

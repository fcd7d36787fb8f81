package engine

import "github.com/rowanveldt/chronolane/internal/domain"

// OverlaySummary aggregates one overlay's data points.
type OverlaySummary struct {
	Min     float64
	Max     float64
	Average float64
}

// buildOverlaySummaries summarizes each overlay's points. Overlays with
// no points are omitted from the map entirely, not zeroed.
func buildOverlaySummaries(s *domain.Snapshot) map[string]OverlaySummary {
	summaries := make(map[string]OverlaySummary)
	for _, o := range s.Overlays {
		if len(o.Points) == 0 {
			continue
		}
		sum := OverlaySummary{Min: o.Points[0].Value, Max: o.Points[0].Value}
		total := 0.0
		for _, p := range o.Points {
			if p.Value < sum.Min {
				sum.Min = p.Value
			}
			if p.Value > sum.Max {
				sum.Max = p.Value
			}
			total += p.Value
		}
		sum.Average = total / float64(len(o.Points))
		summaries[o.ID] = sum
	}
	return summaries
}

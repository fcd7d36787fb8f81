package engine

import (
	"github.com/rowanveldt/chronolane/internal/domain"
)

// riskSlipThreshold is the fraction of baseline duration a slip must
// exceed before an item escalates from at-risk to critical.
const riskSlipThreshold = 0.2

// buildRisk assigns a risk level to every item with a baseline, derived
// from its schedule variance. An explicit RiskMetric on the snapshot
// overrides the derived level for its item.
func buildRisk(s *domain.Snapshot, schedules map[string]Schedule) map[string]domain.RiskLevel {
	risk := make(map[string]domain.RiskLevel)

	baselineDur := make(map[string]int, len(s.Baselines))
	for _, b := range s.Baselines {
		if _, ok := baselineDur[b.ItemID]; !ok {
			baselineDur[b.ItemID] = b.DurationMinutes
		}
	}

	for id, sched := range schedules {
		if sched.VarianceMinutes == nil {
			continue
		}
		v := *sched.VarianceMinutes
		switch {
		case v <= 0:
			risk[id] = domain.RiskOnTrack
		case float64(v) > riskSlipThreshold*float64(baselineDur[id]):
			risk[id] = domain.RiskCritical
		default:
			risk[id] = domain.RiskAtRisk
		}
	}

	for _, r := range s.Risks {
		risk[r.ItemID] = r.Level
	}
	return risk
}

package engine

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// Schedule pairs an item's current span with its saved baseline.
// VarianceMinutes is current duration minus baseline duration, or nil
// when the item has no baseline.
type Schedule struct {
	ItemID          string
	Start           *time.Time
	End             *time.Time
	DurationMinutes int
	BaselineStart   *time.Time
	BaselineEnd     *time.Time
	VarianceMinutes *int
}

func buildSchedules(s *domain.Snapshot) map[string]Schedule {
	baselines := make(map[string]*domain.Baseline, len(s.Baselines))
	for _, b := range s.Baselines {
		if _, ok := baselines[b.ItemID]; !ok {
			baselines[b.ItemID] = b
		}
	}

	schedules := make(map[string]Schedule, len(s.Items))
	for _, it := range s.Items {
		sched := Schedule{
			ItemID:          it.ID,
			Start:           it.Start,
			End:             it.End,
			DurationMinutes: it.DurationMinutes,
		}
		if b := baselines[it.ID]; b != nil {
			sched.BaselineStart = b.Start
			sched.BaselineEnd = b.End
			v := it.DurationMinutes - b.DurationMinutes
			sched.VarianceMinutes = &v
		}
		schedules[it.ID] = sched
	}
	return schedules
}

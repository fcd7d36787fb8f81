package engine

import "github.com/rowanveldt/chronolane/internal/domain"

func buildDateRange(s *domain.Snapshot) DateRange {
	var r DateRange
	for _, it := range s.Items {
		r.Start = domain.MinTime(r.Start, it.Start)
		r.End = domain.MaxTime(r.End, it.End)
	}
	for _, m := range s.Milestones {
		r.Start = domain.MinTime(r.Start, m.Date)
		r.End = domain.MaxTime(r.End, m.Date)
	}
	return r
}

package engine

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// RootRollupID is the synthetic rollup aggregating top-level groups and
// ungrouped items.
const RootRollupID = "__root__"

// UnassignedBucket collects workload minutes with no person or team.
const UnassignedBucket = "unassigned"

// DerivedData is everything computed from one snapshot: render-ready
// rows, aggregates, and the critical path. It is rebuilt wholesale after
// every committed mutation and never mutated in place.
type DerivedData struct {
	Rollups            map[string]Rollup
	Schedules          map[string]Schedule
	RiskByItem         map[string]domain.RiskLevel
	WorkloadByResource map[string]int
	Overlays           map[string]OverlaySummary
	Rows               []Row
	CriticalPath       []string
	DateRange          DateRange

	// Faults lists data-integrity problems found during computation
	// (group-forest cycles, dependency cycles). They degrade the result
	// but never fail it.
	Faults []string
}

// DateRange spans the earliest start to the latest end across all items
// and milestone dates. Either bound is nil when nothing is dated.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Compute derives all render-ready data from a snapshot. It is pure and
// total: a nil snapshot yields empty derived data, and no snapshot shape
// causes a panic.
func Compute(s *domain.Snapshot) DerivedData {
	if s == nil {
		return DerivedData{}
	}

	f := buildForest(s)
	schedules := buildSchedules(s)
	d := DerivedData{
		Rollups:            buildRollups(f),
		Schedules:          schedules,
		RiskByItem:         buildRisk(s, schedules),
		WorkloadByResource: buildWorkload(s),
		Overlays:           buildOverlaySummaries(s),
		DateRange:          buildDateRange(s),
		Faults:             f.faults,
	}
	d.Rows = buildRows(s, f, d.Rollups)

	path, fault := buildCriticalPath(s)
	d.CriticalPath = path
	if fault != "" {
		d.Faults = append(d.Faults, fault)
	}
	return d
}

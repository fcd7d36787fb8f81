package domain

type ItemType string

const (
	ItemTask        ItemType = "task"
	ItemProject     ItemType = "project"
	ItemMilestone   ItemType = "milestone"
	ItemGroup       ItemType = "group"
	ItemSubtask     ItemType = "subtask"
	ItemDeliverable ItemType = "deliverable"
)

// ValidItemTypes is the canonical set of accepted item type strings.
var ValidItemTypes = map[string]bool{
	"task": true, "project": true, "milestone": true,
	"group": true, "subtask": true, "deliverable": true,
}

type DependencyType string

const (
	DepFinishToStart  DependencyType = "FS"
	DepStartToStart   DependencyType = "SS"
	DepFinishToFinish DependencyType = "FF"
	DepStartToFinish  DependencyType = "SF"
)

// ValidDependencyTypes is the canonical set of accepted dependency type strings.
var ValidDependencyTypes = map[string]bool{
	"FS": true, "SS": true, "FF": true, "SF": true,
}

type SnapMode string

const (
	SnapNone  SnapMode = "none"
	SnapDay   SnapMode = "day"
	SnapWeek  SnapMode = "week"
	SnapMonth SnapMode = "month"
)

type TimeScale string

const (
	ScaleDay     TimeScale = "day"
	ScaleWeek    TimeScale = "week"
	ScaleMonth   TimeScale = "month"
	ScaleQuarter TimeScale = "quarter"
)

type RowDensity string

const (
	DensityCompact     RowDensity = "compact"
	DensityComfortable RowDensity = "comfortable"
)

type ConstraintKind string

const (
	ConstraintMustStartOn    ConstraintKind = "must_start_on"
	ConstraintStartNoEarlier ConstraintKind = "start_no_earlier"
	ConstraintFinishNoLater  ConstraintKind = "finish_no_later"
	ConstraintMustFinishOn   ConstraintKind = "must_finish_on"
)

type RiskLevel string

const (
	RiskOnTrack  RiskLevel = "on_track"
	RiskAtRisk   RiskLevel = "at_risk"
	RiskCritical RiskLevel = "critical"
)

package timeline

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// Edge identifies which end of an item a resize gesture moves.
type Edge string

const (
	EdgeStart Edge = "start"
	EdgeEnd   Edge = "end"
)

type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureDrag
	gestureResize
	gestureCreate
	gestureLink
)

// span is a captured (start, end) pair taken at gesture begin; updates
// always recompute from the capture, never from the live values.
type span struct {
	start time.Time
	end   time.Time
}

// gestureState is the single in-flight gesture, a tagged struct: kind
// selects which of the remaining fields are meaningful.
type gestureState struct {
	kind gestureKind

	// pre is the deep pre-mutation snapshot, committed to history when
	// the gesture completes.
	pre *domain.Snapshot

	// dirty is set once the gesture has actually changed the snapshot.
	dirty bool

	// drag: captured spans of every selected item.
	// resize and create: the single target item's capture.
	baselines map[string]span
	itemID    string
	edge      Edge
	anchor    time.Time

	// link: the two-phase dependency source.
	fromID  string
	depType domain.DependencyType
}

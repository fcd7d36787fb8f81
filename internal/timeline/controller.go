// Package timeline implements the interaction layer of the timeline
// view: a gesture state machine that is the sole writer of the snapshot
// store. Malformed or out-of-range requests are silent no-ops — the
// controller sits directly under live pointer and keyboard input and
// favors graceful degradation over hard failures.
package timeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/rowanveldt/chronolane/internal/store"
)

// Controller owns the in-flight gesture, selection, and clipboard, and
// issues every mutation against the snapshot store. It reads live state
// directly; there is no parallel bookkeeping to drift out of sync.
type Controller struct {
	store *store.Store
	prefs *Preferences

	gesture   gestureState
	selection []string
	clipboard []*domain.Item

	// clock and newID are injectable for tests.
	clock func() time.Time
	newID func() string
}

// NewController creates a controller over the given store and prefs.
func NewController(st *store.Store, prefs *Preferences) *Controller {
	return &Controller{
		store: st,
		prefs: prefs,
		clock: time.Now,
		newID: uuid.NewString,
	}
}

// Prefs exposes the live preferences (zoom, snap mode).
func (c *Controller) Prefs() *Preferences { return c.prefs }

// Store exposes the underlying snapshot store.
func (c *Controller) Store() *store.Store { return c.store }

func (c *Controller) snapshot() *domain.Snapshot {
	if c.store == nil {
		return nil
	}
	return c.store.Snapshot()
}

// GestureActive reports whether a gesture is in flight.
func (c *Controller) GestureActive() bool { return c.gesture.kind != gestureNone }

// beginGesture clears the way for a new gesture. Starting a gesture
// while one is active implicitly cancels the prior one, with that
// gesture's own cancel semantics.
func (c *Controller) beginGesture() {
	if c.gesture.kind != gestureNone {
		c.CancelGesture()
	}
}

// BeginDrag captures the (start, end) baseline of every selected
// scheduled item. A multi-selection moves together. No-op when nothing
// schedulable is selected.
func (c *Controller) BeginDrag() {
	c.beginGesture()
	snap := c.snapshot()
	if snap == nil {
		return
	}
	baselines := make(map[string]span)
	for _, id := range c.selection {
		if it := snap.ItemByID(id); it != nil && it.Scheduled() {
			baselines[id] = span{start: *it.Start, end: *it.End}
		}
	}
	if len(baselines) == 0 {
		return
	}
	c.gesture = gestureState{
		kind:      gestureDrag,
		pre:       snap.Clone(),
		baselines: baselines,
	}
}

// UpdateDrag shifts every captured baseline by deltaPixels worth of days
// and snaps the shifted result. A zero delta restores the captures
// exactly, so repeated zero updates are idempotent.
func (c *Controller) UpdateDrag(deltaPixels float64) {
	if c.gesture.kind != gestureDrag {
		return
	}
	snap := c.snapshot()
	if snap == nil {
		return
	}
	deltaDays := deltaPixels / c.prefs.PixelsPerDay()
	for id, base := range c.gesture.baselines {
		it := snap.ItemByID(id)
		if it == nil {
			continue
		}
		if deltaDays == 0 {
			s, e := base.start, base.end
			it.Start, it.End = &s, &e
		} else {
			s := snapTime(shiftByDays(base.start, deltaDays), c.prefs.SnapMode)
			e := snapTime(shiftByDays(base.end, deltaDays), c.prefs.SnapMode)
			it.Start, it.End = &s, &e
			it.ClampSpan()
			c.gesture.dirty = true
		}
		syncDuration(it)
	}
}

// BeginResize starts a single-item, single-edge resize.
func (c *Controller) BeginResize(itemID string, edge Edge) {
	c.beginGesture()
	snap := c.snapshot()
	if snap == nil {
		return
	}
	it := snap.ItemByID(itemID)
	if it == nil || !it.Scheduled() {
		return
	}
	c.gesture = gestureState{
		kind:      gestureResize,
		pre:       snap.Clone(),
		baselines: map[string]span{itemID: {start: *it.Start, end: *it.End}},
		itemID:    itemID,
		edge:      edge,
	}
}

// UpdateResize shifts and snaps the touched edge; the untouched edge
// stays at its captured baseline and the span keeps its 1-hour floor.
func (c *Controller) UpdateResize(deltaPixels float64) {
	if c.gesture.kind != gestureResize {
		return
	}
	snap := c.snapshot()
	if snap == nil {
		return
	}
	it := snap.ItemByID(c.gesture.itemID)
	if it == nil {
		return
	}
	base := c.gesture.baselines[c.gesture.itemID]
	deltaDays := deltaPixels / c.prefs.PixelsPerDay()

	if c.gesture.edge == EdgeStart {
		s := base.start
		if deltaDays != 0 {
			s = snapTime(shiftByDays(base.start, deltaDays), c.prefs.SnapMode)
		}
		e := base.end
		if floor := e.Add(-domain.MinItemSpan); s.After(floor) {
			s = floor
		}
		it.Start, it.End = &s, &e
	} else {
		e := base.end
		if deltaDays != 0 {
			e = snapTime(shiftByDays(base.end, deltaDays), c.prefs.SnapMode)
		}
		s := base.start
		it.Start, it.End = &s, &e
		it.ClampSpan()
	}
	if deltaDays != 0 {
		c.gesture.dirty = true
	}
	syncDuration(it)
}

// BeginCreate starts a create gesture on a group row: a provisional
// one-day item is inserted immediately and selected. Cancel rolls it
// back; complete commits it.
func (c *Controller) BeginCreate(groupID string, anchor time.Time) {
	c.beginGesture()
	snap := c.snapshot()
	if snap == nil {
		return
	}
	pre := snap.Clone()
	start := snapTime(anchor, c.prefs.SnapMode)
	end := start.AddDate(0, 0, 1)
	now := c.clock().UTC()
	it := &domain.Item{
		ID:        c.newID(),
		Title:     "New item",
		Type:      domain.ItemTask,
		Start:     &start,
		End:       &end,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	syncDuration(it)
	snap.Items = append(snap.Items, it)
	c.selection = []string{it.ID}
	c.gesture = gestureState{
		kind:   gestureCreate,
		pre:    pre,
		itemID: it.ID,
		anchor: start,
		dirty:  true,
	}
}

// UpdateCreate extends the provisional item's end edge as the pointer
// moves away from the anchor.
func (c *Controller) UpdateCreate(deltaPixels float64) {
	if c.gesture.kind != gestureCreate {
		return
	}
	snap := c.snapshot()
	if snap == nil {
		return
	}
	it := snap.ItemByID(c.gesture.itemID)
	if it == nil {
		return
	}
	deltaDays := deltaPixels / c.prefs.PixelsPerDay()
	e := snapTime(shiftByDays(c.gesture.anchor, deltaDays), c.prefs.SnapMode)
	it.End = &e
	it.ClampSpan()
	syncDuration(it)
}

// BeginLink starts the two-phase dependency-link gesture.
func (c *Controller) BeginLink(fromID string, depType domain.DependencyType) {
	c.beginGesture()
	snap := c.snapshot()
	if snap == nil || snap.ItemByID(fromID) == nil {
		return
	}
	c.gesture = gestureState{kind: gestureLink, fromID: fromID, depType: depType}
}

// CompleteLink finishes the link gesture. Self-loops and duplicate
// ordered pairs abort silently.
func (c *Controller) CompleteLink(toID string) {
	if c.gesture.kind != gestureLink {
		return
	}
	fromID := c.gesture.fromID
	depType := c.gesture.depType
	c.gesture = gestureState{}

	snap := c.snapshot()
	if snap == nil || toID == fromID || snap.ItemByID(toID) == nil {
		return
	}
	if snap.HasDependency(fromID, toID) {
		return
	}
	pre := snap.Clone()
	snap.Dependencies = append(snap.Dependencies, &domain.Dependency{
		ID:     c.newID(),
		FromID: fromID,
		ToID:   toID,
		Type:   depType,
	})
	c.store.Commit(pre)
}

// CompleteGesture commits the in-flight gesture. Safe on an idle
// controller.
func (c *Controller) CompleteGesture() {
	g := c.gesture
	c.gesture = gestureState{}
	switch g.kind {
	case gestureDrag, gestureResize, gestureCreate:
		if g.dirty && g.pre != nil {
			c.store.Commit(g.pre)
		}
	case gestureLink:
		// A link with no target never mutated anything.
	}
}

// CancelGesture abandons the in-flight gesture. Cancelling a create
// rolls the provisional item back; cancelling drag/resize keeps deltas
// already applied (the gestures are live, create is provisional). Safe
// on an idle controller.
func (c *Controller) CancelGesture() {
	g := c.gesture
	c.gesture = gestureState{}
	if g.kind == gestureCreate && g.pre != nil {
		c.store.Replace(g.pre)
		c.selection = nil
	}
}

// Delete removes the current selection and purges dependency edges
// touching the removed items. No-op on an empty selection.
func (c *Controller) Delete() {
	snap := c.snapshot()
	if snap == nil || len(c.selection) == 0 {
		return
	}
	pre := snap.Clone()
	snap.RemoveItems(c.selection)
	c.selection = nil
	c.store.Commit(pre)
}

// Nudge moves the selection by the given number of days through the
// same shift-and-snap path as drag, committed as one mutation.
func (c *Controller) Nudge(days float64) {
	snap := c.snapshot()
	if snap == nil || len(c.selection) == 0 || days == 0 {
		return
	}
	var pre *domain.Snapshot
	for _, id := range c.selection {
		it := snap.ItemByID(id)
		if it == nil || !it.Scheduled() {
			continue
		}
		if pre == nil {
			pre = snap.Clone()
		}
		s := snapTime(shiftByDays(*it.Start, days), c.prefs.SnapMode)
		e := snapTime(shiftByDays(*it.End, days), c.prefs.SnapMode)
		it.Start, it.End = &s, &e
		it.ClampSpan()
		syncDuration(it)
	}
	if pre != nil {
		c.store.Commit(pre)
	}
}

// Undo restores the previous snapshot; any in-flight gesture is
// cancelled first so its captures cannot reference replaced state.
func (c *Controller) Undo() bool {
	c.CancelGesture()
	return c.store.Undo()
}

// Redo restores the next snapshot.
func (c *Controller) Redo() bool {
	c.CancelGesture()
	return c.store.Redo()
}

// syncDuration keeps DurationMinutes consistent with the span.
func syncDuration(it *domain.Item) {
	if it.Start == nil || it.End == nil {
		return
	}
	it.DurationMinutes = int(it.End.Sub(*it.Start) / time.Minute)
}

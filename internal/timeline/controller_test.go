package timeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
	"github.com/rowanveldt/chronolane/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func day(n int) *time.Time {
	t := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return &t
}

func testItem(id string, start, end *time.Time) *domain.Item {
	it := &domain.Item{ID: id, Title: id, Type: domain.ItemTask, Start: start, End: end}
	if start != nil && end != nil {
		it.DurationMinutes = int(end.Sub(*start) / time.Minute)
	}
	return it
}

// newTestController wires a controller with a deterministic clock and id
// sequence over the given snapshot.
func newTestController(snap *domain.Snapshot) *Controller {
	st := store.New(0)
	st.Load(snap)
	prefs := DefaultPreferences()
	c := NewController(st, &prefs)
	c.clock = func() time.Time { return testNow }
	seq := 0
	c.newID = func() string {
		seq++
		return fmt.Sprintf("new-%d", seq)
	}
	return c
}

func twoItemSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Items: []*domain.Item{
			testItem("a", day(1), day(3)),
			testItem("b", day(5), day(6)),
		},
	}
}

func TestDrag_SnapExactness(t *testing.T) {
	// pixelsPerDay = 50, deltaPixels = 100, snap day => exactly +2 days.
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a"}, SelectReplace)

	c.BeginDrag()
	c.UpdateDrag(100)
	c.CompleteGesture()

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(3), *it.Start)
	assert.Equal(t, *day(5), *it.End)
}

func TestDrag_ZeroDeltaIsIdempotent(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a", "b"}, SelectReplace)

	c.BeginDrag()
	c.UpdateDrag(0)
	c.UpdateDrag(0)

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(1), *it.Start)
	assert.Equal(t, *day(3), *it.End)
	c.CompleteGesture()
	assert.False(t, c.Store().CanUndo(), "an untouched drag commits nothing")
}

func TestDrag_UpdatesComputeFromCapturedBaseline(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a"}, SelectReplace)

	c.BeginDrag()
	c.UpdateDrag(100)
	c.UpdateDrag(50) // not cumulative: +1 day from capture, not +3

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(2), *it.Start)
}

func TestDrag_MultiSelectionMovesTogether(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a", "b"}, SelectReplace)

	c.BeginDrag()
	c.UpdateDrag(50)
	c.CompleteGesture()

	snap := c.Store().Snapshot()
	assert.Equal(t, *day(2), *snap.ItemByID("a").Start)
	assert.Equal(t, *day(6), *snap.ItemByID("b").Start)
}

func TestDrag_EmptySelectionIsNoOp(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.BeginDrag()
	assert.False(t, c.GestureActive())
	c.UpdateDrag(100)
	c.CompleteGesture()

	assert.Equal(t, *day(1), *c.Store().Snapshot().ItemByID("a").Start)
}

func TestDrag_CancelKeepsAppliedDeltas(t *testing.T) {
	// Drag and resize apply live; cancel only stops tracking. Only
	// create rolls back.
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a"}, SelectReplace)

	c.BeginDrag()
	c.UpdateDrag(100)
	c.CancelGesture()

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(3), *it.Start, "applied deltas survive a cancel")
	assert.False(t, c.Store().CanUndo(), "cancelled gesture leaves no history entry")
}

func TestDrag_UndoRedoRoundTrip(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a"}, SelectReplace)

	c.BeginDrag()
	c.UpdateDrag(100)
	c.CompleteGesture()

	require.True(t, c.Undo())
	assert.Equal(t, *day(1), *c.Store().Snapshot().ItemByID("a").Start)
	require.True(t, c.Redo())
	assert.Equal(t, *day(3), *c.Store().Snapshot().ItemByID("a").Start)
}

func TestResize_EndEdge(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.BeginResize("a", EdgeEnd)
	c.UpdateResize(100)
	c.CompleteGesture()

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(1), *it.Start, "untouched edge stays at its capture")
	assert.Equal(t, *day(5), *it.End)
	assert.Equal(t, 4*24*60, it.DurationMinutes)
}

func TestResize_StartEdgeClampsToHourFloor(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.BeginResize("a", EdgeStart)
	c.UpdateResize(500) // way past the end
	c.CompleteGesture()

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(3), *it.End)
	assert.Equal(t, day(3).Add(-time.Hour), *it.Start, "span keeps its 1-hour floor")
}

func TestResize_UnscheduledItemIsNoOp(t *testing.T) {
	snap := &domain.Snapshot{Items: []*domain.Item{{ID: "x", Type: domain.ItemTask}}}
	c := newTestController(snap)

	c.BeginResize("x", EdgeEnd)
	assert.False(t, c.GestureActive())
}

func TestCreate_ProvisionalItemAndCancelRollback(t *testing.T) {
	c := newTestController(&domain.Snapshot{})

	c.BeginCreate("", *day(4))
	snap := c.Store().Snapshot()
	require.Len(t, snap.Items, 1, "create inserts optimistically")
	assert.Equal(t, []string{"new-1"}, c.Selection())
	assert.Equal(t, *day(4), *snap.Items[0].Start)
	assert.Equal(t, *day(5), *snap.Items[0].End, "default span is one day")

	c.CancelGesture()
	assert.Empty(t, c.Store().Snapshot().Items, "cancel deletes the provisional item")
	assert.False(t, c.Store().CanUndo())
}

func TestCreate_CompleteCommitsAndUndoRemoves(t *testing.T) {
	c := newTestController(&domain.Snapshot{})

	c.BeginCreate("", *day(4))
	c.UpdateCreate(150) // extend end to anchor+3d
	c.CompleteGesture()

	snap := c.Store().Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, *day(7), *snap.Items[0].End)

	require.True(t, c.Undo())
	assert.Empty(t, c.Store().Snapshot().Items)
}

func TestBeginGesture_ImplicitlyCancelsPrior(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.BeginCreate("", *day(4))
	require.Len(t, c.Store().Snapshot().Items, 3)

	// Starting a drag mid-create cancels the create, rolling it back.
	c.Select([]string{"a"}, SelectReplace)
	c.BeginDrag()

	assert.Len(t, c.Store().Snapshot().Items, 2)
}

func TestLink_CreatesDependency(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.BeginLink("a", domain.DepFinishToStart)
	c.CompleteLink("b")

	snap := c.Store().Snapshot()
	require.Len(t, snap.Dependencies, 1)
	assert.Equal(t, "a", snap.Dependencies[0].FromID)
	assert.Equal(t, "b", snap.Dependencies[0].ToID)
	assert.True(t, c.Store().CanUndo())
}

func TestLink_RejectsSelfLoopAndDuplicate(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.BeginLink("a", domain.DepFinishToStart)
	c.CompleteLink("a")
	assert.Empty(t, c.Store().Snapshot().Dependencies, "self-loop aborts silently")

	c.BeginLink("a", domain.DepFinishToStart)
	c.CompleteLink("b")
	c.BeginLink("a", domain.DepStartToStart)
	c.CompleteLink("b")
	assert.Len(t, c.Store().Snapshot().Dependencies, 1, "duplicate ordered pair aborts silently")
}

func TestDelete_PurgesEdgesAndCommits(t *testing.T) {
	snap := twoItemSnapshot()
	snap.Dependencies = []*domain.Dependency{{ID: "d", FromID: "a", ToID: "b", Type: domain.DepFinishToStart}}
	c := newTestController(snap)
	c.Select([]string{"a"}, SelectReplace)

	c.Delete()

	s := c.Store().Snapshot()
	assert.Nil(t, s.ItemByID("a"))
	assert.Empty(t, s.Dependencies)
	assert.Empty(t, c.Selection())

	require.True(t, c.Undo())
	assert.NotNil(t, c.Store().Snapshot().ItemByID("a"))
	assert.Len(t, c.Store().Snapshot().Dependencies, 1)
}

func TestDelete_EmptySelectionIsNoOp(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Delete()
	assert.Len(t, c.Store().Snapshot().Items, 2)
	assert.False(t, c.Store().CanUndo())
}

func TestNudge_ShiftsByDays(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a"}, SelectReplace)

	c.Nudge(7)

	it := c.Store().Snapshot().ItemByID("a")
	assert.Equal(t, *day(8), *it.Start)
	assert.Equal(t, *day(10), *it.End)
	assert.True(t, c.Store().CanUndo(), "nudge is a committed mutation")
}

func TestCopyPaste_SharedOffsetAndFreshIDs(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a", "b"}, SelectReplace)

	c.CopySelection()
	c.PasteClipboard()

	snap := c.Store().Snapshot()
	require.Len(t, snap.Items, 4)

	// Earliest copied start (day 1) moves to start-of-today (day 9);
	// every copy shifts by that same offset.
	offset := day(9).Sub(*day(1))
	pasteA := snap.ItemByID("new-1")
	pasteB := snap.ItemByID("new-2")
	require.NotNil(t, pasteA)
	require.NotNil(t, pasteB)
	assert.Equal(t, day(1).Add(offset), *pasteA.Start)
	assert.Equal(t, day(3).Add(offset), *pasteA.End)
	assert.Equal(t, day(5).Add(offset), *pasteB.Start)

	orig := snap.ItemByID("a")
	assert.Equal(t, orig.Title, pasteA.Title, "all fields except id and dates carry over")
	assert.Equal(t, orig.DurationMinutes, pasteA.DurationMinutes)

	assert.Equal(t, []string{"new-1", "new-2"}, c.Selection(), "pasted items are selected")
}

func TestCopy_IndependentOfLaterMutations(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.Select([]string{"a"}, SelectReplace)
	c.CopySelection()

	c.Delete() // remove the original after copying

	c.PasteClipboard()
	snap := c.Store().Snapshot()
	pasted := snap.ItemByID("new-1")
	require.NotNil(t, pasted, "clipboard survives deletion of the source")
	assert.Equal(t, "a", pasted.Title)
}

func TestPaste_EmptyClipboardIsNoOp(t *testing.T) {
	c := newTestController(twoItemSnapshot())
	c.PasteClipboard()
	assert.Len(t, c.Store().Snapshot().Items, 2)
	assert.False(t, c.Store().CanUndo())
}

func TestNilSnapshot_AllMutationsNoOp(t *testing.T) {
	st := store.New(0)
	prefs := DefaultPreferences()
	c := NewController(st, &prefs)

	c.Select([]string{"a"}, SelectReplace)
	c.BeginDrag()
	c.UpdateDrag(100)
	c.CompleteGesture()
	c.BeginCreate("", testNow)
	c.Delete()
	c.Nudge(1)
	c.CopySelection()
	c.PasteClipboard()
	c.CancelGesture()

	assert.Nil(t, st.Snapshot())
	assert.False(t, st.CanUndo())
}

func TestSelection_Modes(t *testing.T) {
	c := newTestController(twoItemSnapshot())

	c.Select([]string{"a"}, SelectReplace)
	c.Select([]string{"b"}, SelectAppend)
	assert.Equal(t, []string{"a", "b"}, c.Selection())

	c.Select([]string{"a"}, SelectToggle)
	assert.Equal(t, []string{"b"}, c.Selection())

	c.Select([]string{"a"}, SelectToggle)
	assert.Equal(t, []string{"b", "a"}, c.Selection())

	c.ClearSelection()
	assert.Empty(t, c.Selection())

	c.SelectAll()
	assert.Equal(t, []string{"a", "b"}, c.Selection())
}

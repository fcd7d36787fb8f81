package timeline

import (
	"strings"

	"github.com/rowanveldt/chronolane/internal/engine"
)

// KeyEvent is a normalized keyboard event. Meta is cmd or ctrl.
type KeyEvent struct {
	Key   string
	Shift bool
	Alt   bool
	Meta  bool
}

// HandleKey is the single keyboard entry point. Unrecognized
// combinations are ignored.
func (c *Controller) HandleKey(ev KeyEvent) {
	key := strings.ToLower(ev.Key)

	if ev.Meta {
		switch key {
		case "c":
			c.CopySelection()
		case "v":
			c.PasteClipboard()
		case "z":
			if ev.Shift {
				c.Redo()
			} else {
				c.Undo()
			}
		case "y":
			c.Redo()
		case "a":
			c.SelectAll()
		case "0":
			c.prefs.ResetZoom()
		}
		return
	}

	switch key {
	case "delete", "backspace":
		c.Delete()
	case "left":
		c.Nudge(-nudgeDays(ev))
	case "right":
		c.Nudge(nudgeDays(ev))
	case "up":
		c.moveSelectionRow(-1)
	case "down":
		c.moveSelectionRow(1)
	case "+", "=":
		c.prefs.ZoomIn()
	case "-":
		c.prefs.ZoomOut()
	case "escape", "esc":
		c.CancelGesture()
		c.ClearSelection()
	}
}

func nudgeDays(ev KeyEvent) float64 {
	switch {
	case ev.Shift:
		return 7
	case ev.Alt:
		return 0.25
	default:
		return 1
	}
}

// moveSelectionRow moves the selection to the adjacent row holding an
// item, skipping group and milestone rows. With no current selection it
// lands on the first item row.
func (c *Controller) moveSelectionRow(direction int) {
	snap := c.snapshot()
	if snap == nil {
		return
	}
	rows := engine.Compute(snap).Rows
	if len(rows) == 0 {
		return
	}

	current := -1
	if len(c.selection) > 0 {
		for i, r := range rows {
			if r.Kind == engine.RowItem && r.ID == c.selection[0] {
				current = i
				break
			}
		}
	}
	if current < 0 {
		for _, r := range rows {
			if r.Kind == engine.RowItem {
				c.selection = []string{r.ID}
				return
			}
		}
		return
	}

	for i := current + direction; i >= 0 && i < len(rows); i += direction {
		if rows[i].Kind == engine.RowItem {
			c.selection = []string{rows[i].ID}
			return
		}
	}
}

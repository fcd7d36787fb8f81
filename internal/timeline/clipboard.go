package timeline

import (
	"time"

	"github.com/rowanveldt/chronolane/internal/domain"
)

// CopySelection deep-clones the selected items into the clipboard. The
// copies are independent of later mutations and of undo history.
func (c *Controller) CopySelection() {
	snap := c.snapshot()
	if snap == nil || len(c.selection) == 0 {
		return
	}
	var copies []*domain.Item
	for _, id := range c.selection {
		if it := snap.ItemByID(id); it != nil {
			copies = append(copies, it.Clone())
		}
	}
	if len(copies) > 0 {
		c.clipboard = copies
	}
}

// PasteClipboard inserts copies of the clipboard items with fresh ids,
// all shifted by one shared offset: the delta that moves the earliest
// copied start to the start of today. Pasted items become the selection.
// No-op on an empty clipboard.
func (c *Controller) PasteClipboard() {
	snap := c.snapshot()
	if snap == nil || len(c.clipboard) == 0 {
		return
	}

	var earliest *time.Time
	for _, it := range c.clipboard {
		earliest = domain.MinTime(earliest, it.Start)
	}
	var offset time.Duration
	if earliest != nil {
		offset = startOfDay(c.clock()).Sub(*earliest)
	}

	pre := snap.Clone()
	now := c.clock().UTC()
	ids := make([]string, 0, len(c.clipboard))
	for _, src := range c.clipboard {
		it := src.Clone()
		it.ID = c.newID()
		if it.Start != nil {
			s := it.Start.Add(offset)
			it.Start = &s
		}
		if it.End != nil {
			e := it.End.Add(offset)
			it.End = &e
		}
		it.CreatedAt = now
		it.UpdatedAt = now
		snap.Items = append(snap.Items, it)
		ids = append(ids, it.ID)
	}
	c.store.Commit(pre)
	c.selection = ids
}

// ClipboardLen reports how many items are on the clipboard.
func (c *Controller) ClipboardLen() int { return len(c.clipboard) }

package timeline

// SelectionMode controls how Select combines ids with the current
// selection.
type SelectionMode string

const (
	SelectReplace SelectionMode = "replace"
	SelectAppend  SelectionMode = "append"
	SelectToggle  SelectionMode = "toggle"
)

// Select updates the ordered selection list.
func (c *Controller) Select(ids []string, mode SelectionMode) {
	switch mode {
	case SelectAppend:
		present := make(map[string]bool, len(c.selection))
		for _, id := range c.selection {
			present[id] = true
		}
		for _, id := range ids {
			if !present[id] {
				c.selection = append(c.selection, id)
				present[id] = true
			}
		}
	case SelectToggle:
		for _, id := range ids {
			if i := indexOf(c.selection, id); i >= 0 {
				c.selection = append(c.selection[:i], c.selection[i+1:]...)
			} else {
				c.selection = append(c.selection, id)
			}
		}
	default:
		c.selection = dedupe(ids)
	}
}

// ClearSelection empties the selection.
func (c *Controller) ClearSelection() {
	c.selection = nil
}

// SelectAll selects every item in snapshot order.
func (c *Controller) SelectAll() {
	snap := c.snapshot()
	if snap == nil {
		return
	}
	ids := make([]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		ids = append(ids, it.ID)
	}
	c.selection = ids
}

// Selection returns a copy of the ordered selected ids.
func (c *Controller) Selection() []string {
	out := make([]string, len(c.selection))
	copy(out, c.selection)
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

package domain

// Group is a hierarchical container for items. ParentID links groups into
// a forest; OrderIndex orders siblings.
type Group struct {
	ID         string
	Name       string
	ParentID   string
	OrderIndex int
	Color      string
}

// Clone returns a copy of the group.
func (g *Group) Clone() *Group {
	c := *g
	return &c
}

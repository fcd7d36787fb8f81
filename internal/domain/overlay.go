package domain

// OverlayPoint is one numeric annotation attached to an item.
type OverlayPoint struct {
	ItemID string
	Value  float64
}

// Overlay is a named series of per-item numeric annotations, aggregated
// into summaries by the derived-data engine.
type Overlay struct {
	ID     string
	Kind   string
	Label  string
	Points []OverlayPoint
}

// Clone returns a deep copy of the overlay.
func (o *Overlay) Clone() *Overlay {
	c := *o
	if o.Points != nil {
		c.Points = make([]OverlayPoint, len(o.Points))
		copy(c.Points, o.Points)
	}
	return &c
}

// WorkloadMetric records allocated minutes for an item against a person
// or team. Either PersonID or TeamID may be empty.
type WorkloadMetric struct {
	ID                string
	ItemID            string
	PersonID          string
	TeamID            string
	AllocationMinutes int
}

// Clone returns a copy of the workload metric.
func (w *WorkloadMetric) Clone() *WorkloadMetric {
	c := *w
	return &c
}

// RiskMetric is a per-item risk annotation.
type RiskMetric struct {
	ItemID string
	Level  RiskLevel
	Score  float64
}

// Clone returns a copy of the risk metric.
func (r *RiskMetric) Clone() *RiskMetric {
	c := *r
	return &c
}

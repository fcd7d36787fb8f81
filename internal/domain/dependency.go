package domain

// Dependency is a directed scheduling edge between two items.
// LeadLagMinutes shifts when the successor may begin relative to the
// predecessor; negative values are leads, positive values lags.
type Dependency struct {
	ID             string
	FromID         string
	ToID           string
	Type           DependencyType
	LeadLagMinutes int
}

// Clone returns a copy of the dependency.
func (d *Dependency) Clone() *Dependency {
	c := *d
	return &c
}

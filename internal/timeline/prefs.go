package timeline

import "github.com/rowanveldt/chronolane/internal/domain"

// Zoom bounds and step for the +/- keyboard commands.
const (
	MinZoom  = 0.25
	MaxZoom  = 5.0
	ZoomStep = 0.1
)

// Preferences is the view configuration consulted by the controller for
// snap quantization and zoom; the remaining fields pass through opaquely
// to renderers.
type Preferences struct {
	Scale            domain.TimeScale
	ZoomLevel        float64
	ShowWeekends     bool
	ShowBaselines    bool
	ShowDependencies bool
	ShowOverlays     bool
	SnapMode         domain.SnapMode
	RowDensity       domain.RowDensity
	Grouping         string
	ColorBy          string
	Swimlanes        bool
	CalendarID       string
	SavedViewID      string
}

// DefaultPreferences returns the out-of-the-box view configuration.
func DefaultPreferences() Preferences {
	return Preferences{
		Scale:            domain.ScaleDay,
		ZoomLevel:        1.0,
		ShowWeekends:     true,
		ShowBaselines:    true,
		ShowDependencies: true,
		SnapMode:         domain.SnapDay,
		RowDensity:       domain.DensityComfortable,
	}
}

// PixelsPerDay converts the current scale and zoom into the horizontal
// resolution used to translate pointer deltas into day deltas.
func (p *Preferences) PixelsPerDay() float64 {
	base := 50.0
	switch p.Scale {
	case domain.ScaleWeek:
		base = 20.0
	case domain.ScaleMonth:
		base = 8.0
	case domain.ScaleQuarter:
		base = 3.0
	}
	zoom := p.ZoomLevel
	if zoom <= 0 {
		zoom = 1.0
	}
	return base * zoom
}

// ZoomIn raises the zoom level by one step, clamped.
func (p *Preferences) ZoomIn() { p.ZoomLevel = clampZoom(p.ZoomLevel + ZoomStep) }

// ZoomOut lowers the zoom level by one step, clamped.
func (p *Preferences) ZoomOut() { p.ZoomLevel = clampZoom(p.ZoomLevel - ZoomStep) }

// ResetZoom restores the default zoom level.
func (p *Preferences) ResetZoom() { p.ZoomLevel = 1.0 }

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

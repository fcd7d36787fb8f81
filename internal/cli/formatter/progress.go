package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored by completion: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	var style lipgloss.Style
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	default:
		style = StyleGreen
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

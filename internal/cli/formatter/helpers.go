package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// SpanLabel formats an item or group span like "Mar 1 → Mar 5". Missing
// bounds render as dimmed dashes.
func SpanLabel(start, end *time.Time) string {
	if start == nil && end == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%s %s %s", datePart(start), Dim("→"), datePart(end))
}

func datePart(t *time.Time) string {
	if t == nil {
		return Dim("?")
	}
	return StyleFg.Render(t.Format("Jan 2"))
}

// FormatMinutes converts raw minutes into a compact duration such as
// "3d 4h" or "45m". Days are 24-hour days, matching item durations.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	d := min / (24 * 60)
	h := (min % (24 * 60)) / 60
	m := min % 60
	switch {
	case d > 0 && h > 0:
		return fmt.Sprintf("%dd %dh", d, h)
	case d > 0:
		return fmt.Sprintf("%dd", d)
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatVariance renders a signed schedule variance with urgency
// coloring, or a dimmed dash when no baseline exists.
func FormatVariance(varianceMinutes *int) string {
	if varianceMinutes == nil {
		return Dim("--")
	}
	v := *varianceMinutes
	text := FormatMinutes(v)
	if v > 0 {
		text = "+" + text
	} else if v < 0 {
		text = "-" + FormatMinutes(-v)
	} else {
		text = "±0"
	}
	return VarianceStyle(v).Render(text)
}

// FormatPercent renders a completion fraction as "42%", dimmed dash when unset.
func FormatPercent(pct *float64) string {
	if pct == nil {
		return Dim("--")
	}
	return StyleFg.Render(fmt.Sprintf("%.0f%%", *pct*100))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

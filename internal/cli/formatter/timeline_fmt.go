package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rowanveldt/chronolane/internal/engine"
)

const rowProgressBarWidth = 10

// FormatTimeline formats derived timeline data into a styled CLI
// dashboard: the flattened row model, the critical path, per-resource
// workload, and any computation faults.
func FormatTimeline(projectName string, d engine.DerivedData) string {
	var b strings.Builder

	headers := []string{"ROW", "SPAN", "DURATION", "PROGRESS"}
	rows := make([][]string, 0, len(d.Rows))
	for _, r := range d.Rows {
		rows = append(rows, []string{
			rowLabel(r),
			SpanLabel(r.Start, r.End),
			StyleFg.Render(FormatMinutes(r.DurationMinutes)),
			progressCell(r),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if root, ok := d.Rollups[engine.RootRollupID]; ok && root.DurationMinutes > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s", Dim("Total:"), Bold(FormatMinutes(root.DurationMinutes))))
		if root.PercentComplete != nil {
			b.WriteString("  " + RenderProgress(*root.PercentComplete, rowProgressBarWidth))
		}
		b.WriteString("\n")
	}

	if len(d.CriticalPath) > 0 {
		b.WriteString("\n" + Header("Critical Path") + "\n")
		b.WriteString(formatCriticalPath(d))
	}

	if len(d.WorkloadByResource) > 0 {
		b.WriteString("\n" + Header("Workload") + "\n")
		b.WriteString(FormatWorkload(d.WorkloadByResource))
	}

	for _, f := range d.Faults {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("  WARNING: %s", f)))
	}
	if len(d.Faults) > 0 {
		b.WriteString("\n")
	}

	return RenderBox(projectName, b.String())
}

func rowLabel(r engine.Row) string {
	indent := strings.Repeat("  ", r.Depth)
	switch r.Kind {
	case engine.RowGroup:
		return indent + Bold(r.Label)
	case engine.RowMilestone:
		return indent + StylePurple.Render("◆ "+r.Label)
	default:
		return indent + StyleFg.Render(r.Label)
	}
}

func progressCell(r engine.Row) string {
	if r.PercentComplete == nil {
		return Dim("--")
	}
	return RenderProgress(*r.PercentComplete, rowProgressBarWidth)
}

func formatCriticalPath(d engine.DerivedData) string {
	labels := make(map[string]string, len(d.Rows))
	for _, r := range d.Rows {
		labels[r.ID] = r.Label
	}

	parts := make([]string, 0, len(d.CriticalPath))
	for _, id := range d.CriticalPath {
		label := labels[id]
		if label == "" {
			label = id
		}
		parts = append(parts, StyleRed.Render(label))
	}
	return "  " + strings.Join(parts, Dim(" → ")) + "\n"
}

// FormatWorkload renders per-resource allocation minutes, busiest first.
func FormatWorkload(workload map[string]int) string {
	type entry struct {
		resource string
		minutes  int
	}
	entries := make([]entry, 0, len(workload))
	for res, min := range workload {
		entries = append(entries, entry{res, min})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].minutes != entries[j].minutes {
			return entries[i].minutes > entries[j].minutes
		}
		return entries[i].resource < entries[j].resource
	})

	var b strings.Builder
	for _, e := range entries {
		name := e.resource
		if name == engine.UnassignedBucket {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("(unassigned)"), StyleFg.Render(FormatMinutes(e.minutes))))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleBlue.Render(name), StyleFg.Render(FormatMinutes(e.minutes))))
	}
	return b.String()
}

// FormatVarianceReport renders a baseline-vs-current table for every
// item carrying a baseline.
func FormatVarianceReport(d engine.DerivedData) string {
	ids := make([]string, 0, len(d.Schedules))
	for id, s := range d.Schedules {
		if s.VarianceMinutes != nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return Dim("No baselines saved.") + "\n"
	}
	sort.Strings(ids)

	labels := make(map[string]string, len(d.Rows))
	for _, r := range d.Rows {
		labels[r.ID] = r.Label
	}

	headers := []string{"ITEM", "BASELINE", "CURRENT", "VARIANCE", "RISK"}
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		s := d.Schedules[id]
		label := labels[id]
		if label == "" {
			label = id
		}
		rows = append(rows, []string{
			StyleFg.Render(label),
			SpanLabel(s.BaselineStart, s.BaselineEnd),
			SpanLabel(s.Start, s.End),
			FormatVariance(s.VarianceMinutes),
			RiskIndicator(d.RiskByItem[id]),
		})
	}
	return RenderTable(headers, rows)
}

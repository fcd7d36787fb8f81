package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rowanveldt/chronolane/internal/cli/formatter"
	"github.com/rowanveldt/chronolane/internal/engine"
	"github.com/rowanveldt/chronolane/internal/timeline"
)

// timelineKeyMap declares the bindings shown in the help line. Most of
// them are forwarded to the controller's keyboard dispatcher; only
// quit, save and new are handled by the model itself.
type timelineKeyMap struct {
	Quit   key.Binding
	Save   key.Binding
	New    key.Binding
	Delete key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Nudge  key.Binding
	Move   key.Binding
	Zoom   key.Binding
}

func defaultTimelineKeyMap() timelineKeyMap {
	return timelineKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new item")),
		Delete: key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "delete")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Nudge:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "nudge")),
		Move:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Zoom:   key.NewBinding(key.WithKeys("+", "-", "="), key.WithHelp("+/-", "zoom")),
	}
}

type saveDoneMsg struct{ err error }

// timelineModel is the bubbletea model for the interactive timeline. It
// renders the controller's live snapshot through the derived-data
// engine on every frame; there is no cached view state to invalidate.
type timelineModel struct {
	app       *App
	ctrl      *timeline.Controller
	projectID string

	keys     timelineKeyMap
	vp       viewport.Model
	width    int
	height   int
	ready    bool
	saving   bool
	status   string
	quitting bool
}

func newTimelineModel(app *App, ctrl *timeline.Controller, projectID string) timelineModel {
	return timelineModel{
		app:       app,
		ctrl:      ctrl,
		projectID: projectID,
		keys:      defaultTimelineKeyMap(),
	}
}

func (m timelineModel) Init() tea.Cmd { return nil }

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
		m.vp.SetContent(m.renderRows())
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("save failed: " + msg.err.Error())
		} else {
			m.status = formatter.StyleGreen.Render("saved")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m timelineModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.status = formatter.Dim("saving...")
		return m, m.saveCmd()

	case key.Matches(msg, m.keys.New):
		m.ctrl.BeginCreate("", startOfVisibleRange(m.ctrl))
		m.ctrl.CompleteGesture()
		m.status = ""
		m.vp.SetContent(m.renderRows())
		return m, nil
	}

	m.ctrl.HandleKey(keyEventFrom(msg))
	m.status = ""
	m.vp.SetContent(m.renderRows())
	return m, nil
}

func (m timelineModel) saveCmd() tea.Cmd {
	snap := m.ctrl.Store().Snapshot()
	return func() tea.Msg {
		err := m.app.Timeline.Save(context.Background(), m.projectID, snap)
		return saveDoneMsg{err: err}
	}
}

func (m timelineModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return formatter.Dim("loading timeline...")
	}
	return m.vp.View() + "\n" + m.statusBar()
}

func (m timelineModel) renderRows() string {
	derived := engine.Compute(m.ctrl.Store().Snapshot())
	selected := make(map[string]bool)
	for _, id := range m.ctrl.Selection() {
		selected[id] = true
	}

	var b strings.Builder
	for _, r := range derived.Rows {
		marker := "  "
		if selected[r.ID] {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		indent := strings.Repeat("  ", r.Depth)

		label := r.Label
		switch r.Kind {
		case engine.RowGroup:
			label = formatter.Bold(label)
		case engine.RowMilestone:
			label = formatter.StylePurple.Render("◆ " + label)
		default:
			label = formatter.StyleFg.Render(label)
		}

		b.WriteString(fmt.Sprintf("%s%s%s  %s  %s\n",
			marker, indent, label,
			formatter.SpanLabel(r.Start, r.End),
			formatter.FormatPercent(r.PercentComplete)))
	}

	if len(derived.CriticalPath) > 0 {
		b.WriteString("\n" + formatter.Dim("critical path: ") +
			formatter.StyleRed.Render(strings.Join(derived.CriticalPath, " → ")) + "\n")
	}
	for _, f := range derived.Faults {
		b.WriteString(formatter.StyleYellow.Render("WARNING: "+f) + "\n")
	}
	return b.String()
}

func (m timelineModel) statusBar() string {
	prefs := m.ctrl.Prefs()
	parts := []string{
		formatter.Dim(fmt.Sprintf("zoom %.1fx", prefs.ZoomLevel)),
		formatter.Dim("snap " + string(prefs.SnapMode)),
	}
	if n := len(m.ctrl.Selection()); n > 0 {
		parts = append(parts, formatter.StyleBlue.Render(fmt.Sprintf("%d selected", n)))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, formatter.Dim("q quit · s save · n new · ctrl+z undo"))
	return strings.Join(parts, formatter.Dim("  │  "))
}

// keyEventFrom normalizes a bubbletea key message into the controller's
// keyboard event shape. Ctrl maps to Meta.
func keyEventFrom(msg tea.KeyMsg) timeline.KeyEvent {
	var ev timeline.KeyEvent
	parts := strings.Split(msg.String(), "+")
	for _, p := range parts {
		switch p {
		case "ctrl":
			ev.Meta = true
		case "shift":
			ev.Shift = true
		case "alt":
			ev.Alt = true
		default:
			ev.Key = p
		}
	}
	return ev
}

// startOfVisibleRange anchors a keyboard-created item at the timeline's
// earliest date, or today when the timeline is empty.
func startOfVisibleRange(ctrl *timeline.Controller) time.Time {
	derived := engine.Compute(ctrl.Store().Snapshot())
	if derived.DateRange.Start != nil {
		return *derived.DateRange.Start
	}
	return time.Now().UTC()
}

package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskline/internal/timeline"
	"github.com/sandeepkv93/taskline/internal/views"
)

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.onPress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.onMotion(msg.X)
	case tea.MouseActionRelease:
		m.onRelease()
	}
	return m
}

// onPress starts a cursor drag on the axis rows, or on a task row selects
// the task and arms a move on the bar's left handle or a resize on its right
// handle. A one-cell bar is both handles at once; its resize handle is the
// cell just after it.
func (m *Model) onPress(x, y int) {
	if y == views.AxisRow || y == views.AxisRow-1 {
		c := m.cursor()
		c.StartDrag()
		c.UpdateFromPointerX(views.PointerX(x), m.trackRect())
		return
	}
	idx := y - views.FirstTaskRow
	rows, _ := m.rows()
	if idx < 0 || idx >= len(rows) {
		return
	}
	t := rows[idx]
	m.SelectedTaskID = t.ID
	bar, ok := timeline.Position(t, m.window())
	if !ok {
		return
	}
	col := x - m.layout.TrackLeft()
	first, last := m.layout.BarCells(bar.Start, bar.Width)
	px := views.PointerX(x)
	switch {
	case col == first:
		if m.Drag.BeginMove(t, px, bar) {
			m.Status = StatusBar{Text: fmt.Sprintf("moving %s", taskLabel(t))}
		}
	case col == last, first == last && col == last+1:
		if m.Drag.BeginResize(t, px, bar) {
			m.Status = StatusBar{Text: fmt.Sprintf("resizing %s", taskLabel(t))}
		}
	}
}

func (m *Model) onMotion(x int) {
	if c := m.cursor(); c.Dragging() {
		c.UpdateFromPointerX(views.PointerX(x), m.trackRect())
		return
	}
	id, _, ok := m.Drag.Active()
	if !ok {
		return
	}
	t, ok := m.Planner.Task(id)
	if !ok {
		m.Drag.End(id)
		return
	}
	if mut, ok := m.Drag.Drag(t, views.PointerX(x), m.trackRect(), m.window()); ok {
		m.applyMutation(mut)
	}
}

// onRelease ends every gesture wherever the pointer is.
func (m *Model) onRelease() {
	for _, c := range m.Cursors {
		c.EndDrag()
	}
	for _, id := range m.Drag.ReleaseAll() {
		if t, ok := m.Planner.Task(id); ok {
			m.Status = StatusBar{Text: fmt.Sprintf("%s: %s, %s", taskLabel(t), startLabel(t.StartDate), formatUnits(m.Mode, t.Duration))}
		}
	}
}

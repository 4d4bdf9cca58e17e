package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/timeline"
)

const progressStep = 10

// handleTaskKey edits the selected task and the board's sort and
// auto-progress settings.
func (m Model) handleTaskKey(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "+", "=":
		m.adjustProgress(progressStep)
	case "-", "_":
		m.adjustProgress(-progressStep)
	case ">", ".":
		m.adjustDuration(1)
	case "<", ",":
		m.adjustDuration(-1)
	case "L":
		m.shiftStart(1)
	case "H":
		m.shiftStart(-1)
	case " ":
		m.toggleComplete(m.SelectedTaskID)
	case "enter":
		if _, ok := m.selectedTask(); ok {
			m.Menu = MenuState{Open: true, TaskID: m.SelectedTaskID}
		}
	case "a":
		m.Auto.Enabled = !m.Auto.Enabled
		m.Status = StatusBar{Text: "auto-progress " + onOff(m.Auto.Enabled)}
	case "s":
		m.Sort = m.Sort.Choose(nextSortField(m.Sort.Field))
		m.Status = StatusBar{Text: fmt.Sprintf("sort: %s %s", m.Sort.Field, m.Sort.Order)}
	case "S":
		m.Sort.Order = m.Sort.Order.Toggle()
		m.Status = StatusBar{Text: fmt.Sprintf("sort: %s %s", m.Sort.Field, m.Sort.Order)}
	case "esc":
		m.cancelDrag()
	default:
		return m, false
	}
	return m, true
}

// adjustProgress is a manual edit, so it also pins the task out of
// auto-progress.
func (m *Model) adjustProgress(delta int) {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	m.setManualProgress(t.ID, t.Progress+delta)
}

func (m *Model) setManualProgress(id string, progress int) {
	m.Planner.SetManuallyAdjusted(id)
	m.Planner.UpdateProgress(id, progress)
	if t, ok := m.Planner.Task(id); ok {
		m.Status = StatusBar{Text: fmt.Sprintf("%s progress %d%%", taskLabel(t), t.Progress)}
	}
	m.reportSaveError()
}

func (m *Model) adjustDuration(steps int) {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	d := t.Duration + time.Duration(steps)*model.LimitsFor(m.Mode).Step
	d = model.ClampDuration(m.Mode, min(d, m.window().Length()))
	m.Planner.UpdateDuration(t.ID, d)
	m.Status = StatusBar{Text: fmt.Sprintf("%s duration %s", taskLabel(t), formatUnits(m.Mode, d))}
	m.reportSaveError()
}

// shiftStart moves the selected task by one step. An unscheduled task is
// placed at the cursor instead.
func (m *Model) shiftStart(steps int) {
	t, ok := m.selectedTask()
	if !ok {
		return
	}
	step := model.LimitsFor(m.Mode).Step
	var start time.Time
	if t.StartDate == nil {
		start = m.window().TimeAt(m.cursor().Percent()).Truncate(time.Minute)
	} else {
		start = t.StartDate.Add(time.Duration(steps) * step)
	}
	m.Planner.UpdateStartTime(t.ID, start)
	m.Status = StatusBar{Text: fmt.Sprintf("%s starts %s", taskLabel(t), startLabel(&start))}
	m.reportSaveError()
}

func (m *Model) toggleComplete(id string) {
	if _, ok := m.Planner.Task(id); !ok {
		return
	}
	m.Planner.ToggleComplete(id)
	if t, ok := m.Planner.Task(id); ok {
		state := "reopened"
		if t.Completed {
			state = "completed"
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%s %s", taskLabel(t), state)}
	}
	m.reportSaveError()
}

func (m *Model) deleteTask(id string) {
	t, ok := m.Planner.Task(id)
	if !ok {
		return
	}
	m.Drag.End(id)
	m.Planner.DeleteTask(id)
	if m.Menu.TaskID == id {
		m.Menu = MenuState{}
	}
	m.moveSelectionAfterDelete()
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", taskLabel(t))}
	m.reportSaveError()
}

func (m *Model) moveSelectionAfterDelete() {
	if _, ok := m.selectedTask(); !ok {
		m.SelectedTaskID = ""
	}
	m.selectFirst()
}

// cancelDrag aborts the active gesture and restores what it was editing.
func (m *Model) cancelDrag() {
	id, _, ok := m.Drag.Active()
	if !ok {
		return
	}
	mut, ok := m.Drag.Cancel(id)
	if !ok {
		return
	}
	m.applyMutation(mut)
	m.Status = StatusBar{Text: "drag cancelled"}
}

func (m *Model) applyMutation(mut timeline.Mutation) {
	switch mut.Mode {
	case timeline.DragMoving:
		if !mut.Start.IsZero() {
			m.Planner.UpdateStartTime(mut.TaskID, mut.Start)
		}
	case timeline.DragResizing:
		m.Planner.UpdateDuration(mut.TaskID, mut.Duration)
	}
	m.reportSaveError()
}

// handleMenuKey runs the actions of the open task menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) Model {
	id := m.Menu.TaskID
	key := msg.String()
	switch {
	case key == "esc" || key == "enter":
		m.Menu = MenuState{}
	case key == "c":
		m.toggleComplete(id)
		m.Menu = MenuState{}
	case key == "x":
		m.deleteTask(id)
		m.Menu = MenuState{}
	case key == "f":
		m.setManualProgress(id, 100)
		m.Menu = MenuState{}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		m.setManualProgress(id, int(key[0]-'0')*progressStep)
		m.Menu = MenuState{}
	}
	return m
}

package update

import (
	"fmt"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/timeline"
	"github.com/sandeepkv93/taskline/internal/views"
)

// rows is the task list drawn on the board, one task per screen row: tasks
// starting inside the window in sort order, followed by unscheduled tasks.
// The second result counts scheduled tasks outside the window.
func (m Model) rows() ([]model.Task, int) {
	w := m.window()
	sorted := m.Planner.Sorted(m.Sort.Field, m.Sort.Order)
	in := make([]model.Task, 0, len(sorted))
	var unscheduled []model.Task
	hidden := 0
	for _, t := range sorted {
		switch {
		case t.StartDate == nil:
			unscheduled = append(unscheduled, t)
		case w.Contains(*t.StartDate):
			in = append(in, t)
		default:
			hidden++
		}
	}
	return append(in, unscheduled...), hidden
}

func (m Model) rowIndex(id string) int {
	rows, _ := m.rows()
	for i, t := range rows {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m Model) selectedTask() (model.Task, bool) {
	if m.SelectedTaskID == "" {
		return model.Task{}, false
	}
	return m.Planner.Task(m.SelectedTaskID)
}

// selectFirst keeps the selection on a drawn row, falling back to the first.
func (m *Model) selectFirst() {
	rows, _ := m.rows()
	if len(rows) == 0 {
		m.SelectedTaskID = ""
		return
	}
	if m.rowIndex(m.SelectedTaskID) < 0 {
		m.SelectedTaskID = rows[0].ID
	}
}

func (m *Model) moveSelection(delta int) {
	rows, _ := m.rows()
	if len(rows) == 0 {
		return
	}
	i := m.rowIndex(m.SelectedTaskID) + delta
	i = max(0, min(i, len(rows)-1))
	m.SelectedTaskID = rows[i].ID
}

// applyAutoProgress writes cursor-derived progress for every task that has
// not been edited by hand.
func (m *Model) applyAutoProgress() {
	updates := m.Auto.Recompute(m.Planner.Tasks(), m.cursor().Percent(), m.window(), m.Planner.IsManuallyAdjusted)
	if len(updates) == 0 {
		return
	}
	m.Planner.ApplyProgress(updates)
	m.reportSaveError()
}

func (m *Model) reportSaveError() {
	if err := m.Planner.LastSaveError(); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
	}
}

func (m Model) timelineData() views.TimelineData {
	w := m.window()
	cur := m.cursor()
	rows, hidden := m.rows()
	activeID, dragMode, dragging := m.Drag.Active()

	data := views.TimelineData{
		Layout:         m.layout,
		WindowLabel:    w.Label(),
		ModeLabel:      string(m.Mode),
		Cursor:         cur.Percent(),
		CursorLabel:    cursorLabel(w, cur.Percent()),
		CursorDragging: cur.Dragging(),
	}
	for _, tick := range w.Ticks() {
		data.Ticks = append(data.Ticks, views.TickData{Percent: tick.Percent, Label: tick.Label})
	}
	for _, t := range rows {
		status := timeline.DeriveStatus(t, cur.Percent(), w)
		row := views.RowData{
			ID:         t.ID,
			Title:      t.Title,
			Status:     status.String(),
			StatusTone: statusTone(t, status, cur.Percent(), w),
			Selected:   t.ID == m.SelectedTaskID,
			Active:     timeline.Active(t, cur.Percent(), w),
			Completed:  t.Completed,
		}
		if bar, ok := timeline.Position(t, w); ok {
			row.Bar = views.BarData{
				Visible:  true,
				Start:    bar.Start,
				Width:    bar.Width,
				Progress: t.Progress,
				Color:    model.BandFor(t.Importance).Hex(),
				Dragging: dragging && activeID == t.ID && dragMode != timeline.DragIdle,
			}
		}
		data.Rows = append(data.Rows, row)
	}
	if len(rows) == 0 {
		switch {
		case hidden > 0:
			data.EmptyHint = fmt.Sprintf("no tasks in this window (%d elsewhere, h/l to navigate)", hidden)
		default:
			data.EmptyHint = "no tasks yet: press n to add one or /demo for sample data"
		}
	}
	return data
}

func (m Model) detailData() views.DetailData {
	_, hidden := m.rows()
	t, ok := m.selectedTask()
	if !ok {
		return views.DetailData{Hidden: hidden}
	}
	w := m.window()
	cur := m.cursor().Percent()
	return views.DetailData{
		ID:           t.ID,
		Title:        t.Title,
		Start:        startLabel(t.StartDate),
		Duration:     formatUnits(m.Mode, t.Duration),
		Importance:   t.Importance,
		Band:         string(model.BandFor(t.Importance)),
		Status:       timeline.DeriveStatus(t, cur, w).String(),
		ProgressPct:  t.Progress,
		ProgressView: m.progressBar.ViewAs(float64(t.Progress) / 100),
		Manual:       m.Planner.IsManuallyAdjusted(t.ID),
		Completed:    t.Completed,
		MenuOpen:     m.Menu.Open && m.Menu.TaskID == t.ID,
		Hidden:       hidden,
	}
}

func statusTone(t model.Task, s timeline.Status, cursor float64, w timeline.Window) views.Tone {
	switch s.Kind {
	case timeline.StatusCompleted, timeline.StatusDoneAgo:
		return views.ToneDone
	case timeline.StatusInProgress:
		return views.ToneActive
	case timeline.StatusOverdue:
		if timeline.DeriveOverdueLevel(t, cursor, w) == timeline.OverdueStalled {
			return views.ToneAlert
		}
		return views.ToneWarn
	default:
		return views.ToneNeutral
	}
}

func cursorLabel(w timeline.Window, pct float64) string {
	at := w.TimeAt(pct)
	switch w.Mode {
	case model.ViewMonthly:
		return at.Format("Jan 2 15:04")
	case model.ViewWeekly:
		return at.Format("Mon 15:04")
	default:
		return at.Format("15:04")
	}
}

package timeline

import (
	"math"

	"github.com/sandeepkv93/taskline/internal/model"
)

// ProgressUpdate is a progress value auto-progress wants written to a task.
type ProgressUpdate struct {
	TaskID   string
	Progress int
}

// AutoProgress derives progress from where the cursor sits in a task's span.
type AutoProgress struct {
	Enabled bool
}

// ExpectedProgress is 0 before the span, 100 after it and the rounded
// fraction of the span covered by the cursor in between.
func ExpectedProgress(t model.Task, cursor float64, w Window) (int, bool) {
	start, end, ok := Span(t, w)
	if !ok {
		return 0, false
	}
	switch {
	case cursor >= end:
		return 100, true
	case cursor <= start:
		return 0, true
	default:
		return int(math.Round((cursor - start) / (end - start) * 100)), true
	}
}

// Visible filters tasks to those whose start falls inside the window.
func Visible(tasks []model.Task, w Window) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.StartDate != nil && w.Contains(*t.StartDate) {
			out = append(out, t)
		}
	}
	return out
}

// Recompute returns the progress changes for visible tasks that are not
// manually adjusted. Nothing is returned while disabled, and tasks whose
// progress already matches are skipped.
func (a AutoProgress) Recompute(tasks []model.Task, cursor float64, w Window, manual func(id string) bool) []ProgressUpdate {
	if !a.Enabled {
		return nil
	}
	var out []ProgressUpdate
	for _, t := range Visible(tasks, w) {
		if manual != nil && manual(t.ID) {
			continue
		}
		want, ok := ExpectedProgress(t, cursor, w)
		if !ok || want == t.Progress {
			continue
		}
		out = append(out, ProgressUpdate{TaskID: t.ID, Progress: want})
	}
	return out
}

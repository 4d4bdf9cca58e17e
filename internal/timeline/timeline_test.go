package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

func at(y int, m time.Month, d, h, min int) *time.Time {
	t := time.Date(y, m, d, h, min, 0, 0, time.UTC)
	return &t
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func scheduled(start *time.Time, d time.Duration) model.Task {
	return model.Task{ID: "t1", Title: "Task", Importance: 5, StartDate: start, Duration: d, OriginalViewMode: model.ViewDaily}
}

func dayWindow() Window {
	return NewWindow(model.ViewDaily, time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC), 4)
}

func TestNewWindowBounds(t *testing.T) {
	day := dayWindow()
	if !day.Start.Equal(*at(2026, 2, 9, 4, 0)) || !day.End.Equal(*at(2026, 2, 10, 4, 0)) {
		t.Fatalf("unexpected day window %s - %s", day.Start, day.End)
	}

	// 2026-02-15 is a Sunday; the week still starts on Monday the 9th.
	week := NewWindow(model.ViewWeekly, *at(2026, 2, 15, 23, 0), 4)
	if !week.Start.Equal(*at(2026, 2, 9, 0, 0)) || week.Length() != 7*24*time.Hour {
		t.Fatalf("unexpected week window %s - %s", week.Start, week.End)
	}

	month := NewWindow(model.ViewMonthly, *at(2026, 4, 17, 8, 0), 4)
	if month.Days() != 30 || month.Unit != UnitDay || !month.Start.Equal(*at(2026, 4, 1, 0, 0)) {
		t.Fatalf("unexpected month window %s days=%d", month.Start, month.Days())
	}
	if !near(month.HoursPerPercent(), 7.2) {
		t.Fatalf("month hours per percent = %v, want 7.2", month.HoursPerPercent())
	}
}

func TestWindowContainsIsHalfOpen(t *testing.T) {
	w := dayWindow()
	if !w.Contains(w.Start) {
		t.Fatal("window must contain its start")
	}
	if w.Contains(w.End) {
		t.Fatal("window must not contain its end")
	}
}

func TestWindowShift(t *testing.T) {
	next := dayWindow().Shift(1)
	if !next.Start.Equal(*at(2026, 2, 10, 4, 0)) {
		t.Fatalf("unexpected shifted day %s", next.Start)
	}
	prev := NewWindow(model.ViewMonthly, *at(2026, 3, 31, 0, 0), 4).Shift(-1)
	if prev.Start.Month() != time.February || prev.Days() != 28 {
		t.Fatalf("unexpected shifted month %s days=%d", prev.Start, prev.Days())
	}
}

func TestWindowLabel(t *testing.T) {
	if got := dayWindow().Label(); got != "Monday, February 9th" {
		t.Fatalf("day label = %q", got)
	}
	week := NewWindow(model.ViewWeekly, *at(2026, 3, 31, 0, 0), 4)
	if got := week.Label(); got != "March 30 - April 5, 2026" {
		t.Fatalf("week label = %q", got)
	}
}

func TestPositionDaily(t *testing.T) {
	bar, ok := Position(scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour), dayWindow())
	if !ok {
		t.Fatal("expected task to be visible")
	}
	if !near(bar.Start, 20.83) || !near(bar.Width, 8.33) {
		t.Fatalf("bar = %+v, want start 20.83 width 8.33", bar)
	}
}

func TestPositionDailySubtaskFloor(t *testing.T) {
	bar, _ := Position(scheduled(at(2026, 2, 9, 9, 0), 20*time.Minute), dayWindow())
	if !near(bar.Width, 1.5/24*100) {
		t.Fatalf("subtask width = %v, want %v", bar.Width, 1.5/24*100)
	}
	bar, _ = Position(scheduled(at(2026, 2, 9, 9, 0), 45*time.Minute), dayWindow())
	if !near(bar.Width, 1.0/24*100) {
		t.Fatalf("short task width = %v, want %v", bar.Width, 1.0/24*100)
	}
}

func TestPositionOutsideWindow(t *testing.T) {
	if _, ok := Position(scheduled(at(2026, 2, 9, 3, 59), time.Hour), dayWindow()); ok {
		t.Fatal("task before the day start must be hidden")
	}
	if _, ok := Position(scheduled(nil, time.Hour), dayWindow()); ok {
		t.Fatal("unscheduled task must be hidden")
	}
}

func TestPositionWeekly(t *testing.T) {
	w := NewWindow(model.ViewWeekly, *at(2026, 2, 11, 0, 0), 4)
	bar, ok := Position(scheduled(at(2026, 2, 11, 14, 0), 3*time.Hour), w)
	if !ok {
		t.Fatal("expected task to be visible")
	}
	if !near(bar.Start, 36.90) {
		t.Fatalf("week start = %v, want 36.90", bar.Start)
	}
	bar, _ = Position(scheduled(at(2026, 2, 11, 14, 0), 50*time.Hour), w)
	if !near(bar.Width, 100.0/7) {
		t.Fatalf("week width must cap at one day, got %v", bar.Width)
	}
}

func TestPositionMonthly(t *testing.T) {
	w := NewWindow(model.ViewMonthly, *at(2026, 4, 1, 0, 0), 4)
	bar, ok := Position(scheduled(at(2026, 4, 10, 9, 0), 5*24*time.Hour), w)
	if !ok {
		t.Fatal("expected task to be visible")
	}
	if !near(bar.Start, 30) || !near(bar.Width, 16.67) {
		t.Fatalf("month bar = %+v, want start 30 width 16.67", bar)
	}
}

func TestStartFromPercentInvertsPosition(t *testing.T) {
	day := dayWindow()
	start := at(2026, 2, 9, 9, 0)
	bar, _ := Position(scheduled(start, 2*time.Hour), day)
	if got := StartFromPercent(bar.Start, day, start); !got.Equal(*start) {
		t.Fatalf("day inverse = %s, want %s", got, start)
	}

	week := NewWindow(model.ViewWeekly, *start, 4)
	wed := at(2026, 2, 11, 14, 0)
	bar, _ = Position(scheduled(wed, 2*time.Hour), week)
	if got := StartFromPercent(bar.Start, week, wed); !got.Equal(*wed) {
		t.Fatalf("week inverse = %s, want %s", got, wed)
	}

	month := NewWindow(model.ViewMonthly, *at(2026, 4, 1, 0, 0), 4)
	current := at(2026, 4, 3, 13, 30)
	if got := StartFromPercent(30, month, current); !got.Equal(*at(2026, 4, 10, 13, 30)) {
		t.Fatalf("month inverse = %s, want April 10 13:30", got)
	}
}

func TestResizeDuration(t *testing.T) {
	if got := ResizeDuration(100.0/12, dayWindow()); got != 2*time.Hour {
		t.Fatalf("day resize = %s, want 2h", got)
	}
	if got := ResizeDuration(0.1, dayWindow()); got != 30*time.Minute {
		t.Fatalf("day resize minimum = %s, want 30m", got)
	}
	month := NewWindow(model.ViewMonthly, *at(2026, 4, 1, 0, 0), 4)
	if got := ResizeDuration(100.0/6, month); got != 5*24*time.Hour {
		t.Fatalf("month resize = %s, want 120h", got)
	}
	if got := ResizeDuration(250, month); got != 30*24*time.Hour {
		t.Fatalf("month resize maximum = %s, want 720h", got)
	}
}

func TestDeriveStatus(t *testing.T) {
	w := dayWindow()
	task := scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour)
	cases := []struct {
		name     string
		progress int
		cursor   float64
		want     string
	}{
		{"upcoming", 0, 10, "in 3h"},
		{"in progress", 0, 25, "2h left"},
		{"half done", 50, 25, "1h left"},
		{"overdue", 40, 50, "overdue 5h"},
		{"completed", 100, 25, "completed"},
		{"done ago", 100, 50, "done 5h ago"},
	}
	for _, tc := range cases {
		task.Progress = tc.progress
		if got := DeriveStatus(task, tc.cursor, w).String(); got != tc.want {
			t.Fatalf("%s: status = %q, want %q", tc.name, got, tc.want)
		}
	}
	if got := DeriveStatus(scheduled(nil, time.Hour), 10, w).String(); got != "not scheduled" {
		t.Fatalf("unscheduled status = %q", got)
	}
}

func TestStatusBoundaries(t *testing.T) {
	w := dayWindow()
	task := scheduled(at(2026, 2, 9, 10, 0), 6*time.Hour)
	start, end, _ := Span(task, w)
	if got := DeriveStatus(task, start, w).Kind; got != StatusInProgress {
		t.Fatalf("cursor at start = %s, want in progress", got)
	}
	if got := DeriveStatus(task, end, w).Kind; got != StatusOverdue {
		t.Fatalf("cursor at end = %s, want overdue", got)
	}
	if !Active(task, end, w) || Active(task, end+0.1, w) {
		t.Fatal("active must include the end and nothing after it")
	}
	task.Progress = 100
	if got := DeriveStatus(task, end, w).Kind; got != StatusCompleted {
		t.Fatalf("finished task at end = %s, want completed", got)
	}
}

func TestFormatRemaining(t *testing.T) {
	cases := map[time.Duration]string{
		45 * time.Minute: "45m left",
		90 * time.Minute: "1h 30m left",
		3 * time.Hour:    "3h left",
		26 * time.Hour:   "1d 2h left",
		48 * time.Hour:   "2d left",
	}
	for d, want := range cases {
		if got := formatRemaining(d); got != want {
			t.Fatalf("formatRemaining(%s) = %q, want %q", d, got, want)
		}
	}
}

func TestOverdueLevel(t *testing.T) {
	w := dayWindow()
	task := scheduled(at(2026, 2, 9, 9, 0), time.Hour)
	if got := DeriveOverdueLevel(task, 80, w); got != OverdueStalled {
		t.Fatalf("untouched overdue = %d, want stalled", got)
	}
	task.Progress = 20
	if got := DeriveOverdueLevel(task, 80, w); got != OverduePartial {
		t.Fatalf("started overdue = %d, want partial", got)
	}
	if got := DeriveOverdueLevel(task, 10, w); got != OverdueNone {
		t.Fatalf("upcoming = %d, want none", got)
	}
}

func TestCursorFollowsPointerOnlyWhileDragging(t *testing.T) {
	c := NewCursor()
	track := Rect{Left: 10, Width: 200}
	if _, moved := c.UpdateFromPointerX(110, track); moved || c.Percent() != DefaultCursorPercent {
		t.Fatal("idle cursor must ignore the pointer")
	}
	c.StartDrag()
	if pct, moved := c.UpdateFromPointerX(110, track); !moved || pct != 50 {
		t.Fatalf("cursor = %v, want 50", c.Percent())
	}
	c.UpdateFromPointerX(500, track)
	if c.Percent() != 100 {
		t.Fatalf("cursor = %v, want clamped 100", c.Percent())
	}
	c.EndDrag()
	if c.Dragging() {
		t.Fatal("cursor still dragging after EndDrag")
	}
}

func TestAutoProgressRecompute(t *testing.T) {
	w := dayWindow()
	tasks := []model.Task{
		scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour),
		scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour),
		scheduled(at(2026, 2, 10, 9, 0), 2*time.Hour),
	}
	tasks[1].ID = "manual"
	tasks[2].ID = "tomorrow"
	manual := func(id string) bool { return id == "manual" }

	updates := AutoProgress{Enabled: true}.Recompute(tasks, 25, w, manual)
	if len(updates) != 1 || updates[0].TaskID != "t1" || updates[0].Progress != 50 {
		t.Fatalf("unexpected updates %+v", updates)
	}
	if got := (AutoProgress{}).Recompute(tasks, 25, w, manual); got != nil {
		t.Fatalf("disabled auto-progress returned %+v", got)
	}
	tasks[0].Progress = 50
	if got := (AutoProgress{Enabled: true}).Recompute(tasks, 25, w, manual); len(got) != 0 {
		t.Fatalf("unchanged progress must not be reported: %+v", got)
	}

	// 80% of the day is 23:12, past both 09:00-11:00 spans.
	tasks[1].Progress = 10
	updates = AutoProgress{Enabled: true}.Recompute(tasks, 80, w, manual)
	if len(updates) != 1 || updates[0].TaskID != "t1" || updates[0].Progress != 100 {
		t.Fatalf("unexpected updates past the end %+v", updates)
	}
	for _, u := range updates {
		if u.TaskID == "manual" {
			t.Fatalf("manually adjusted task was recomputed: %+v", u)
		}
	}
}

func TestExpectedProgressZeroSpan(t *testing.T) {
	w := dayWindow()
	task := scheduled(at(2026, 2, 9, 10, 0), 0)
	start, _, _ := Span(task, w)
	if got, _ := ExpectedProgress(task, start-1, w); got != 0 {
		t.Fatalf("before zero span = %d, want 0", got)
	}
	if got, _ := ExpectedProgress(task, start, w); got != 100 {
		t.Fatalf("at zero span = %d, want 100", got)
	}
}

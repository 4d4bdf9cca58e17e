package timeline

import (
	"testing"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

func TestDragResize(t *testing.T) {
	w := dayWindow()
	task := scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour)
	bar, _ := Position(task, w)
	track := Rect{Left: 0, Width: 240}

	c := NewDragController()
	if !c.BeginResize(task, 100, bar) {
		t.Fatal("expected resize to begin")
	}
	if c.BeginMove(task, 100, bar) {
		t.Fatal("second gesture on the same bar must be refused")
	}
	// 4.8 columns of 240 is two percent, or 0.48h on a day.
	mut, ok := c.Drag(task, 104.8, track, w)
	if !ok || mut.Mode != DragResizing || mut.Duration != 150*time.Minute {
		t.Fatalf("unexpected mutation %+v", mut)
	}
	c.End(task.ID)
	if c.Mode(task.ID) != DragIdle {
		t.Fatal("bar still active after End")
	}
	if _, ok := c.Drag(task, 120, track, w); ok {
		t.Fatal("idle bar must not produce mutations")
	}
}

func TestDragResizeWeeklyKeepsMultiDayLength(t *testing.T) {
	w := NewWindow(model.ViewWeekly, *at(2026, 2, 9, 0, 0), 4)
	task := scheduled(at(2026, 2, 10, 9, 0), 48*time.Hour)
	bar, _ := Position(task, w)
	if !near(bar.Width, 100.0/7) {
		t.Fatalf("weekly bar width = %v, want one day column", bar.Width)
	}
	track := Rect{Left: 0, Width: 700}

	c := NewDragController()
	if !c.BeginResize(task, 500, bar) {
		t.Fatal("expected resize to begin")
	}
	mut, ok := c.Drag(task, 501, track, w)
	if !ok || mut.Duration != 48*time.Hour+12*time.Minute {
		t.Fatalf("one column nudge = %+v, want 48h12m", mut)
	}
	mut, _ = c.Drag(task, 500, track, w)
	if mut.Duration != 48*time.Hour {
		t.Fatalf("no movement = %s, want the original 48h", mut.Duration)
	}
}

func TestDragMoveKeepsBarInside(t *testing.T) {
	w := dayWindow()
	task := scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour)
	bar, _ := Position(task, w)
	track := Rect{Left: 0, Width: 100}

	c := NewDragController()
	c.BeginMove(task, 50, bar)
	mut, _ := c.Drag(task, 50+100.0/24, track, w)
	if !mut.Start.Equal(*at(2026, 2, 9, 10, 0)) {
		t.Fatalf("moved start = %s, want 10:00", mut.Start)
	}
	mut, _ = c.Drag(task, 500, track, w)
	if !mut.Start.Equal(*at(2026, 2, 10, 2, 0)) {
		t.Fatalf("moved start = %s, want 02:00 next day", mut.Start)
	}
	mut, _ = c.Drag(task, -500, track, w)
	if !mut.Start.Equal(w.Start) {
		t.Fatalf("moved start = %s, want window start", mut.Start)
	}
}

func TestDragMoveRequiresStart(t *testing.T) {
	c := NewDragController()
	if c.BeginMove(scheduled(nil, time.Hour), 0, Bar{}) {
		t.Fatal("unscheduled task must not be movable")
	}
}

func TestDragReleaseAllAndCancel(t *testing.T) {
	w := dayWindow()
	a := scheduled(at(2026, 2, 9, 9, 0), 2*time.Hour)
	b := scheduled(at(2026, 2, 9, 12, 0), time.Hour)
	b.ID = "t2"
	c := NewDragController()
	barA, _ := Position(a, w)
	barB, _ := Position(b, w)
	c.BeginResize(a, 0, barA)
	c.BeginMove(b, 0, barB)

	restore, ok := c.Cancel(b.ID)
	if !ok || restore.Mode != DragMoving || !restore.Start.Equal(*b.StartDate) {
		t.Fatalf("unexpected restore %+v", restore)
	}
	if ids := c.ReleaseAll(); len(ids) != 1 || ids[0] != a.ID {
		t.Fatalf("released %v, want [%s]", ids, a.ID)
	}
	if _, _, ok := c.Active(); ok {
		t.Fatal("no gesture should remain active")
	}
}

package timeline

import (
	"testing"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
	"pgregory.net/rapid"
)

func TestPropertyDayWidthBounded(t *testing.T) {
	w := dayWindow()
	rapid.Check(t, func(rt *rapid.T) {
		offset := rapid.IntRange(0, 24*60-1).Draw(rt, "offset_min")
		dur := rapid.IntRange(0, 72*60).Draw(rt, "duration_min")
		start := w.Start.Add(time.Duration(offset) * time.Minute)
		bar, ok := Position(scheduled(&start, time.Duration(dur)*time.Minute), w)
		if !ok {
			rt.Fatalf("start %s inside the window was hidden", start)
		}
		if bar.Width < 2 || bar.Width > 100 || bar.Start < 0 || bar.Start > 100 {
			rt.Fatalf("bar %+v out of range", bar)
		}
	})
}

func TestPropertyDayWidthMonotonic(t *testing.T) {
	w := dayWindow()
	start := w.Start.Add(5 * time.Hour)
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(31, 48*60).Draw(rt, "a_min")
		b := rapid.IntRange(a, 48*60).Draw(rt, "b_min")
		barA, _ := Position(scheduled(&start, time.Duration(a)*time.Minute), w)
		barB, _ := Position(scheduled(&start, time.Duration(b)*time.Minute), w)
		if barA.Width > barB.Width {
			rt.Fatalf("width(%dm)=%v > width(%dm)=%v", a, barA.Width, b, barB.Width)
		}
	})
}

func TestPropertyWeekRoundTrip(t *testing.T) {
	w := NewWindow(model.ViewWeekly, *at(2026, 2, 9, 0, 0), 4)
	rapid.Check(t, func(rt *rapid.T) {
		day := rapid.IntRange(0, 6).Draw(rt, "day")
		minute := rapid.IntRange(0, 24*60-1).Draw(rt, "minute")
		start := w.Start.AddDate(0, 0, day).Add(time.Duration(minute) * time.Minute)
		bar, _ := Position(scheduled(&start, time.Hour), w)
		if got := StartFromPercent(bar.Start, w, &start); !got.Equal(start) {
			rt.Fatalf("round trip %s -> %v -> %s", start, bar.Start, got)
		}
	})
}

func TestPropertyDayRoundTrip(t *testing.T) {
	w := dayWindow()
	rapid.Check(t, func(rt *rapid.T) {
		minute := rapid.IntRange(0, 24*60-1).Draw(rt, "minute")
		start := w.Start.Add(time.Duration(minute) * time.Minute)
		bar, _ := Position(scheduled(&start, time.Hour), w)
		if got := StartFromPercent(bar.Start, w, &start); !got.Equal(start) {
			rt.Fatalf("round trip %s -> %v -> %s", start, bar.Start, got)
		}
	})
}

func TestPropertyMonthRoundTrip(t *testing.T) {
	w := NewWindow(model.ViewMonthly, *at(2026, 4, 1, 0, 0), 4)
	rapid.Check(t, func(rt *rapid.T) {
		day := rapid.IntRange(1, 30).Draw(rt, "day")
		units := rapid.IntRange(5, 300).Draw(rt, "tenths_of_day")
		start := time.Date(2026, 4, day, 7, 15, 0, 0, time.UTC)
		dur := model.UnitsToDuration(model.ViewMonthly, float64(units)/10)
		bar, _ := Position(scheduled(&start, dur), w)
		if got := StartFromPercent(bar.Start, w, &start); !got.Equal(start) {
			rt.Fatalf("start round trip %s -> %s", start, got)
		}
		if got := ResizeDuration(bar.Width, w); got != dur {
			rt.Fatalf("duration round trip %s -> %s", dur, got)
		}
	})
}

func TestPropertyCursorStaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := NewCursor()
		c.StartDrag()
		track := Rect{Left: 12, Width: float64(rapid.IntRange(1, 400).Draw(rt, "width"))}
		moves := rapid.IntRange(1, 20).Draw(rt, "moves")
		for i := 0; i < moves; i++ {
			c.UpdateFromPointerX(rapid.Float64Range(-1000, 1000).Draw(rt, "x"), track)
			if c.Percent() < 0 || c.Percent() > 100 {
				rt.Fatalf("cursor escaped to %v", c.Percent())
			}
		}
	})
}

func TestPropertyExpectedProgressBounded(t *testing.T) {
	w := dayWindow()
	rapid.Check(t, func(rt *rapid.T) {
		offset := rapid.IntRange(-6*60, 30*60).Draw(rt, "offset_min")
		dur := rapid.IntRange(0, 12*60).Draw(rt, "duration_min")
		cursor := rapid.Float64Range(0, 100).Draw(rt, "cursor")
		start := w.Start.Add(time.Duration(offset) * time.Minute)
		got, ok := ExpectedProgress(scheduled(&start, time.Duration(dur)*time.Minute), cursor, w)
		if !ok || got < 0 || got > 100 {
			rt.Fatalf("expected progress %d (ok=%v)", got, ok)
		}
	})
}

func TestPropertyStatusIdempotent(t *testing.T) {
	modes := []model.ViewMode{model.ViewDaily, model.ViewWeekly, model.ViewMonthly}
	rapid.Check(t, func(rt *rapid.T) {
		mode := rapid.SampledFrom(modes).Draw(rt, "mode")
		w := NewWindow(mode, *at(2026, 2, 9, 0, 0), 4)
		offset := rapid.IntRange(-2*24*60, 35*24*60).Draw(rt, "offset_min")
		dur := rapid.IntRange(0, 10*24*60).Draw(rt, "duration_min")
		start := w.Start.Add(time.Duration(offset) * time.Minute)
		task := scheduled(&start, time.Duration(dur)*time.Minute)
		task.Progress = rapid.IntRange(0, 100).Draw(rt, "progress")
		if rapid.Bool().Draw(rt, "unscheduled") {
			task.StartDate = nil
		}
		cursor := rapid.Float64Range(0, 100).Draw(rt, "cursor")

		first := DeriveStatus(task, cursor, w)
		second := DeriveStatus(task, cursor, w)
		if first.Kind != second.Kind || first.Amount != second.Amount {
			rt.Fatalf("status changed between calls: %+v then %+v", first, second)
		}
		if first.String() != second.String() {
			rt.Fatalf("status text changed between calls: %q then %q", first.String(), second.String())
		}
	})
}

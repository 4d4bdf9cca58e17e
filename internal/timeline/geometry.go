package timeline

import (
	"math"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

const (
	minBarWidth = 2.0
	maxBarWidth = 100.0

	// snapEpsilon absorbs float error when a percent lands exactly on a
	// day boundary.
	snapEpsilon = 1e-9
)

// Bar is a task's horizontal placement in percent of the window.
type Bar struct {
	Start float64
	Width float64
}

func (b Bar) End() float64 {
	return b.Start + b.Width
}

// Position computes where a task's bar sits in the window. Tasks without a
// start date or starting outside the window are not drawn.
func Position(t model.Task, w Window) (Bar, bool) {
	if t.StartDate == nil || !w.Contains(*t.StartDate) {
		return Bar{}, false
	}
	start := t.StartDate.In(w.Start.Location())
	switch w.Mode {
	case model.ViewWeekly:
		return weekBar(t, start, w), true
	case model.ViewMonthly:
		return monthBar(t, start, w), true
	default:
		return dayBar(t, start, w), true
	}
}

func dayBar(t model.Task, start time.Time, w Window) Bar {
	hours := w.Length().Hours()
	pos := clamp(start.Sub(w.Start).Hours()/hours*100, 0, 100)

	// Subtasks get the wider floor, so width is monotonic in duration only
	// within a size class.
	floorHours := 1.0
	if t.Subtask() {
		floorHours = 1.5
	}
	width := math.Max(floorHours, t.Duration.Hours()) / hours * 100
	return Bar{Start: pos, Width: clamp(width, minBarWidth, maxBarWidth)}
}

func weekBar(t model.Task, start time.Time, w Window) Bar {
	col := 100.0 / 7
	hour := float64(start.Hour()) + float64(start.Minute())/60
	pos := float64(dayIndex(w.Start, start))*col + hour/24*col

	width := math.Min(t.Duration.Hours()/24*col, col)
	return Bar{Start: pos, Width: math.Max(width, 1)}
}

func monthBar(t model.Task, start time.Time, w Window) Bar {
	days := float64(w.Days())
	pos := float64(start.Day()-1) / days * 100
	width := t.Duration.Hours() / 24 / days * 100
	return Bar{Start: pos, Width: clamp(width, 1, maxBarWidth)}
}

// Span is the exact, unclamped placement of a task's start and end in
// percent of the window. Status and automatic progress are measured against
// it rather than against the drawn bar.
func Span(t model.Task, w Window) (start, end float64, ok bool) {
	if t.StartDate == nil {
		return 0, 0, false
	}
	length := float64(w.Length())
	if length <= 0 {
		return 0, 0, false
	}
	start = float64(t.StartDate.Sub(w.Start)) / length * 100
	end = float64(t.End().Sub(w.Start)) / length * 100
	return start, end, true
}

// StartFromPercent maps a bar position back to a start date. Daily windows
// resolve to the minute; weekly windows pick the weekday column and the hour
// within it; monthly windows set the day of month and keep the time of day of
// current when it is set.
func StartFromPercent(pct float64, w Window, current *time.Time) time.Time {
	pct = clamp(pct, 0, 100)
	switch w.Mode {
	case model.ViewWeekly:
		col := 100.0 / 7
		day := int(math.Floor(pct/col + snapEpsilon))
		if day > 6 {
			day = 6
		}
		minutes := math.Round((pct - float64(day)*col) / col * 24 * 60)
		base := w.Start.AddDate(0, 0, day)
		return base.Add(time.Duration(minutes) * time.Minute)
	case model.ViewMonthly:
		days := w.Days()
		day := int(math.Floor(pct/100*float64(days) + snapEpsilon))
		if day > days-1 {
			day = days - 1
		}
		if day < 0 {
			day = 0
		}
		base := w.Start.AddDate(0, 0, day)
		if current != nil {
			c := current.In(w.Start.Location())
			base = time.Date(base.Year(), base.Month(), base.Day(), c.Hour(), c.Minute(), 0, 0, base.Location())
		}
		return base
	default:
		minutes := math.Round(pct / 100 * w.Length().Minutes())
		return w.Start.Add(time.Duration(minutes) * time.Minute)
	}
}

// DurationFromWidth maps a bar width back to a duration without any rounding.
func DurationFromWidth(width float64, w Window) time.Duration {
	var hours float64
	switch w.Mode {
	case model.ViewWeekly:
		hours = width / (100.0 / 7) * 24
	case model.ViewMonthly:
		hours = width / 100 * float64(w.Days()) * 24
	default:
		hours = width / 100 * w.Length().Hours()
	}
	return time.Duration(hours * float64(time.Hour))
}

// widthFromDuration is the exact inverse of DurationFromWidth.
func widthFromDuration(d time.Duration, w Window) float64 {
	hours := d.Hours()
	switch w.Mode {
	case model.ViewWeekly:
		return hours / 24 * (100.0 / 7)
	case model.ViewMonthly:
		return hours / 24 / float64(w.Days()) * 100
	default:
		return hours / w.Length().Hours() * 100
	}
}

// ResizeDuration is DurationFromWidth normalised for a resize gesture: at
// least half a view unit, at most the window length, rounded to a tenth of
// a unit.
func ResizeDuration(width float64, w Window) time.Duration {
	unit := w.Mode.Unit()
	units := DurationFromWidth(width, w).Hours() / unit.Hours()
	maxUnits := w.Length().Hours() / unit.Hours()
	units = math.Round(clamp(units, 0.5, maxUnits)*10) / 10
	return model.UnitsToDuration(w.Mode, units)
}

// dayIndex counts calendar days from the window start to t.
func dayIndex(windowStart, t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, windowStart.Location())
	return int(math.Round(day.Sub(windowStart).Hours() / 24))
}

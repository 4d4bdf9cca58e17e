// Package timeline maps tasks onto day, week and month windows: bar geometry,
// status text relative to a movable cursor, automatic progress and the
// pointer interactions that edit a task's start and duration.
package timeline

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

// DefaultDayStartHour is the hour the daily window opens at.
const DefaultDayStartHour = 4

type Unit string

const (
	UnitHour Unit = "hour"
	UnitDay  Unit = "day"
)

// Window is the interval a view renders: [Start, End).
type Window struct {
	Mode         model.ViewMode
	Start        time.Time
	End          time.Time
	Unit         Unit
	DayStartHour int
}

// NewWindow derives the window of the given mode that contains anchor's date.
// Daily windows start at dayStartHour and last until the same hour the next
// day, weekly windows run Monday 00:00 to the following Monday and monthly
// windows cover the calendar month.
func NewWindow(mode model.ViewMode, anchor time.Time, dayStartHour int) Window {
	if dayStartHour < 0 || dayStartHour > 23 {
		dayStartHour = DefaultDayStartHour
	}
	y, m, d := anchor.Date()
	loc := anchor.Location()
	w := Window{Mode: mode, Unit: UnitHour, DayStartHour: dayStartHour}
	switch mode {
	case model.ViewWeekly:
		offset := int(anchor.Weekday()) - 1
		if offset < 0 {
			offset = 6
		}
		w.Start = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		w.End = w.Start.AddDate(0, 0, 7)
	case model.ViewMonthly:
		w.Unit = UnitDay
		w.Start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		w.End = w.Start.AddDate(0, 1, 0)
	default:
		w.Mode = model.ViewDaily
		w.Start = time.Date(y, m, d, dayStartHour, 0, 0, 0, loc)
		w.End = w.Start.AddDate(0, 0, 1)
	}
	return w
}

func (w Window) Length() time.Duration {
	return w.End.Sub(w.Start)
}

// HoursPerPercent converts one percent of the window into hours: 0.24 for a
// day, 1.68 for a week and daysInMonth*0.24 for a month.
func (w Window) HoursPerPercent() float64 {
	return w.Length().Hours() / 100
}

// Days is the number of calendar days the window spans.
func (w Window) Days() int {
	switch w.Mode {
	case model.ViewMonthly:
		return w.End.AddDate(0, 0, -1).Day()
	case model.ViewWeekly:
		return 7
	default:
		return 1
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Shift moves the window by delta periods of its own mode.
func (w Window) Shift(delta int) Window {
	anchor := w.Start
	switch w.Mode {
	case model.ViewWeekly:
		anchor = anchor.AddDate(0, 0, 7*delta)
	case model.ViewMonthly:
		anchor = anchor.AddDate(0, delta, 0)
	default:
		anchor = anchor.AddDate(0, 0, delta)
	}
	return NewWindow(w.Mode, anchor, w.DayStartHour)
}

// TimeAt is the instant lying pct percent into the window.
func (w Window) TimeAt(pct float64) time.Time {
	pct = clamp(pct, 0, 100)
	return w.Start.Add(time.Duration(pct / 100 * float64(w.Length())))
}

// Label is the header shown above the timeline.
func (w Window) Label() string {
	switch w.Mode {
	case model.ViewWeekly:
		last := w.End.AddDate(0, 0, -1)
		if last.Month() != w.Start.Month() {
			return fmt.Sprintf("%s %d - %s %d, %d", w.Start.Month(), w.Start.Day(), last.Month(), last.Day(), last.Year())
		}
		return fmt.Sprintf("%s %d - %d, %d", w.Start.Month(), w.Start.Day(), last.Day(), last.Year())
	case model.ViewMonthly:
		return fmt.Sprintf("%s %d", w.Start.Month(), w.Start.Year())
	default:
		return fmt.Sprintf("%s, %s %s", w.Start.Weekday(), w.Start.Month(), ordinal(w.Start.Day()))
	}
}

// Ticks returns evenly spaced axis labels with their percent offsets.
func (w Window) Ticks() []Tick {
	switch w.Mode {
	case model.ViewWeekly:
		names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		out := make([]Tick, 0, len(names))
		for i, name := range names {
			out = append(out, Tick{Percent: float64(i) / 7 * 100, Label: name})
		}
		return out
	case model.ViewMonthly:
		days := w.Days()
		step := (days + 9) / 10
		out := make([]Tick, 0, 12)
		for day := 1; day <= days; day += step {
			out = append(out, Tick{Percent: float64(day-1) / float64(days) * 100, Label: fmt.Sprintf("%d", day)})
		}
		return out
	default:
		out := make([]Tick, 0, 12)
		for i := 0; i < 12; i++ {
			hour := (w.DayStartHour + 2*i) % 24
			out = append(out, Tick{Percent: float64(2*i) / 24 * 100, Label: fmt.Sprintf("%02d", hour)})
		}
		return out
	}
}

type Tick struct {
	Percent float64
	Label   string
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package update

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/timeline"
)

// formatUnits renders a duration in the unit of the view, e.g. "2.5h" or "3d".
func formatUnits(mode model.ViewMode, d time.Duration) string {
	suffix := "h"
	if mode == model.ViewMonthly {
		suffix = "d"
	}
	return strconv.FormatFloat(model.DurationToUnits(mode, d), 'f', -1, 64) + suffix
}

// clockInWindow resolves a time of day against the window: the date of the
// cursor for daily and weekly windows, rolled forward a day when a daily
// window starts after that hour.
func clockInWindow(w timeline.Window, cursor float64, hour, minute int) time.Time {
	base := w.TimeAt(cursor)
	if w.Mode == model.ViewDaily {
		base = w.Start
	}
	at := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
	if w.Mode == model.ViewDaily && at.Before(w.Start) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// dayInWindow places day-of-month day in the window's month at the given
// time of day, clamped to the month's last day.
func dayInWindow(w timeline.Window, day, hour, minute int) time.Time {
	first := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, w.Start.Location())
	last := first.AddDate(0, 1, -1).Day()
	day = max(1, min(day, last))
	return time.Date(first.Year(), first.Month(), day, hour, minute, 0, 0, first.Location())
}

func nextSortField(f model.SortField) model.SortField {
	switch f {
	case model.SortNone:
		return model.SortUrgency
	case model.SortUrgency:
		return model.SortImportance
	default:
		return model.SortNone
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func taskLabel(t model.Task) string {
	return fmt.Sprintf("%q", t.Title)
}

func startLabel(start *time.Time) string {
	if start == nil {
		return "unscheduled"
	}
	return start.Format("Mon Jan 2 15:04")
}

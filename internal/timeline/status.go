package timeline

import (
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

type StatusKind string

const (
	StatusNotScheduled StatusKind = "not_scheduled"
	StatusCompleted    StatusKind = "completed"
	StatusDoneAgo      StatusKind = "done_ago"
	StatusUpcoming     StatusKind = "upcoming"
	StatusInProgress   StatusKind = "in_progress"
	StatusOverdue      StatusKind = "overdue"
)

// Status describes a task relative to the cursor. Amount is the time until
// start, the time remaining, or the time since the end, depending on Kind.
type Status struct {
	Kind   StatusKind
	Amount time.Duration
}

// DeriveStatus places the cursor against the task's exact span. A task is
// upcoming strictly before its start, in progress from its start up to but
// not including its end and overdue from its end on.
func DeriveStatus(t model.Task, cursor float64, w Window) Status {
	start, end, ok := Span(t, w)
	if !ok {
		return Status{Kind: StatusNotScheduled}
	}
	perPct := w.HoursPerPercent()
	hours := func(pct float64) time.Duration {
		return time.Duration(pct * perPct * float64(time.Hour))
	}

	if t.Progress >= 100 {
		if cursor <= end {
			return Status{Kind: StatusCompleted}
		}
		return Status{Kind: StatusDoneAgo, Amount: hours(cursor - end)}
	}
	switch {
	case cursor < start:
		return Status{Kind: StatusUpcoming, Amount: hours(start - cursor)}
	case cursor >= end:
		return Status{Kind: StatusOverdue, Amount: hours(cursor - end)}
	default:
		remaining := time.Duration(float64(t.Duration) * float64(100-t.Progress) / 100)
		return Status{Kind: StatusInProgress, Amount: remaining}
	}
}

// Active reports whether the cursor lies within the task's span, ends included.
func Active(t model.Task, cursor float64, w Window) bool {
	start, end, ok := Span(t, w)
	return ok && cursor >= start && cursor <= end
}

type OverdueLevel int

const (
	OverdueNone OverdueLevel = iota
	// OverduePartial is an overdue task with some progress.
	OverduePartial
	// OverdueStalled is an overdue task that was never started.
	OverdueStalled
)

func DeriveOverdueLevel(t model.Task, cursor float64, w Window) OverdueLevel {
	if DeriveStatus(t, cursor, w).Kind != StatusOverdue {
		return OverdueNone
	}
	if t.Progress == 0 {
		return OverdueStalled
	}
	return OverduePartial
}

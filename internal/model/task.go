package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidViewMode   = errors.New("model: invalid view mode")
	ErrInvalidImportance = errors.New("model: invalid task importance")
	ErrInvalidProgress   = errors.New("model: invalid task progress")
	ErrInvalidDuration   = errors.New("model: invalid task duration")
)

const (
	MinImportance = 1
	MaxImportance = 10

	// SubtaskThreshold is the longest duration still rendered as a subtask.
	SubtaskThreshold = 30 * time.Minute
)

type ViewMode string

const (
	ViewDaily   ViewMode = "daily"
	ViewWeekly  ViewMode = "weekly"
	ViewMonthly ViewMode = "monthly"
)

func (v ViewMode) IsValid() bool {
	switch v {
	case ViewDaily, ViewWeekly, ViewMonthly:
		return true
	default:
		return false
	}
}

// Unit is the length of one duration unit as shown and edited in this view:
// hours for the daily and weekly views, days for the monthly view.
func (v ViewMode) Unit() time.Duration {
	if v == ViewMonthly {
		return 24 * time.Hour
	}
	return time.Hour
}

// ParseViewMode accepts the mode names plus their single-letter shortcuts.
func ParseViewMode(raw string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "daily", "day", "d":
		return ViewDaily, nil
	case "weekly", "week", "w":
		return ViewWeekly, nil
	case "monthly", "month", "m":
		return ViewMonthly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, raw)
	}
}

type Task struct {
	ID               string
	Title            string
	Importance       int
	StartDate        *time.Time
	Duration         time.Duration
	Progress         int
	Urgency          int
	Completed        bool
	CreatedAt        time.Time
	OriginalViewMode ViewMode
}

// Scheduled reports whether the task has a start date.
func (t Task) Scheduled() bool {
	return t.StartDate != nil
}

// End is the start date plus duration. It is the zero time for unscheduled tasks.
func (t Task) End() time.Time {
	if t.StartDate == nil {
		return time.Time{}
	}
	return t.StartDate.Add(t.Duration)
}

func (t Task) Subtask() bool {
	return t.Duration <= SubtaskThreshold
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.Importance < MinImportance || t.Importance > MaxImportance {
		return fmt.Errorf("%w: %d", ErrInvalidImportance, t.Importance)
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidProgress, t.Progress)
	}
	if t.Duration < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, t.Duration)
	}
	if !t.OriginalViewMode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, t.OriginalViewMode)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// Clone returns a copy that does not share the start date pointer.
func (t Task) Clone() Task {
	out := t
	if t.StartDate != nil {
		start := *t.StartDate
		out.StartDate = &start
	}
	return out
}

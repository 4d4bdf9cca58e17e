package model

import (
	"math"
	"time"
)

// CalculateUrgency scores how pressing a task is relative to now, from 0
// (unscheduled) to 5 (already past its end).
func CalculateUrgency(t Task, now time.Time) int {
	if t.StartDate == nil || t.Duration <= 0 {
		return 0
	}
	hoursUntilStart := math.Ceil(t.StartDate.Sub(now).Hours())
	hoursUntilEnd := math.Ceil(t.End().Sub(now).Hours())

	switch {
	case hoursUntilEnd <= 0:
		return 5
	case hoursUntilStart <= 0:
		return 4
	case hoursUntilStart <= 24:
		return 4
	case hoursUntilStart <= 72:
		return 3
	case hoursUntilStart <= 168:
		return 2
	default:
		return 1
	}
}

type SortField string

const (
	SortNone       SortField = "none"
	SortUrgency    SortField = "urgency"
	SortImportance SortField = "importance"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortNone, SortUrgency, SortImportance:
		return true
	default:
		return false
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// Toggle flips the order, used when the same sort field is chosen twice.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

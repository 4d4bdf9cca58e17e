package timeline

import (
	"fmt"
	"math"
	"time"
)

func (s Status) String() string {
	switch s.Kind {
	case StatusNotScheduled:
		return "not scheduled"
	case StatusCompleted:
		return "completed"
	case StatusDoneAgo:
		return "done " + formatSpan(s.Amount) + " ago"
	case StatusUpcoming:
		return "in " + formatSpan(s.Amount)
	case StatusInProgress:
		return formatRemaining(s.Amount)
	case StatusOverdue:
		return "overdue " + formatSpan(s.Amount)
	default:
		return ""
	}
}

// formatSpan picks the largest unit of days, hours or minutes that is at
// least one and rounds to it.
func formatSpan(d time.Duration) string {
	hours := d.Hours()
	switch {
	case hours >= 24:
		return fmt.Sprintf("%dd", int(math.Round(hours/24)))
	case hours >= 1:
		return fmt.Sprintf("%dh", int(math.Round(hours)))
	default:
		return fmt.Sprintf("%dm", int(math.Round(d.Minutes())))
	}
}

func formatRemaining(d time.Duration) string {
	minutes := d.Minutes()
	switch {
	case minutes >= 24*60:
		days := int(minutes / (24 * 60))
		hours := int(math.Round(math.Mod(minutes, 24*60) / 60))
		if hours == 24 {
			days, hours = days+1, 0
		}
		if hours == 0 {
			return fmt.Sprintf("%dd left", days)
		}
		return fmt.Sprintf("%dd %dh left", days, hours)
	case minutes >= 60:
		hours := int(minutes / 60)
		mins := int(math.Round(math.Mod(minutes, 60)))
		if mins == 60 {
			hours, mins = hours+1, 0
		}
		if mins == 0 {
			return fmt.Sprintf("%dh left", hours)
		}
		return fmt.Sprintf("%dh %dm left", hours, mins)
	default:
		return fmt.Sprintf("%dm left", int(math.Round(minutes)))
	}
}

package model

import (
	"math"
	"time"
)

// DurationLimits are the bounds and step a view offers when editing a duration.
type DurationLimits struct {
	Min  time.Duration
	Max  time.Duration
	Step time.Duration
}

func LimitsFor(mode ViewMode) DurationLimits {
	switch mode {
	case ViewWeekly:
		return DurationLimits{Min: 4 * time.Hour, Max: 168 * time.Hour, Step: 4 * time.Hour}
	case ViewMonthly:
		return DurationLimits{Min: 24 * time.Hour, Max: 30 * 24 * time.Hour, Step: 24 * time.Hour}
	default:
		return DurationLimits{Min: 0, Max: 24 * time.Hour, Step: 30 * time.Minute}
	}
}

// DefaultDuration is what a new task gets in the given view when none is supplied.
func DefaultDuration(mode ViewMode) time.Duration {
	switch mode {
	case ViewWeekly:
		return 4 * time.Hour
	case ViewMonthly:
		return 3 * 24 * time.Hour
	default:
		return 2 * time.Hour
	}
}

func ClampDuration(mode ViewMode, d time.Duration) time.Duration {
	lim := LimitsFor(mode)
	if d < lim.Min {
		return lim.Min
	}
	if d > lim.Max {
		return lim.Max
	}
	return d
}

func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func ClampImportance(v int) int {
	if v < MinImportance {
		return MinImportance
	}
	if v > MaxImportance {
		return MaxImportance
	}
	return v
}

// maxDurationSeconds is the largest whole number of seconds a time.Duration holds.
const maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))

// UnitsToDuration converts a number of view units (hours or days) to a duration,
// rounded to the second. Values past what a time.Duration can hold saturate.
func UnitsToDuration(mode ViewMode, units float64) time.Duration {
	if math.IsNaN(units) {
		return 0
	}
	secs := math.Round(units * mode.Unit().Seconds())
	secs = max(-maxDurationSeconds, min(secs, maxDurationSeconds))
	return time.Duration(secs) * time.Second
}

func DurationToUnits(mode ViewMode, d time.Duration) float64 {
	return d.Seconds() / mode.Unit().Seconds()
}

package model

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validTask() Task {
	start := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	return Task{
		ID:               "task-1",
		Title:            "Draft timeline",
		Importance:       5,
		StartDate:        &start,
		Duration:         2 * time.Hour,
		CreatedAt:        time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		OriginalViewMode: ViewDaily,
	}
}

func TestTaskValidateSuccess(t *testing.T) {
	if err := validTask().Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRanges(t *testing.T) {
	task := validTask()
	task.Importance = 11
	if err := task.Validate(); !errors.Is(err, ErrInvalidImportance) {
		t.Fatalf("expected ErrInvalidImportance, got: %v", err)
	}

	task = validTask()
	task.Progress = 101
	if err := task.Validate(); !errors.Is(err, ErrInvalidProgress) {
		t.Fatalf("expected ErrInvalidProgress, got: %v", err)
	}

	task = validTask()
	task.Duration = -time.Minute
	if err := task.Validate(); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got: %v", err)
	}

	task = validTask()
	task.OriginalViewMode = ViewMode("yearly")
	if err := task.Validate(); !errors.Is(err, ErrInvalidViewMode) {
		t.Fatalf("expected ErrInvalidViewMode, got: %v", err)
	}
}

func TestTaskEndAndSubtask(t *testing.T) {
	task := validTask()
	if got := task.End(); !got.Equal(time.Date(2026, 2, 9, 11, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %s", got)
	}
	if task.Subtask() {
		t.Fatal("2h task must not be a subtask")
	}
	task.Duration = 30 * time.Minute
	if !task.Subtask() {
		t.Fatal("30m task must be a subtask")
	}
	task.StartDate = nil
	if !task.End().IsZero() {
		t.Fatal("unscheduled task must have zero end")
	}
}

func TestCloneDoesNotShareStart(t *testing.T) {
	task := validTask()
	cp := task.Clone()
	*cp.StartDate = cp.StartDate.Add(time.Hour)
	if task.StartDate.Hour() != 9 {
		t.Fatalf("clone mutated original start: %s", task.StartDate)
	}
}

func TestParseViewMode(t *testing.T) {
	cases := map[string]ViewMode{"daily": ViewDaily, "W": ViewWeekly, " month ": ViewMonthly}
	for in, want := range cases {
		got, err := ParseViewMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseViewMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseViewMode("yearly"); !errors.Is(err, ErrInvalidViewMode) {
		t.Fatalf("expected ErrInvalidViewMode, got %v", err)
	}
}

func TestClampHelpers(t *testing.T) {
	if ClampProgress(-5) != 0 || ClampProgress(130) != 100 || ClampProgress(42) != 42 {
		t.Fatal("unexpected progress clamping")
	}
	if ClampImportance(0) != 1 || ClampImportance(12) != 10 {
		t.Fatal("unexpected importance clamping")
	}
	if got := ClampDuration(ViewWeekly, time.Hour); got != 4*time.Hour {
		t.Fatalf("weekly minimum = %s, want 4h", got)
	}
	if got := ClampDuration(ViewMonthly, 45*24*time.Hour); got != 30*24*time.Hour {
		t.Fatalf("monthly maximum = %s, want 720h", got)
	}
	if got := UnitsToDuration(ViewMonthly, 1.5); got != 36*time.Hour {
		t.Fatalf("1.5 days = %s, want 36h", got)
	}
	if got := DurationToUnits(ViewDaily, 90*time.Minute); got != 1.5 {
		t.Fatalf("90m in hours = %v, want 1.5", got)
	}
}

func TestUnitsToDurationSaturates(t *testing.T) {
	cases := []struct {
		mode  ViewMode
		units float64
	}{
		{ViewMonthly, 1e6},
		{ViewDaily, 1e8},
		{ViewWeekly, math.Inf(1)},
	}
	for _, tc := range cases {
		got := UnitsToDuration(tc.mode, tc.units)
		if got <= 0 {
			t.Fatalf("UnitsToDuration(%s, %g) = %s, want a large positive duration", tc.mode, tc.units, got)
		}
		if clamped := ClampDuration(tc.mode, got); clamped != LimitsFor(tc.mode).Max {
			t.Fatalf("clamping %s in %s = %s, want the view maximum", got, tc.mode, clamped)
		}
	}
	if got := UnitsToDuration(ViewDaily, -1e12); got >= 0 {
		t.Fatalf("large negative units = %s, want negative", got)
	}
	if got := UnitsToDuration(ViewDaily, math.NaN()); got != 0 {
		t.Fatalf("NaN units = %s, want 0", got)
	}
}

func TestCalculateUrgency(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}
	cases := []struct {
		name  string
		start *time.Time
		dur   time.Duration
		want  int
	}{
		{"unscheduled", nil, time.Hour, 0},
		{"zero duration", at(time.Hour), 0, 0},
		{"ended", at(-3 * time.Hour), time.Hour, 5},
		{"running", at(-time.Hour), 2 * time.Hour, 4},
		{"within a day", at(10 * time.Hour), time.Hour, 4},
		{"within three days", at(48 * time.Hour), time.Hour, 3},
		{"within a week", at(100 * time.Hour), time.Hour, 2},
		{"later", at(200 * time.Hour), time.Hour, 1},
	}
	for _, tc := range cases {
		got := CalculateUrgency(Task{StartDate: tc.start, Duration: tc.dur}, now)
		if got != tc.want {
			t.Fatalf("%s: urgency = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	cases := map[int]ImportanceBand{10: BandCritical, 7: BandHigh, 5: BandMedium, 3: BandLow, 1: BandMinimal}
	for imp, want := range cases {
		if got := BandFor(imp); got != want {
			t.Fatalf("BandFor(%d) = %s, want %s", imp, got, want)
		}
	}
	if BandCritical.Hex() != "#ef4444" {
		t.Fatalf("unexpected critical colour %s", BandCritical.Hex())
	}
}

func TestSampleTasksAreValid(t *testing.T) {
	now := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	tasks := SampleTasks(now)
	if len(tasks) == 0 {
		t.Fatal("expected sample tasks")
	}
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			t.Fatalf("sample %s invalid: %v", task.ID, err)
		}
	}
}

package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

// isoLayout matches the millisecond UTC timestamps browsers write.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// taskRecord is the persisted shape of a task. Duration is a number of hours
// for tasks created in the daily or weekly view and of days for the monthly
// view.
type taskRecord struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Importance       float64 `json:"importance"`
	StartDate        *string `json:"startDate"`
	Duration         float64 `json:"duration"`
	Progress         float64 `json:"progress"`
	Urgency          float64 `json:"urgency"`
	Completed        bool    `json:"completed"`
	CreatedAt        string  `json:"createdAt"`
	OriginalViewMode string  `json:"originalViewMode,omitempty"`
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	out := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		mode := t.OriginalViewMode
		if !mode.IsValid() {
			mode = model.ViewDaily
		}
		rec := taskRecord{
			ID:               t.ID,
			Title:            t.Title,
			Importance:       float64(t.Importance),
			Duration:         math.Round(model.DurationToUnits(mode, t.Duration)*1000) / 1000,
			Progress:         float64(t.Progress),
			Urgency:          float64(t.Urgency),
			Completed:        t.Completed,
			CreatedAt:        t.CreatedAt.UTC().Format(isoLayout),
			OriginalViewMode: string(mode),
		}
		if t.StartDate != nil {
			start := t.StartDate.UTC().Format(isoLayout)
			rec.StartDate = &start
		}
		out = append(out, rec)
	}
	return json.Marshal(out)
}

func decodeTasks(raw []byte) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	out := make([]model.Task, 0, len(records))
	for i, rec := range records {
		task, err := rec.toTask()
		if err != nil {
			return nil, fmt.Errorf("decode task %d: %w", i, err)
		}
		out = append(out, task)
	}
	return out, nil
}

func (r taskRecord) toTask() (model.Task, error) {
	mode := model.ViewMode(r.OriginalViewMode)
	if r.OriginalViewMode == "" {
		mode = model.ViewDaily
	}
	if !mode.IsValid() {
		return model.Task{}, fmt.Errorf("%w: %q", model.ErrInvalidViewMode, r.OriginalViewMode)
	}
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("createdAt: %w", err)
	}
	task := model.Task{
		ID:               r.ID,
		Title:            r.Title,
		Importance:       model.ClampImportance(int(math.Round(r.Importance))),
		Duration:         min(model.UnitsToDuration(mode, math.Max(r.Duration, 0)), model.LimitsFor(mode).Max),
		Progress:         model.ClampProgress(int(math.Round(r.Progress))),
		Urgency:          int(math.Round(r.Urgency)),
		Completed:        r.Completed,
		CreatedAt:        created.Local(),
		OriginalViewMode: mode,
	}
	if r.StartDate != nil && *r.StartDate != "" {
		start, err := time.Parse(time.RFC3339Nano, *r.StartDate)
		if err != nil {
			return model.Task{}, fmt.Errorf("startDate: %w", err)
		}
		start = start.Local()
		task.StartDate = &start
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Package planner owns the task collection and the set of manually adjusted
// tasks, applies edits coming from the timeline and persists after each one.
package planner

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/timeline"
)

var ErrEmptyTitle = errors.New("planner: task title is required")

// Persister is the load/save boundary. storage.TaskStore implements it.
type Persister interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

// NewTask is the input of CreateTask. Mode is the view the task is created
// from and decides the unit Duration is persisted in.
type NewTask struct {
	Title      string
	Importance int
	StartDate  *time.Time
	Duration   time.Duration
	Mode       model.ViewMode
}

type Planner struct {
	tasks   []model.Task
	manual  map[string]struct{}
	store   Persister
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
	saveErr error
}

type Option func(*Planner)

func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(p *Planner) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// New builds an empty planner. A nil store keeps everything in memory.
func New(store Persister, opts ...Option) *Planner {
	p := &Planner{
		manual: make(map[string]struct{}),
		store:  store,
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load replaces the collection with the persisted tasks and refreshes their
// urgency. Unreadable data leaves an empty collection; the error is logged
// and returned so callers can surface it.
func (p *Planner) Load(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	tasks, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Printf("load tasks: %v", err)
		p.tasks = nil
		return err
	}
	now := p.now()
	for i := range tasks {
		tasks[i].Urgency = model.CalculateUrgency(tasks[i], now)
	}
	p.tasks = tasks
	return nil
}

// Empty reports whether there are no tasks.
func (p *Planner) Empty() bool {
	return len(p.tasks) == 0
}

// Tasks returns a copy of the collection in insertion order.
func (p *Planner) Tasks() []model.Task {
	out := make([]model.Task, len(p.tasks))
	for i, t := range p.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (p *Planner) Task(id string) (model.Task, bool) {
	i := p.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return p.tasks[i].Clone(), true
}

func (p *Planner) CreateTask(in NewTask) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	mode := in.Mode
	if !mode.IsValid() {
		mode = model.ViewDaily
	}
	importance := in.Importance
	if importance == 0 {
		importance = 5
	}
	duration := in.Duration
	if duration == 0 {
		duration = model.DefaultDuration(mode)
	}
	task := model.Task{
		ID:               p.newID(),
		Title:            title,
		Importance:       model.ClampImportance(importance),
		Duration:         model.ClampDuration(mode, duration),
		CreatedAt:        p.now(),
		OriginalViewMode: mode,
	}
	if in.StartDate != nil {
		start := in.StartDate.Truncate(time.Minute)
		task.StartDate = &start
	}
	task.Urgency = model.CalculateUrgency(task, p.now())
	p.tasks = append(p.tasks, task)
	p.logger.Printf("created task %s %q", task.ID, task.Title)
	p.persist()
	return task.Clone(), nil
}

// UpdateProgress sets progress, clamped to [0, 100]. It does not mark the task
// as manually adjusted; interactive edits call SetManuallyAdjusted as well.
func (p *Planner) UpdateProgress(id string, progress int) {
	p.mutate(id, "progress", func(t *model.Task) {
		t.Progress = model.ClampProgress(progress)
	})
}

func (p *Planner) UpdateDuration(id string, d time.Duration) {
	p.mutate(id, "duration", func(t *model.Task) {
		t.Duration = max(d, 0)
		t.Urgency = model.CalculateUrgency(*t, p.now())
	})
}

func (p *Planner) UpdateStartTime(id string, start time.Time) {
	p.mutate(id, "start", func(t *model.Task) {
		s := start.Truncate(time.Minute)
		t.StartDate = &s
		t.Urgency = model.CalculateUrgency(*t, p.now())
	})
}

func (p *Planner) ToggleComplete(id string) {
	p.mutate(id, "completed", func(t *model.Task) {
		t.Completed = !t.Completed
	})
}

func (p *Planner) DeleteTask(id string) {
	i := p.index(id)
	if i < 0 {
		p.logger.Printf("debug: delete of unknown task %s ignored", id)
		return
	}
	p.tasks = slices.Delete(p.tasks, i, i+1)
	p.persist()
}

// SetManuallyAdjusted excludes the task from automatic progress for the rest
// of the session.
func (p *Planner) SetManuallyAdjusted(id string) {
	p.manual[id] = struct{}{}
}

func (p *Planner) IsManuallyAdjusted(id string) bool {
	_, ok := p.manual[id]
	return ok
}

// ApplyProgress writes a batch of automatic progress values with a single save.
func (p *Planner) ApplyProgress(updates []timeline.ProgressUpdate) {
	changed := false
	for _, u := range updates {
		i := p.index(u.TaskID)
		if i < 0 {
			continue
		}
		p.tasks[i].Progress = model.ClampProgress(u.Progress)
		changed = true
	}
	if changed {
		p.persist()
	}
}

// LoadSampleTasks replaces the collection with the demo board.
func (p *Planner) LoadSampleTasks() {
	p.tasks = model.SampleTasks(p.now())
	p.persist()
}

// LastSaveError is the error of the most recent save, or nil.
func (p *Planner) LastSaveError() error {
	return p.saveErr
}

func (p *Planner) mutate(id, field string, fn func(*model.Task)) {
	i := p.index(id)
	if i < 0 {
		p.logger.Printf("debug: %s update of unknown task %s ignored", field, id)
		return
	}
	fn(&p.tasks[i])
	p.persist()
}

func (p *Planner) index(id string) int {
	return slices.IndexFunc(p.tasks, func(t model.Task) bool { return t.ID == id })
}

func (p *Planner) persist() {
	if p.store == nil {
		return
	}
	p.saveErr = p.store.Save(context.Background(), p.tasks)
	if p.saveErr != nil {
		p.logger.Printf("save tasks: %v", p.saveErr)
	}
}

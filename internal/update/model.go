package update

import (
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/planner"
	"github.com/sandeepkv93/taskline/internal/timeline"
	"github.com/sandeepkv93/taskline/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Daily   string
	Weekly  string
	Monthly string
	Palette string
	Help    string
	Quit    string
}

// MenuState is the per-task action menu opened with enter.
type MenuState struct {
	Open   bool
	TaskID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Planner        *planner.Planner
	Mode           model.ViewMode
	Anchor         time.Time
	DayStartHour   int
	Cursors        map[model.ViewMode]*timeline.Cursor
	Drag           *timeline.DragController
	Auto           timeline.AutoProgress
	Sort           planner.SortState
	SelectedTaskID string
	Menu           MenuState
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	layout       views.Layout
	height       int
	commandInput textinput.Model
	helpModel    help.Model
	progressBar  progress.Model
	logger       *log.Logger
	now          func() time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type Option func(*Model)

func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock sets the clock used for the initial anchor and the "today" key.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func NewModel(p *planner.Planner, cfg RuntimeConfig, opts ...Option) Model {
	if p == nil {
		p = planner.New(nil)
	}
	m := Model{
		Planner:      p,
		Mode:         cfg.View,
		DayStartHour: cfg.DayStartHour,
		Cursors:      make(map[model.ViewMode]*timeline.Cursor, 3),
		Drag:         timeline.NewDragController(),
		Auto:         timeline.AutoProgress{Enabled: cfg.AutoProgress},
		Sort:         planner.SortState{Field: cfg.SortField, Order: cfg.SortOrder},
		Keys: GlobalKeyMap{
			Daily:   "d",
			Weekly:  "w",
			Monthly: "m",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		layout: views.NewLayout(0),
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if !m.Mode.IsValid() {
		m.Mode = model.ViewDaily
	}
	if !m.Sort.Field.IsValid() || !m.Sort.Order.IsValid() {
		m.Sort = planner.DefaultSortState()
	}
	for _, mode := range []model.ViewMode{model.ViewDaily, model.ViewWeekly, model.ViewMonthly} {
		c := timeline.NewCursor()
		if cfg.Cursor > 0 {
			c.Set(cfg.Cursor)
		}
		m.Cursors[mode] = c
	}
	m.Anchor = m.now()
	m.initBubbleComponents()
	m.selectFirst()
	m.applyAutoProgress()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
}

func (m *Model) syncBubbleData() {
	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
	m.helpModel.Width = m.layout.Width
}

func (m Model) window() timeline.Window {
	return timeline.NewWindow(m.Mode, m.Anchor, m.DayStartHour)
}

func (m Model) cursor() *timeline.Cursor {
	return m.Cursors[m.Mode]
}

func (m Model) trackRect() timeline.Rect {
	left, width := m.layout.TrackBounds()
	return timeline.Rect{Left: left, Width: width}
}

package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskline/internal/commands"
	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/planner"
)

func (m *Model) openPalette(prefill string) {
	m.Palette = CommandPaletteState{Active: true, Input: prefill}
	m.commandInput.SetValue(prefill)
	m.commandInput.CursorEnd()
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, m.paletteHandlers())
	if err != nil {
		m.logger.Printf("command %q failed: %v", raw, err)
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	m.reportSaveError()
	return m
}

// paletteHandlers binds the palette commands to the model. The handlers
// close over m, which must be the addressable model being updated.
func (m *Model) paletteHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			in := planner.NewTask{
				Title:      a.Title,
				Importance: a.Importance,
				Duration:   model.UnitsToDuration(m.Mode, a.Units),
				Mode:       m.Mode,
			}
			if a.HasTime {
				start := m.resolveAddStart(a)
				in.StartDate = &start
			}
			t, err := m.Planner.CreateTask(in)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.SelectedTaskID = t.ID
			return commands.Result{Message: fmt.Sprintf("added %s (%s)", taskLabel(t), shortID(t.ID))}, nil
		},
		Progress: func(a commands.ProgressArgs) (commands.Result, error) {
			t, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.setManualProgress(t.ID, a.Value)
			return commands.Result{Message: fmt.Sprintf("%s progress %d%%", taskLabel(t), a.Value)}, nil
		},
		Duration: func(a commands.DurationArgs) (commands.Result, error) {
			t, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			d := model.ClampDuration(m.Mode, model.UnitsToDuration(m.Mode, a.Units))
			m.Planner.UpdateDuration(t.ID, d)
			return commands.Result{Message: fmt.Sprintf("%s duration %s", taskLabel(t), formatUnits(m.Mode, d))}, nil
		},
		Start: func(a commands.StartArgs) (commands.Result, error) {
			t, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			start := a.Date
			if start.IsZero() {
				start = clockInWindow(m.window(), m.cursor().Percent(), a.Hour, a.Minute)
			}
			m.Planner.UpdateStartTime(t.ID, start)
			return commands.Result{Message: fmt.Sprintf("%s starts %s", taskLabel(t), startLabel(&start))}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			t, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.toggleComplete(t.ID)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			t, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			m.deleteTask(t.ID)
			return commands.Result{Message: fmt.Sprintf("deleted %s", taskLabel(t))}, nil
		},
		Sort: func(a commands.SortArgs) (commands.Result, error) {
			m.Sort = m.Sort.Choose(a.Field)
			if a.Order != "" {
				m.Sort.Order = a.Order
			}
			return commands.Result{Message: fmt.Sprintf("sort: %s %s", m.Sort.Field, m.Sort.Order)}, nil
		},
		Auto: func(a commands.AutoArgs) (commands.Result, error) {
			m.Auto.Enabled = a.Enabled
			return commands.Result{Message: "auto-progress " + onOff(a.Enabled)}, nil
		},
		View: func(a commands.ViewArgs) (commands.Result, error) {
			m.setMode(a.Mode)
			return commands.Result{Message: fmt.Sprintf("view: %s", a.Mode)}, nil
		},
		Demo: func() (commands.Result, error) {
			m.Planner.LoadSampleTasks()
			m.Anchor = m.now()
			m.SelectedTaskID = ""
			m.selectFirst()
			return commands.Result{Message: "loaded sample tasks"}, nil
		},
	}
}

// resolveTarget maps "sel", a full id or a unique id prefix to a task.
func (m *Model) resolveTarget(target string) (model.Task, error) {
	if target == commands.SelectedTarget {
		if t, ok := m.selectedTask(); ok {
			return t, nil
		}
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
	}
	if t, ok := m.Planner.Task(target); ok {
		return t, nil
	}
	var match []model.Task
	for _, t := range m.Planner.Tasks() {
		if strings.HasPrefix(t.ID, target) {
			match = append(match, t)
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task with id %q", target)}
	default:
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("id %q is ambiguous", target)}
	}
}

// resolveAddStart turns the at:/day: options of /add into a start inside the
// current window.
func (m *Model) resolveAddStart(a commands.AddArgs) time.Time {
	w := m.window()
	hour, minute := a.Hour, a.Minute
	if a.Day > 0 {
		if !a.HasClock {
			hour, minute = m.DayStartHour, 0
		}
		return dayInWindow(w, a.Day, hour, minute)
	}
	return clockInWindow(w, m.cursor().Percent(), hour, minute)
}

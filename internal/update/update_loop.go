package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskline/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = views.NewLayout(typed.Width)
		m.height = typed.Height
		m.syncBubbleData()
		return m, nil
	case tea.KeyMsg:
		next, cmd := m.handleKey(typed)
		next.applyAutoProgress()
		next.syncBubbleData()
		return next, cmd
	case tea.MouseMsg:
		if m.Palette.Active {
			return m, nil
		}
		next := m.handleMouse(typed)
		next.applyAutoProgress()
		return next, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Printf("error: %v", typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.Menu.Open {
		return m.handleMenuKey(msg), nil
	}

	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Palette:
		m.openPalette("")
		return m, nil
	case "n":
		m.openPalette("add ")
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	}
	if next, ok := m.handleCalendarKey(msg); ok {
		return next, nil
	}
	next, _ := m.handleTaskKey(msg)
	return next, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	side := m.renderHelpIfVisible()
	if m.Palette.Active {
		side = views.RenderCommandPalette(true, m.commandInput.View())
	}
	_, mode, dragging := m.Drag.Active()
	dragInfo := ""
	if dragging {
		dragInfo = " | " + mode.String()
	}
	return views.RenderApp(views.AppData{
		Header: fmt.Sprintf("taskline | %s | sort: %s %s | auto: %s%s",
			m.Mode, m.Sort.Field, m.Sort.Order, onOff(m.Auto.Enabled), dragInfo),
		Timeline:   views.RenderTimeline(m.timelineData()),
		Detail:     views.RenderDetail(m.detailData()),
		Side:       side,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.shortHelp(),
	})
}

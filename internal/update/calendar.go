package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskline/internal/model"
)

const (
	cursorStep     = 1.0
	cursorBigStep  = 5.0
	windowBackward = -1
	windowForward  = 1
)

// handleCalendarKey covers view mode, window navigation and the cursor. It
// reports false for keys it does not own.
func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case m.Keys.Daily:
		m.setMode(model.ViewDaily)
	case m.Keys.Weekly:
		m.setMode(model.ViewWeekly)
	case m.Keys.Monthly:
		m.setMode(model.ViewMonthly)
	case "h", "left":
		m.shiftWindow(windowBackward)
	case "l", "right":
		m.shiftWindow(windowForward)
	case "t":
		m.Anchor = m.now()
		m.selectFirst()
		m.Status = StatusBar{Text: "jumped to today: " + m.window().Label()}
	case "[":
		m.cursor().Nudge(-cursorStep)
	case "]":
		m.cursor().Nudge(cursorStep)
	case "{":
		m.cursor().Nudge(-cursorBigStep)
	case "}":
		m.cursor().Nudge(cursorBigStep)
	default:
		return m, false
	}
	return m, true
}

func (m *Model) setMode(mode model.ViewMode) {
	if m.Mode == mode {
		return
	}
	m.Drag.ReleaseAll()
	m.Mode = mode
	m.selectFirst()
	m.Status = StatusBar{Text: fmt.Sprintf("view: %s", mode)}
}

// shiftWindow moves the anchor by one period of the current mode.
func (m *Model) shiftWindow(delta int) {
	m.Drag.ReleaseAll()
	switch m.Mode {
	case model.ViewWeekly:
		m.Anchor = m.Anchor.AddDate(0, 0, 7*delta)
	case model.ViewMonthly:
		first := m.Anchor.AddDate(0, 0, 1-m.Anchor.Day())
		m.Anchor = first.AddDate(0, delta, 0)
	default:
		m.Anchor = m.Anchor.AddDate(0, 0, delta)
	}
	m.selectFirst()
	m.Status = StatusBar{Text: m.window().Label()}
}

package update

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/taskline/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const paletteHelp = `## Commands

- ` + "`/add <title> [imp:N] [at:HH:MM|day:N] [dur:X]`" + `
- ` + "`/progress <id|sel> <0-100>`" + `, ` + "`/duration <id|sel> <units>`" + `
- ` + "`/start <id|sel> <HH:MM|YYYY-MM-DDTHH:MM>`" + `
- ` + "`/done <id|sel>`" + `, ` + "`/delete <id|sel>`" + `
- ` + "`/sort urgency|importance|none [asc|desc]`" + `, ` + "`/auto on|off`" + `
- ` + "`/view daily|weekly|monthly`" + `, ` + "`/demo`" + `

Drag the ▼ handle to move the clock. Drag a bar's ` + "`[`" + ` to move it
and its ` + "`]`" + ` to resize it; Esc aborts the drag.
`

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	global := toKeyBindings(m.globalBindings())
	task := toKeyBindings(m.taskBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: paletteHelp,
		HelpView: m.helpModel.FullHelpView([][]key.Binding{global, task}),
	})
}

func (m Model) shortHelp() string {
	return m.helpModel.ShortHelpView(toKeyBindings([]KeyBinding{
		{Key: m.Keys.Daily + "/" + m.Keys.Weekly + "/" + m.Keys.Monthly, Action: "view"},
		{Key: "h/l", Action: "prev/next"},
		{Key: "[/]", Action: "clock"},
		{Key: "enter", Action: "menu"},
		{Key: m.Keys.Palette, Action: "command"},
		{Key: m.Keys.Help, Action: "help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}))
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Daily, Action: "daily view"},
		{Key: m.Keys.Weekly, Action: "weekly view"},
		{Key: m.Keys.Monthly, Action: "monthly view"},
		{Key: "h/l", Action: "previous/next window"},
		{Key: "t", Action: "jump to today"},
		{Key: "[/]", Action: "clock -1%/+1%"},
		{Key: "{/}", Action: "clock -5%/+5%"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: "n", Action: "new task"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) taskBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Action: "select task"},
		{Key: "+/-", Action: "progress ±10%"},
		{Key: "</>", Action: "shorter/longer"},
		{Key: "H/L", Action: "earlier/later"},
		{Key: "space", Action: "toggle complete"},
		{Key: "enter", Action: "task menu"},
		{Key: "a", Action: "toggle auto-progress"},
		{Key: "s/S", Action: "sort field/order"},
		{Key: "esc", Action: "cancel drag"},
	}
}

func toKeyBindings(in []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(in))
	for _, kb := range in {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

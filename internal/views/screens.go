package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

type Tone int

const (
	ToneNeutral Tone = iota
	ToneActive
	ToneDone
	ToneWarn
	ToneAlert
)

type TickData struct {
	Percent float64
	Label   string
}

// BarData places a bar in percent of the track. Visible is false for tasks
// the window does not draw.
type BarData struct {
	Visible  bool
	Start    float64
	Width    float64
	Progress int
	Color    string
	Dragging bool
}

type RowData struct {
	ID         string
	Title      string
	Bar        BarData
	Status     string
	StatusTone Tone
	Selected   bool
	Active     bool
	Completed  bool
}

type TimelineData struct {
	Layout         Layout
	WindowLabel    string
	ModeLabel      string
	Ticks          []TickData
	Cursor         float64
	CursorLabel    string
	CursorDragging bool
	Rows           []RowData
	EmptyHint      string
}

type DetailData struct {
	ID           string
	Title        string
	Start        string
	Duration     string
	Importance   int
	Band         string
	Status       string
	ProgressPct  int
	ProgressView string
	Manual       bool
	Completed    bool
	MenuOpen     bool
	Hidden       int
}

type HelpPanelData struct {
	Markdown string
	HelpView string
}

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	cursorDragged = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	toneStyles = map[Tone]lipgloss.Style{
		ToneNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		ToneActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ToneDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ToneWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		ToneAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	trackColor = "#334155"
)

func RenderTimeline(d TimelineData) string {
	l := d.Layout
	tw := l.TrackWidth()
	lines := make([]string, 0, len(d.Rows)+4)

	lines = append(lines, fmt.Sprintf("%s  [%s]", d.WindowLabel, d.ModeLabel))
	lines = append(lines, blank(LabelWidth+1)+tickLine(l, d.Ticks)+" "+dimStyle.Render(d.CursorLabel))
	lines = append(lines, blank(LabelWidth+1)+handleLine(l, d.Cursor, d.CursorDragging))

	cursorCell := l.Cell(d.Cursor)
	tickCells := make(map[int]bool, len(d.Ticks))
	for _, t := range d.Ticks {
		tickCells[l.Cell(t.Percent)] = true
	}
	for _, row := range d.Rows {
		var b strings.Builder
		b.WriteString(renderLabel(row))
		b.WriteString(" ")
		b.WriteString(renderTrack(l, row.Bar, cursorCell, d.CursorDragging, tickCells))
		b.WriteString(" ")
		status := truncate.StringWithTail(row.Status, StatusWidth, "…")
		b.WriteString(toneStyles[row.StatusTone].Render(status))
		lines = append(lines, b.String())
	}
	if len(d.Rows) == 0 && d.EmptyHint != "" {
		lines = append(lines, blank(LabelWidth+1)+dimStyle.Render(truncate.String(d.EmptyHint, uint(tw))))
	}
	return strings.Join(lines, "\n")
}

func renderLabel(row RowData) string {
	marker := "  "
	if row.Selected {
		marker = "> "
	}
	title := truncate.StringWithTail(row.Title, uint(LabelWidth-len(marker)), "…")
	text := padding.String(marker+title, LabelWidth)
	switch {
	case row.Completed:
		return doneStyle.Render(text)
	case row.Selected:
		return selectedStyle.Render(text)
	case row.Active:
		return activeStyle.Render(text)
	default:
		return labelStyle.Render(text)
	}
}

func renderTrack(l Layout, bar BarData, cursorCell int, dragging bool, ticks map[int]bool) string {
	tw := l.TrackWidth()
	first, last := -1, -1
	filled := 0
	if bar.Visible {
		first, last = l.BarCells(bar.Start, bar.Width)
		filled = int(math.Round(float64(bar.Progress) / 100 * float64(last-first+1)))
	}
	fill, empty := barColors(bar.Color)
	fillStyle := lipgloss.NewStyle().Foreground(fill)
	emptyStyle := lipgloss.NewStyle().Foreground(empty)
	handleStyle := lipgloss.NewStyle().Bold(true).Foreground(fill)
	if bar.Dragging {
		handleStyle = handleStyle.Reverse(true)
	}

	var b strings.Builder
	for c := 0; c < tw; c++ {
		inBar := c >= first && c <= last && first >= 0
		switch {
		case inBar && first == last:
			b.WriteString(handleStyle.Render("■"))
		case inBar && c == first:
			b.WriteString(handleStyle.Render("["))
		case inBar && c == last:
			b.WriteString(handleStyle.Render("]"))
		case inBar && c-first < filled:
			b.WriteString(fillStyle.Render("█"))
		case inBar:
			b.WriteString(emptyStyle.Render("░"))
		case c == cursorCell && dragging:
			b.WriteString(cursorDragged.Render("┃"))
		case c == cursorCell:
			b.WriteString(cursorStyle.Render("│"))
		case ticks[c]:
			b.WriteString(dimStyle.Render("·"))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

func tickLine(l Layout, ticks []TickData) string {
	tw := l.TrackWidth()
	buf := []rune(strings.Repeat(" ", tw))
	next := 0
	for _, t := range ticks {
		c := l.Cell(t.Percent)
		if c < next {
			continue
		}
		for i, r := range t.Label {
			if c+i >= tw {
				break
			}
			buf[c+i] = r
		}
		next = c + len([]rune(t.Label)) + 1
	}
	return dimStyle.Render(string(buf))
}

func handleLine(l Layout, cursor float64, dragging bool) string {
	c := l.Cell(cursor)
	style := cursorStyle
	if dragging {
		style = cursorDragged
	}
	return blank(c) + style.Render("▼") + blank(l.TrackWidth()-c-1)
}

// barColors derives the filled and unfilled shades of a bar from its hex colour.
func barColors(hex string) (lipgloss.Color, lipgloss.Color) {
	base, err := colorful.Hex(hex)
	if err != nil {
		base, _ = colorful.Hex("#94a3b8")
	}
	track, _ := colorful.Hex(trackColor)
	return lipgloss.Color(base.Hex()), lipgloss.Color(base.BlendRgb(track, 0.6).Hex())
}

func RenderDetail(d DetailData) string {
	var b strings.Builder
	if d.ID == "" {
		b.WriteString("selected: (none)\n")
	} else {
		check := "[ ]"
		if d.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("selected: %s %s\n", check, d.Title))
		b.WriteString(fmt.Sprintf("start: %s | duration: %s | importance: %d (%s)\n", d.Start, d.Duration, d.Importance, d.Band))
		manual := ""
		if d.Manual {
			manual = " (manual)"
		}
		b.WriteString(fmt.Sprintf("status: %s | progress: %s %d%%%s\n", d.Status, d.ProgressView, d.ProgressPct, manual))
		if d.MenuOpen {
			b.WriteString(menuStyle.Render("menu: [c] complete  [x] delete  [0-9] progress x10  [f] 100%  [esc] close") + "\n")
		}
	}
	if d.Hidden > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d more task(s) outside this window", d.Hidden)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return strings.TrimSpace(RenderMarkdown(data.Markdown) + "\n\n" + data.HelpView)
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

package views

import "math"

const (
	LabelWidth  = 26
	StatusWidth = 18

	// Screen rows: 0 header, 1 window label, 2 axis labels, 3 cursor handle.
	AxisRow      = 3
	FirstTaskRow = 4

	defaultWidth  = 110
	minTrackWidth = 24
)

// Layout fixes where the timeline track sits on screen so rendering and
// mouse hit-testing agree on every cell.
type Layout struct {
	Width int
}

func NewLayout(width int) Layout {
	if width <= 0 {
		width = defaultWidth
	}
	return Layout{Width: width}
}

// TrackLeft is the screen column of the first track cell.
func (l Layout) TrackLeft() int {
	return LabelWidth + 1
}

func (l Layout) TrackWidth() int {
	w := l.Width - LabelWidth - StatusWidth - 2
	if w < minTrackWidth {
		return minTrackWidth
	}
	return w
}

// Cell is the track cell holding pct.
func (l Layout) Cell(pct float64) int {
	tw := l.TrackWidth()
	c := int(math.Floor(pct / 100 * float64(tw)))
	return max(0, min(c, tw-1))
}

// BarCells returns the first and last cell a bar covers; every bar covers at
// least one cell.
func (l Layout) BarCells(start, width float64) (int, int) {
	tw := l.TrackWidth()
	first := l.Cell(start)
	last := int(math.Ceil((start+width)/100*float64(tw))) - 1
	last = max(first, min(last, tw-1))
	return first, last
}

// PointerX converts a screen column to the pointer coordinate used with the
// track rect: the centre of the cell.
func PointerX(col int) float64 {
	return float64(col) + 0.5
}

// TrackBounds is the track's left edge and width in screen columns.
func (l Layout) TrackBounds() (left, width float64) {
	return float64(l.TrackLeft()), float64(l.TrackWidth())
}

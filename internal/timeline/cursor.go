package timeline

// DefaultCursorPercent is where a fresh cursor sits in a new window.
const DefaultCursorPercent = 25.0

// Rect is the horizontal extent of the track a pointer moves over.
type Rect struct {
	Left  float64
	Width float64
}

// PointerPercent converts a pointer x coordinate into a clamped percent of r.
func PointerPercent(x float64, r Rect) (float64, bool) {
	if r.Width <= 0 {
		return 0, false
	}
	return clamp((x-r.Left)/r.Width*100, 0, 100), true
}

type CursorState int

const (
	CursorIdle CursorState = iota
	CursorDragging
)

// Cursor is the vertical time marker of one view. It starts idle at
// DefaultCursorPercent and only follows the pointer while dragging.
type Cursor struct {
	percent float64
	state   CursorState
}

func NewCursor() *Cursor {
	return &Cursor{percent: DefaultCursorPercent}
}

func (c *Cursor) Percent() float64 {
	return c.percent
}

func (c *Cursor) Dragging() bool {
	return c.state == CursorDragging
}

func (c *Cursor) StartDrag() {
	c.state = CursorDragging
}

// UpdateFromPointerX moves the cursor to the pointer while dragging and
// returns the resulting percent, reporting whether the cursor was moved.
func (c *Cursor) UpdateFromPointerX(x float64, r Rect) (float64, bool) {
	if c.state != CursorDragging {
		return c.percent, false
	}
	pct, ok := PointerPercent(x, r)
	if !ok {
		return c.percent, false
	}
	c.percent = pct
	return pct, true
}

func (c *Cursor) EndDrag() {
	c.state = CursorIdle
}

// Set places the cursor directly, clamped to the window.
func (c *Cursor) Set(pct float64) {
	c.percent = clamp(pct, 0, 100)
}

func (c *Cursor) Nudge(delta float64) {
	c.Set(c.percent + delta)
}

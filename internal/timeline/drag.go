package timeline

import (
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

type DragMode int

const (
	DragIdle DragMode = iota
	DragMoving
	DragResizing
)

func (m DragMode) String() string {
	switch m {
	case DragMoving:
		return "moving"
	case DragResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Mutation is the edit a drag step asks the planner to apply.
type Mutation struct {
	TaskID   string
	Mode     DragMode
	Start    time.Time
	Duration time.Duration
}

type barDrag struct {
	mode       DragMode
	pointerX   float64
	startPct   float64
	widthPct   float64
	origStart  time.Time
	origLength time.Duration
}

// DragController tracks the move and resize gestures of individual bars.
// A bar holds at most one gesture at a time.
type DragController struct {
	bars map[string]*barDrag
}

func NewDragController() *DragController {
	return &DragController{bars: make(map[string]*barDrag)}
}

// BeginResize arms a right-edge resize. It refuses when the bar is already
// being dragged.
func (c *DragController) BeginResize(t model.Task, pointerX float64, bar Bar) bool {
	return c.begin(t, DragResizing, pointerX, bar)
}

// BeginMove arms a move of the whole bar. Unscheduled tasks cannot be moved.
func (c *DragController) BeginMove(t model.Task, pointerX float64, bar Bar) bool {
	if t.StartDate == nil {
		return false
	}
	return c.begin(t, DragMoving, pointerX, bar)
}

func (c *DragController) begin(t model.Task, mode DragMode, pointerX float64, bar Bar) bool {
	if c.Mode(t.ID) != DragIdle {
		return false
	}
	d := &barDrag{mode: mode, pointerX: pointerX, startPct: bar.Start, widthPct: bar.Width, origLength: t.Duration}
	if t.StartDate != nil {
		d.origStart = *t.StartDate
	}
	c.bars[t.ID] = d
	return true
}

func (c *DragController) Mode(taskID string) DragMode {
	if d, ok := c.bars[taskID]; ok {
		return d.mode
	}
	return DragIdle
}

// Active returns the task whose bar is being dragged, if any.
func (c *DragController) Active() (string, DragMode, bool) {
	for id, d := range c.bars {
		return id, d.mode, true
	}
	return "", DragIdle, false
}

// Drag converts a pointer position into the mutation the active gesture
// implies. Resizing widens by the pointer delta and normalises the result;
// moving shifts the bar while keeping it fully inside the window.
func (c *DragController) Drag(t model.Task, pointerX float64, r Rect, w Window) (Mutation, bool) {
	d, ok := c.bars[t.ID]
	if !ok || r.Width <= 0 {
		return Mutation{}, false
	}
	delta := (pointerX - d.pointerX) / r.Width * 100
	switch d.mode {
	case DragResizing:
		base := d.widthPct
		if w.Mode == model.ViewWeekly {
			// Weekly bars are drawn at most one day wide; resize from the real length.
			base = widthFromDuration(d.origLength, w)
		}
		return Mutation{TaskID: t.ID, Mode: DragResizing, Duration: ResizeDuration(base+delta, w)}, true
	case DragMoving:
		limit := 100 - d.widthPct
		if limit < 0 {
			limit = 0
		}
		pct := clamp(d.startPct+delta, 0, limit)
		return Mutation{TaskID: t.ID, Mode: DragMoving, Start: StartFromPercent(pct, w, t.StartDate)}, true
	default:
		return Mutation{}, false
	}
}

func (c *DragController) End(taskID string) {
	delete(c.bars, taskID)
}

// ReleaseAll ends every gesture, as on a pointer release anywhere.
func (c *DragController) ReleaseAll() []string {
	ids := make([]string, 0, len(c.bars))
	for id := range c.bars {
		ids = append(ids, id)
	}
	clear(c.bars)
	return ids
}

// Cancel ends the gesture and returns the mutation restoring the value it
// was editing.
func (c *DragController) Cancel(taskID string) (Mutation, bool) {
	d, ok := c.bars[taskID]
	if !ok {
		return Mutation{}, false
	}
	delete(c.bars, taskID)
	return Mutation{TaskID: taskID, Mode: d.mode, Start: d.origStart, Duration: d.origLength}, true
}

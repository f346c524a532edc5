package schedule

import (
	"errors"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
)

// ErrNotScheduled is returned when a drag is started on a todo without
// a valid time block; the gesture is simply not initiated.
var ErrNotScheduled = errors.New("todo has no time block to drag")

// Grid maps pointer geometry onto grid minutes.
type Grid struct {
	// SlotPixels is the rendered height of one 15-minute slot.
	SlotPixels float64
}

// MinutesAt converts a vertical pixel offset from the grid top into
// snapped, day-clamped minutes.
func (g Grid) MinutesAt(offsetPx float64) int {
	if g.SlotPixels <= 0 {
		return 0
	}
	minutes := int(offsetPx / g.SlotPixels * clock.SlotMinutes)
	return clock.ClampToDay(clock.SnapToSlot(minutes))
}

type dragKind int

const (
	dragMove dragKind = iota
	dragResize
)

// Drag is one in-flight move or resize gesture. The candidate start and
// duration are recomputed on every pointer update and only committed by
// Release; intermediate values are ephemeral. A Drag ends exactly once:
// after Release, further updates and releases are no-ops.
type Drag struct {
	grid     Grid
	kind     dragKind
	todoID   string
	day      string
	start    int
	duration int
	released bool
}

// BeginMove starts a drag-to-move gesture on a scheduled todo.
func BeginMove(grid Grid, todo models.TodoItem) (*Drag, error) {
	return begin(grid, dragMove, todo)
}

// BeginResize starts a drag-to-resize gesture on a scheduled todo.
func BeginResize(grid Grid, todo models.TodoItem) (*Drag, error) {
	return begin(grid, dragResize, todo)
}

func begin(grid Grid, kind dragKind, todo models.TodoItem) (*Drag, error) {
	if !todo.Scheduled() {
		return nil, ErrNotScheduled
	}
	start, err := clock.ClockToMinutes(todo.StartTime)
	if err != nil {
		return nil, ErrNotScheduled
	}
	return &Drag{
		grid:     grid,
		kind:     kind,
		todoID:   todo.ID,
		day:      todo.Day,
		start:    start,
		duration: todo.TimeblockMinutes,
	}, nil
}

// TodoID identifies the todo being dragged.
func (d *Drag) TodoID() string { return d.todoID }

// Day is the day key of the todo being dragged.
func (d *Drag) Day() string { return d.day }

// StartMinutes is the current candidate start.
func (d *Drag) StartMinutes() int { return d.start }

// DurationMinutes is the current candidate duration.
func (d *Drag) DurationMinutes() int { return d.duration }

// Update recomputes the candidate block from the pointer's vertical
// offset relative to the grid top.
func (d *Drag) Update(offsetPx float64) {
	if d.released {
		return
	}
	pointer := d.grid.MinutesAt(offsetPx)
	switch d.kind {
	case dragMove:
		start := pointer
		if start+d.duration > clock.MinutesPerDay {
			start = clock.MinutesPerDay - d.duration
		}
		if start < 0 {
			start = 0
		}
		d.start = start
	case dragResize:
		duration := clock.SnapToSlot(pointer - d.start)
		if duration < clock.SlotMinutes {
			duration = clock.SlotMinutes
		}
		if d.start+duration > clock.MinutesPerDay {
			duration = clock.MinutesPerDay - d.start
		}
		d.duration = duration
	}
}

// Release ends the gesture and returns the final snapped start time and
// duration to commit. The second and later calls report ok=false so the
// commit happens exactly once however the gesture ends.
func (d *Drag) Release() (startTime string, durationMinutes int, ok bool) {
	if d.released {
		return "", 0, false
	}
	d.released = true
	return clock.MinutesToClock(d.start), d.duration, true
}

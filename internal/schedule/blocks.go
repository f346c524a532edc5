// Package schedule derives visual time blocks from a day's todos,
// detects overlaps, and does the snapping and clamping math behind
// drag-to-reschedule gestures on the 24-hour, 15-minute day grid.
package schedule

import (
	"fmt"
	"sort"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
)

// Block is one rectangle on the day grid.
type Block struct {
	ID              string `json:"id"`
	StartMinutes    int    `json:"start_minutes"`
	DurationMinutes int    `json:"duration_minutes"`
	Label           string `json:"label"`
	Window          string `json:"window"`
	HasConflict     bool   `json:"has_conflict"`
}

// End returns the exclusive end of the block in minutes.
func (b Block) End() int {
	return b.StartMinutes + b.DurationMinutes
}

// BuildBlocks derives the day grid's blocks from one day's todos. Only
// todos with both a start time and a positive duration participate;
// the rest stay in the plain list view. Blocks come back sorted by
// start ascending with overlapping pairs marked as conflicting.
//
// Conflict detection is a pair sweep over the sorted blocks with an
// early exit once block i ends before block j starts. That exit is only
// valid against immediately-following blocks, which is fine for
// single-day todo counts; this is deliberately not a general interval
// sweep.
func BuildBlocks(todos []models.TodoItem) []Block {
	blocks := make([]Block, 0, len(todos))
	for _, todo := range todos {
		if !todo.Scheduled() {
			continue
		}
		start, err := clock.ClockToMinutes(todo.StartTime)
		if err != nil {
			continue
		}
		blocks = append(blocks, Block{
			ID:              todo.ID,
			StartMinutes:    start,
			DurationMinutes: todo.TimeblockMinutes,
			Label:           todo.Text,
			Window:          formatWindow(start, todo.TimeblockMinutes),
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartMinutes < blocks[j].StartMinutes
	})

	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			if blocks[i].End() <= blocks[j].StartMinutes {
				break
			}
			blocks[i].HasConflict = true
			blocks[j].HasConflict = true
		}
	}

	return blocks
}

func formatWindow(start, duration int) string {
	return fmt.Sprintf("%s-%s", clock.MinutesToClock(start), clock.MinutesToClock(start+duration))
}

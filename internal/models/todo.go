package models

import "time"

const (
	// MinTodoPriority is the highest-urgency priority value
	MinTodoPriority = 1
	// MaxTodoPriority is the lowest-urgency priority value
	MaxTodoPriority = 3
)

// TodoItem is a day-scoped todo. A todo optionally carries a time block
// (start time plus duration in minutes) that places it on the day grid,
// and an explicit order index once the user has manually reordered the
// day's list.
type TodoItem struct {
	ID               string     `json:"id"`
	CreatedAt        time.Time  `json:"created_at"`
	Day              string     `json:"day"`
	Text             string     `json:"text"`
	Done             bool       `json:"done"`
	Priority         int        `json:"priority"`
	TimeblockMinutes int        `json:"timeblock_minutes,omitempty"`
	StartTime        string     `json:"start_time,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Order            *int       `json:"order,omitempty"`
	Color            string     `json:"color,omitempty"`
	Icon             string     `json:"icon,omitempty"`
}

// Scheduled reports whether the todo participates in the day grid:
// it needs both a start time and a positive duration.
func (t TodoItem) Scheduled() bool {
	return t.StartTime != "" && t.TimeblockMinutes > 0
}

// NextPriority returns the priority after one cycle step (1 -> 2 -> 3 -> 1).
func (t TodoItem) NextPriority() int {
	p := t.Priority + 1
	if p > MaxTodoPriority || p < MinTodoPriority {
		p = MinTodoPriority
	}
	return p
}

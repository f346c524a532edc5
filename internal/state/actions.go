// Package state implements the reducer-driven state store at the heart
// of the console: a pure transition function over the aggregate
// document, a defensive sanitizer for persisted blobs, and a Store that
// owns the current state and notifies subscribers after every commit.
package state

import (
	"time"

	"github.com/jarvishq/jarvis/internal/models"
)

// Action is the sum type dispatched through Reduce. Every mutation of
// the aggregate document is expressed as exactly one action. Creation
// actions carry their id and timestamp so that Reduce stays pure; the
// Store fills them in at dispatch time.
type Action interface {
	isAction()
}

// LogMood records a mood check-in for a day.
type LogMood struct {
	ID        string
	Timestamp time.Time
	Day       string
	Mood      int
	Note      string
	Tags      []models.MoodTag
}

// AddJournal records a journal entry for a day.
type AddJournal struct {
	ID        string
	Timestamp time.Time
	Day       string
	Text      string
	Prompt    models.JournalPrompt
}

// UpdateJournal merges text/prompt changes into a journal entry by id.
type UpdateJournal struct {
	Day    string
	ID     string
	Text   *string
	Prompt *models.JournalPrompt
}

// DeleteJournal removes a journal entry by id.
type DeleteJournal struct {
	Day string
	ID  string
}

// AddTodo creates a todo for a day.
type AddTodo struct {
	ID               string
	Timestamp        time.Time
	Day              string
	Text             string
	Priority         int
	TimeblockMinutes int
	StartTime        string
	Color            string
	Icon             string
}

// ToggleTodo flips a todo's done flag. Now becomes the completion
// timestamp when the todo transitions to done.
type ToggleTodo struct {
	Day string
	ID  string
	Now time.Time
}

// TodoPatch is a partial field update for a todo. Nil fields are left
// untouched.
type TodoPatch struct {
	Text             *string
	Priority         *int
	TimeblockMinutes *int
	StartTime        *string
	Color            *string
	Icon             *string
}

// UpdateTodo merges a partial field update into a todo by id.
type UpdateTodo struct {
	Day   string
	ID    string
	Patch TodoPatch
}

// UpdateTodoPriority sets a todo's priority.
type UpdateTodoPriority struct {
	Day      string
	ID       string
	Priority int
}

// UpdateTodoSchedule commits a new time block for a todo, typically at
// the end of a drag gesture.
type UpdateTodoSchedule struct {
	Day              string
	ID               string
	StartTime        string
	TimeblockMinutes int
}

// DeleteTodo removes a todo by id.
type DeleteTodo struct {
	Day string
	ID  string
}

// ReorderTodos assigns explicit order indexes to a day's todos. Todos
// not mentioned in OrderedIDs keep their relative order after the
// mentioned ones.
type ReorderTodos struct {
	Day        string
	OrderedIDs []string
}

// LogSleep records one night of sleep for a day.
type LogSleep struct {
	ID              string
	Timestamp       time.Time
	Day             string
	DurationMinutes int
	Quality         int
	StartMinutes    *int
	EndMinutes      *int
	RecoveryScore   *int
	Dreams          string
	Notes           string
}

// SetSleepSchedule replaces the singleton sleep schedule. The incoming
// schedule is sanitized because partial schedule objects flow in from
// the UI.
type SetSleepSchedule struct {
	Schedule models.SleepSchedule
}

// Hydrate replaces the entire state with a sanitized snapshot. Used
// once, at load.
type Hydrate struct {
	Snapshot models.State
}

func (LogMood) isAction()            {}
func (AddJournal) isAction()         {}
func (UpdateJournal) isAction()      {}
func (DeleteJournal) isAction()      {}
func (AddTodo) isAction()            {}
func (ToggleTodo) isAction()         {}
func (UpdateTodo) isAction()         {}
func (UpdateTodoPriority) isAction() {}
func (UpdateTodoSchedule) isAction() {}
func (DeleteTodo) isAction()         {}
func (ReorderTodos) isAction()       {}
func (LogSleep) isAction()           {}
func (SetSleepSchedule) isAction()   {}
func (Hydrate) isAction()            {}

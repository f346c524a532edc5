package state

import (
	"sync"
	"time"

	"github.com/jarvishq/jarvis/internal/models"
)

// Subscriber receives a snapshot of the state after every committed
// transition.
type Subscriber func(models.State)

// Store owns the current aggregate state. All mutation funnels through
// Dispatch, which applies the pure reducer under a mutex and then
// notifies subscribers in registration order. The typed mutation
// methods are thin wrappers that stamp ids and timestamps onto creation
// actions before dispatching.
type Store struct {
	mu      sync.Mutex
	state   models.State
	subs    map[int]Subscriber
	nextSub int

	now   func() time.Time
	newID func() string
}

// New returns a store holding the default empty state.
func New() *Store {
	return &Store{
		state: models.NewState(),
		subs:  make(map[int]Subscriber),
		now:   time.Now,
		newID: models.NewID,
	}
}

// State returns a deep-copied snapshot of the current state.
func (s *Store) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Dispatch applies an action and notifies subscribers with the
// resulting snapshot.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := cloneState(s.state)
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Subscribe registers fn to run after every committed transition and
// returns a cancel function that deregisters it. Cancel is safe to call
// more than once.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// LogMood records a mood check-in and returns the new log's id.
func (s *Store) LogMood(day string, mood int, note string, tags []models.MoodTag) string {
	id := s.newID()
	s.Dispatch(LogMood{ID: id, Timestamp: s.now(), Day: day, Mood: mood, Note: note, Tags: tags})
	return id
}

// AddJournal records a journal entry and returns its id.
func (s *Store) AddJournal(day, text string, prompt models.JournalPrompt) string {
	id := s.newID()
	s.Dispatch(AddJournal{ID: id, Timestamp: s.now(), Day: day, Text: text, Prompt: prompt})
	return id
}

// UpdateJournal merges text/prompt changes into a journal entry.
func (s *Store) UpdateJournal(day, id string, text *string, prompt *models.JournalPrompt) {
	s.Dispatch(UpdateJournal{Day: day, ID: id, Text: text, Prompt: prompt})
}

// DeleteJournal removes a journal entry.
func (s *Store) DeleteJournal(day, id string) {
	s.Dispatch(DeleteJournal{Day: day, ID: id})
}

// AddTodo creates a todo and returns its id.
func (s *Store) AddTodo(day, text string, priority int) string {
	if priority < models.MinTodoPriority || priority > models.MaxTodoPriority {
		priority = models.MaxTodoPriority
	}
	id := s.newID()
	s.Dispatch(AddTodo{ID: id, Timestamp: s.now(), Day: day, Text: text, Priority: priority})
	return id
}

// ToggleTodo flips a todo's done flag.
func (s *Store) ToggleTodo(day, id string) {
	s.Dispatch(ToggleTodo{Day: day, ID: id, Now: s.now()})
}

// UpdateTodo merges a partial field update into a todo.
func (s *Store) UpdateTodo(day, id string, patch TodoPatch) {
	s.Dispatch(UpdateTodo{Day: day, ID: id, Patch: patch})
}

// CycleTodoPriority advances a todo's priority one step (1 -> 2 -> 3 -> 1).
func (s *Store) CycleTodoPriority(day, id string) {
	s.mu.Lock()
	next := 0
	for _, t := range s.state.Todos[day] {
		if t.ID == id {
			next = t.NextPriority()
			break
		}
	}
	s.mu.Unlock()
	if next == 0 {
		return
	}
	s.Dispatch(UpdateTodoPriority{Day: day, ID: id, Priority: next})
}

// RescheduleTodo commits a new start time and duration for a todo.
func (s *Store) RescheduleTodo(day, id, startTime string, timeblockMinutes int) {
	s.Dispatch(UpdateTodoSchedule{Day: day, ID: id, StartTime: startTime, TimeblockMinutes: timeblockMinutes})
}

// DeleteTodo removes a todo.
func (s *Store) DeleteTodo(day, id string) {
	s.Dispatch(DeleteTodo{Day: day, ID: id})
}

// ReorderTodos assigns explicit order indexes to a day's todos.
func (s *Store) ReorderTodos(day string, orderedIDs []string) {
	s.Dispatch(ReorderTodos{Day: day, OrderedIDs: orderedIDs})
}

// LogSleep records one night of sleep and returns the entry's id.
func (s *Store) LogSleep(entry LogSleep) string {
	entry.ID = s.newID()
	entry.Timestamp = s.now()
	s.Dispatch(entry)
	return entry.ID
}

// SetSleepSchedule replaces the sleep schedule after sanitization.
func (s *Store) SetSleepSchedule(schedule models.SleepSchedule) {
	s.Dispatch(SetSleepSchedule{Schedule: schedule})
}

// Hydrate replaces the entire state with a sanitized snapshot.
func (s *Store) Hydrate(snapshot models.State) {
	s.Dispatch(Hydrate{Snapshot: snapshot})
}

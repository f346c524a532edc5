package state

import "github.com/jarvishq/jarvis/internal/models"

// Reduce is the pure transition function: it maps an action and the
// prior state to the next state. The input state is never mutated, and
// the same (state, action) pair always yields structurally equal
// results. Actions referencing unknown ids are no-ops.
func Reduce(s models.State, action Action) models.State {
	next := cloneState(s)

	switch a := action.(type) {
	case LogMood:
		log := models.MoodLog{
			ID:        a.ID,
			Timestamp: a.Timestamp,
			Mood:      a.Mood,
			Note:      a.Note,
			Tags:      append([]models.MoodTag(nil), a.Tags...),
		}
		next.Moods[a.Day] = prepend(next.Moods[a.Day], log)

	case AddJournal:
		entry := models.JournalEntry{
			ID:        a.ID,
			Timestamp: a.Timestamp,
			Text:      a.Text,
			Prompt:    a.Prompt,
		}
		next.Journals[a.Day] = prepend(next.Journals[a.Day], entry)

	case UpdateJournal:
		entries := next.Journals[a.Day]
		for i := range entries {
			if entries[i].ID != a.ID {
				continue
			}
			if a.Text != nil {
				entries[i].Text = *a.Text
			}
			if a.Prompt != nil {
				entries[i].Prompt = *a.Prompt
			}
			break
		}

	case DeleteJournal:
		next.Journals[a.Day] = deleteByID(next.Journals[a.Day], a.ID, func(e models.JournalEntry) string { return e.ID })

	case AddTodo:
		todo := models.TodoItem{
			ID:               a.ID,
			CreatedAt:        a.Timestamp,
			Day:              a.Day,
			Text:             a.Text,
			Priority:         a.Priority,
			TimeblockMinutes: a.TimeblockMinutes,
			StartTime:        a.StartTime,
			Color:            a.Color,
			Icon:             a.Icon,
		}
		next.Todos[a.Day] = prepend(next.Todos[a.Day], todo)

	case ToggleTodo:
		todos := next.Todos[a.Day]
		for i := range todos {
			if todos[i].ID != a.ID {
				continue
			}
			todos[i].Done = !todos[i].Done
			if todos[i].Done {
				now := a.Now
				todos[i].CompletedAt = &now
			} else {
				todos[i].CompletedAt = nil
			}
			break
		}

	case UpdateTodo:
		todos := next.Todos[a.Day]
		for i := range todos {
			if todos[i].ID != a.ID {
				continue
			}
			applyTodoPatch(&todos[i], a.Patch)
			break
		}

	case UpdateTodoPriority:
		todos := next.Todos[a.Day]
		for i := range todos {
			if todos[i].ID == a.ID {
				todos[i].Priority = a.Priority
				break
			}
		}

	case UpdateTodoSchedule:
		todos := next.Todos[a.Day]
		for i := range todos {
			if todos[i].ID == a.ID {
				todos[i].StartTime = a.StartTime
				todos[i].TimeblockMinutes = a.TimeblockMinutes
				break
			}
		}

	case DeleteTodo:
		next.Todos[a.Day] = deleteByID(next.Todos[a.Day], a.ID, func(t models.TodoItem) string { return t.ID })

	case ReorderTodos:
		reorderTodos(next.Todos[a.Day], a.OrderedIDs)

	case LogSleep:
		entry := models.SleepEntry{
			ID:              a.ID,
			Timestamp:       a.Timestamp,
			Day:             a.Day,
			DurationMinutes: a.DurationMinutes,
			Quality:         a.Quality,
			StartMinutes:    clonePtr(a.StartMinutes),
			EndMinutes:      clonePtr(a.EndMinutes),
			RecoveryScore:   clonePtr(a.RecoveryScore),
			Dreams:          a.Dreams,
			Notes:           a.Notes,
		}
		next.Sleep[a.Day] = prepend(next.Sleep[a.Day], entry)

	case SetSleepSchedule:
		next.SleepSchedule = SanitizeSchedule(a.Schedule)

	case Hydrate:
		return SanitizeState(a.Snapshot)
	}

	return next
}

func applyTodoPatch(t *models.TodoItem, p TodoPatch) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.TimeblockMinutes != nil {
		t.TimeblockMinutes = *p.TimeblockMinutes
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.Icon != nil {
		t.Icon = *p.Icon
	}
}

// reorderTodos reassigns the order field in place: mentioned ids get
// 0..n-1 in the given sequence, then every unmentioned todo gets the
// following indexes in its original relative order.
func reorderTodos(todos []models.TodoItem, orderedIDs []string) {
	mentioned := make(map[string]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		mentioned[id] = struct{}{}
	}
	nextIndex := 0
	for _, id := range orderedIDs {
		for i := range todos {
			if todos[i].ID == id {
				ord := nextIndex
				todos[i].Order = &ord
				nextIndex++
				break
			}
		}
	}
	for i := range todos {
		if _, ok := mentioned[todos[i].ID]; ok {
			continue
		}
		ord := nextIndex
		todos[i].Order = &ord
		nextIndex++
	}
}

// prepend puts the newest entry first: day lists are most-recent-first.
func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

func deleteByID[T any](list []T, id string, idOf func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

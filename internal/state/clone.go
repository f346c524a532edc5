package state

import "github.com/jarvishq/jarvis/internal/models"

// cloneState deep-copies the aggregate so Reduce can build the next
// state without touching its input. Entity structs are values; only the
// maps, the per-day slices, and the slice/pointer fields inside
// entities need copying.
func cloneState(s models.State) models.State {
	out := models.State{
		SchemaVersion: s.SchemaVersion,
		Moods:         make(map[string][]models.MoodLog, len(s.Moods)),
		Journals:      make(map[string][]models.JournalEntry, len(s.Journals)),
		Todos:         make(map[string][]models.TodoItem, len(s.Todos)),
		Sleep:         make(map[string][]models.SleepEntry, len(s.Sleep)),
		SleepSchedule: cloneSchedule(s.SleepSchedule),
	}
	for day, logs := range s.Moods {
		copied := make([]models.MoodLog, len(logs))
		for i, l := range logs {
			copied[i] = cloneMood(l)
		}
		out.Moods[day] = copied
	}
	for day, entries := range s.Journals {
		out.Journals[day] = append([]models.JournalEntry(nil), entries...)
	}
	for day, todos := range s.Todos {
		copied := make([]models.TodoItem, len(todos))
		for i, t := range todos {
			copied[i] = cloneTodo(t)
		}
		out.Todos[day] = copied
	}
	for day, entries := range s.Sleep {
		copied := make([]models.SleepEntry, len(entries))
		for i, e := range entries {
			copied[i] = cloneSleep(e)
		}
		out.Sleep[day] = copied
	}
	return out
}

func cloneMood(l models.MoodLog) models.MoodLog {
	if l.Tags != nil {
		l.Tags = append([]models.MoodTag(nil), l.Tags...)
	}
	return l
}

func cloneTodo(t models.TodoItem) models.TodoItem {
	t.CompletedAt = clonePtr(t.CompletedAt)
	t.Order = clonePtr(t.Order)
	return t
}

func cloneSleep(e models.SleepEntry) models.SleepEntry {
	e.StartMinutes = clonePtr(e.StartMinutes)
	e.EndMinutes = clonePtr(e.EndMinutes)
	e.RecoveryScore = clonePtr(e.RecoveryScore)
	return e
}

func cloneSchedule(s models.SleepSchedule) models.SleepSchedule {
	if s.Custom != nil {
		custom := make(map[int]models.ScheduleWindow, len(s.Custom))
		for d, w := range s.Custom {
			custom[d] = w
		}
		s.Custom = custom
	}
	return s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

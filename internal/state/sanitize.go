package state

import (
	"encoding/json"

	"github.com/jarvishq/jarvis/internal/models"
)

// looseState mirrors the persisted document but defers each day's list
// and the schedule to raw JSON, so one malformed day cannot reject its
// whole collection.
type looseState struct {
	SchemaVersion int                        `json:"schema_version"`
	Moods         map[string]json.RawMessage `json:"moods"`
	Journals      map[string]json.RawMessage `json:"journals"`
	Todos         map[string]json.RawMessage `json:"todos"`
	Sleep         map[string]json.RawMessage `json:"sleep"`
	SleepSchedule json.RawMessage            `json:"sleep_schedule"`
}

// Sanitize repairs an arbitrary persisted blob into a well-formed
// state. Inputs that are not a JSON object degrade to the default empty
// state; a day whose value is not an array degrades to an empty list
// without rejecting the sibling days; schedule holes are filled from
// defaults. Sanitize never fails and is idempotent.
func Sanitize(data []byte) models.State {
	out := models.NewState()

	var loose looseState
	if err := json.Unmarshal(data, &loose); err != nil {
		return out
	}

	for day, raw := range loose.Moods {
		out.Moods[day] = decodeList[models.MoodLog](raw)
	}
	for day, raw := range loose.Journals {
		out.Journals[day] = decodeList[models.JournalEntry](raw)
	}
	for day, raw := range loose.Todos {
		out.Todos[day] = decodeList[models.TodoItem](raw)
	}
	for day, raw := range loose.Sleep {
		out.Sleep[day] = decodeList[models.SleepEntry](raw)
	}

	var schedule models.SleepSchedule
	if len(loose.SleepSchedule) > 0 {
		// Decode errors leave the zero schedule, which sanitizes to defaults.
		_ = json.Unmarshal(loose.SleepSchedule, &schedule)
	}
	out.SleepSchedule = SanitizeSchedule(schedule)

	return out
}

// SanitizeState normalizes an already-typed state: nil maps become
// empty maps, nil day lists become empty lists, and the schedule is
// filled from defaults. Used on hydration snapshots and anywhere a
// partially built state flows in from a caller.
func SanitizeState(s models.State) models.State {
	out := cloneState(s)
	out.SchemaVersion = models.CurrentSchemaVersion
	if out.Moods == nil {
		out.Moods = make(map[string][]models.MoodLog)
	}
	if out.Journals == nil {
		out.Journals = make(map[string][]models.JournalEntry)
	}
	if out.Todos == nil {
		out.Todos = make(map[string][]models.TodoItem)
	}
	if out.Sleep == nil {
		out.Sleep = make(map[string][]models.SleepEntry)
	}
	for day, list := range out.Moods {
		if list == nil {
			out.Moods[day] = []models.MoodLog{}
		}
	}
	for day, list := range out.Journals {
		if list == nil {
			out.Journals[day] = []models.JournalEntry{}
		}
	}
	for day, list := range out.Todos {
		if list == nil {
			out.Todos[day] = []models.TodoItem{}
		}
	}
	for day, list := range out.Sleep {
		if list == nil {
			out.Sleep[day] = []models.SleepEntry{}
		}
	}
	out.SleepSchedule = SanitizeSchedule(out.SleepSchedule)
	return out
}

// SanitizeSchedule fills missing mode and windows from defaults while
// preserving any valid per-weekday custom override. No weekday is ever
// left without a window.
func SanitizeSchedule(s models.SleepSchedule) models.SleepSchedule {
	def := models.DefaultScheduleWindow()
	if !models.ValidScheduleMode(s.Mode) {
		s.Mode = models.ScheduleDaily
	}
	if s.Daily.IsZero() {
		s.Daily = def
	}
	if s.Weekdays.IsZero() {
		s.Weekdays = def
	}
	if s.Weekends.IsZero() {
		s.Weekends = def
	}
	custom := make(map[int]models.ScheduleWindow, 7)
	for d := 0; d < 7; d++ {
		if w, ok := s.Custom[d]; ok && !w.IsZero() {
			custom[d] = w
		} else {
			custom[d] = def
		}
	}
	s.Custom = custom
	return s
}

// decodeList decodes one day's list, degrading to an empty list when
// the raw value is not an array of the expected shape.
func decodeList[T any](raw json.RawMessage) []T {
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []T{}
	}
	return list
}

package models

// CurrentSchemaVersion is the version tag written into every persisted
// state document. Documents with older tags are upgraded on load before
// sanitization.
const CurrentSchemaVersion = 2

// State is the aggregate document: every day-keyed collection plus the
// singleton sleep schedule. It is persisted wholesale as a single JSON
// blob and replaced wholesale on every write.
type State struct {
	SchemaVersion int                       `json:"schema_version"`
	Moods         map[string][]MoodLog      `json:"moods"`
	Journals      map[string][]JournalEntry `json:"journals"`
	Todos         map[string][]TodoItem     `json:"todos"`
	Sleep         map[string][]SleepEntry   `json:"sleep"`
	SleepSchedule SleepSchedule             `json:"sleep_schedule"`
}

// NewState returns an empty well-formed state.
func NewState() State {
	return State{
		SchemaVersion: CurrentSchemaVersion,
		Moods:         make(map[string][]MoodLog),
		Journals:      make(map[string][]JournalEntry),
		Todos:         make(map[string][]TodoItem),
		Sleep:         make(map[string][]SleepEntry),
		SleepSchedule: DefaultSleepSchedule(),
	}
}

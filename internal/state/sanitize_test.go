package state

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/jarvishq/jarvis/internal/models"
)

func TestSanitizeMalformedInput(t *testing.T) {
	t.Parallel()

	def := models.NewState()

	tests := []struct {
		name string
		data string
	}{
		{name: "null", data: `null`},
		{name: "string", data: `"hello"`},
		{name: "number", data: `42`},
		{name: "array", data: `[1,2,3]`},
		{name: "empty object", data: `{}`},
		{name: "not json at all", data: `{{{{`},
		{name: "empty input", data: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Sanitize([]byte(tt.data))
			if !reflect.DeepEqual(got, def) {
				t.Errorf("Sanitize(%q) != default state:\n%+v", tt.data, got)
			}
		})
	}
}

func TestSanitizeRepairsPerDayCollections(t *testing.T) {
	t.Parallel()

	doc := `{
		"schema_version": 2,
		"todos": {
			"2024-03-05": [{"id": "a", "day": "2024-03-05", "text": "ok", "priority": 1}],
			"2024-03-06": "corrupted",
			"2024-03-07": 17
		},
		"moods": {
			"2024-03-05": {"not": "an array"}
		}
	}`

	got := Sanitize([]byte(doc))

	if len(got.Todos["2024-03-05"]) != 1 || got.Todos["2024-03-05"][0].ID != "a" {
		t.Errorf("valid day was not preserved: %+v", got.Todos["2024-03-05"])
	}
	if list := got.Todos["2024-03-06"]; list == nil || len(list) != 0 {
		t.Errorf("corrupted day should degrade to empty list, got %+v", list)
	}
	if list := got.Todos["2024-03-07"]; list == nil || len(list) != 0 {
		t.Errorf("numeric day should degrade to empty list, got %+v", list)
	}
	if list := got.Moods["2024-03-05"]; list == nil || len(list) != 0 {
		t.Errorf("non-array mood day should degrade to empty list, got %+v", list)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	t.Parallel()

	doc := `{
		"schema_version": 2,
		"todos": {"2024-03-05": [{"id": "a", "text": "x", "priority": 2}], "2024-03-06": false},
		"sleep_schedule": {"mode": "custom", "custom": {"3": {"bed_minutes": 1320, "wake_minutes": 360}}}
	}`

	once := Sanitize([]byte(doc))

	data, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	twice := Sanitize(data)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sanitize is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestSanitizeScheduleFillsDefaults(t *testing.T) {
	t.Parallel()

	custom := models.ScheduleWindow{BedMinutes: 22 * 60, WakeMinutes: 6 * 60}
	got := SanitizeSchedule(models.SleepSchedule{
		Mode:   models.ScheduleCustom,
		Custom: map[int]models.ScheduleWindow{3: custom},
	})

	if got.Mode != models.ScheduleCustom {
		t.Errorf("valid mode was not preserved: %q", got.Mode)
	}
	if got.Custom[3] != custom {
		t.Errorf("custom override dropped: %+v", got.Custom[3])
	}
	def := models.DefaultScheduleWindow()
	for d := 0; d < 7; d++ {
		if d == 3 {
			continue
		}
		if got.Custom[d] != def {
			t.Errorf("weekday %d missing default window: %+v", d, got.Custom[d])
		}
	}
	if got.Daily != def || got.Weekdays != def || got.Weekends != def {
		t.Error("missing mode windows were not defaulted")
	}
}

func TestSanitizeStateNormalizesNils(t *testing.T) {
	t.Parallel()

	var empty models.State
	got := SanitizeState(empty)

	if got.Moods == nil || got.Journals == nil || got.Todos == nil || got.Sleep == nil {
		t.Error("nil collections were not replaced")
	}
	if got.SchemaVersion != models.CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", got.SchemaVersion, models.CurrentSchemaVersion)
	}
	if len(got.SleepSchedule.Custom) != 7 {
		t.Errorf("expected 7 custom windows, got %d", len(got.SleepSchedule.Custom))
	}
}

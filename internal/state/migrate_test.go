package state

import (
	"testing"

	"github.com/jarvishq/jarvis/internal/models"
)

func TestMigrateV1StartMinutes(t *testing.T) {
	t.Parallel()

	doc := `{
		"todos": {
			"2024-03-05": [
				{"id": "a", "text": "standup", "priority": 1, "start_minutes": 570, "timeblock_minutes": 30},
				{"id": "b", "text": "untimed", "priority": 2},
				{"id": "c", "text": "bogus start", "priority": 3, "start_minutes": 9999}
			]
		}
	}`

	got := Load([]byte(doc))

	todos := got.Todos["2024-03-05"]
	if len(todos) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(todos))
	}
	byID := map[string]models.TodoItem{}
	for _, todo := range todos {
		byID[todo.ID] = todo
	}
	if byID["a"].StartTime != "09:30" {
		t.Errorf("start_minutes not converted: %q", byID["a"].StartTime)
	}
	if byID["b"].StartTime != "" {
		t.Errorf("untimed todo gained a start time: %q", byID["b"].StartTime)
	}
	if byID["c"].StartTime != "" {
		t.Errorf("out-of-range start should be dropped, got %q", byID["c"].StartTime)
	}
	if got.SchemaVersion != models.CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", got.SchemaVersion, models.CurrentSchemaVersion)
	}
}

func TestMigrateLeavesCurrentDocumentsAlone(t *testing.T) {
	t.Parallel()

	doc := `{
		"schema_version": 2,
		"todos": {"2024-03-05": [{"id": "a", "text": "x", "priority": 1, "start_time": "10:00", "timeblock_minutes": 45}]}
	}`

	got := Load([]byte(doc))
	if got.Todos["2024-03-05"][0].StartTime != "10:00" {
		t.Errorf("current-version document was rewritten: %+v", got.Todos["2024-03-05"][0])
	}
}

func TestMigratePassesGarbageThrough(t *testing.T) {
	t.Parallel()

	data := []byte(`not json`)
	if out := Migrate(data); string(out) != "not json" {
		t.Errorf("garbage should pass through unchanged, got %q", out)
	}
}

package state

import (
	"encoding/json"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/models"
)

// migration upgrades a decoded document from one schema version to the
// next. Migrations run in order until the document reaches
// models.CurrentSchemaVersion; Sanitize handles everything a migration
// does not.
type migration func(doc map[string]any)

var migrations = map[int]migration{
	1: migrateV1,
}

// Migrate upgrades a raw persisted document to the current schema
// version. Documents without a schema_version tag are treated as v1.
// Migration never fails: anything it cannot interpret is passed through
// for Sanitize to repair.
func Migrate(data []byte) []byte {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return data
	}

	version := 1
	if v, ok := doc["schema_version"].(float64); ok && int(v) > 0 {
		version = int(v)
	}

	for version < models.CurrentSchemaVersion {
		step, ok := migrations[version]
		if !ok {
			break
		}
		step(doc)
		version++
	}
	doc["schema_version"] = models.CurrentSchemaVersion

	out, err := json.Marshal(doc)
	if err != nil {
		return data
	}
	return out
}

// Load turns a raw persisted blob into a well-formed state: migrate to
// the current schema, then sanitize.
func Load(data []byte) models.State {
	return Sanitize(Migrate(data))
}

// migrateV1 rewrites v1 todos, which stored their block start as a
// start_minutes integer, to the v2 start_time clock string.
func migrateV1(doc map[string]any) {
	days, ok := doc["todos"].(map[string]any)
	if !ok {
		return
	}
	for _, v := range days {
		todos, ok := v.([]any)
		if !ok {
			continue
		}
		for _, t := range todos {
			todo, ok := t.(map[string]any)
			if !ok {
				continue
			}
			minutes, ok := todo["start_minutes"].(float64)
			delete(todo, "start_minutes")
			if !ok {
				continue
			}
			m := int(minutes)
			if m < 0 || m >= clock.MinutesPerDay {
				continue
			}
			todo["start_time"] = clock.MinutesToClock(m)
		}
	}
}

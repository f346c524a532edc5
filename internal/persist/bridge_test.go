package persist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/state"
)

// memStorage is an in-memory Storage with programmable failures.
type memStorage struct {
	mu       sync.Mutex
	data     []byte
	readErr  error
	writeErr error
	writes   int
}

func (m *memStorage) Read(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return m.data, nil
}

func (m *memStorage) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func TestBridgeHydrateLoadsDocument(t *testing.T) {
	t.Parallel()

	doc := `{"schema_version":2,"todos":{"2024-03-05":[{"id":"a","day":"2024-03-05","text":"x","priority":1}]}}`
	storage := &memStorage{data: []byte(doc)}
	store := state.New()
	b := NewBridge(store, storage, zap.NewNop())

	b.Hydrate(context.Background())

	if !b.Hydrated() {
		t.Fatal("bridge not hydrated after Hydrate")
	}
	if got := len(store.State().Todos["2024-03-05"]); got != 1 {
		t.Errorf("expected 1 hydrated todo, got %d", got)
	}
}

func TestBridgeHydrateMarksHydratedOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		storage *memStorage
	}{
		{name: "missing document", storage: &memStorage{}},
		{name: "read error", storage: &memStorage{readErr: errors.New("storage offline")}},
		{name: "corrupted document", storage: &memStorage{data: []byte("{{{")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBridge(state.New(), tt.storage, zap.NewNop())
			b.Hydrate(context.Background())
			if !b.Hydrated() {
				t.Error("bridge must report hydrated even when the load fails")
			}
		})
	}
}

func TestBridgeWritesAfterEveryChange(t *testing.T) {
	t.Parallel()

	storage := &memStorage{}
	store := state.New()
	b := NewBridge(store, storage, zap.NewNop())
	b.Hydrate(context.Background())

	store.AddTodo("2024-03-05", "persist me", 1)
	store.LogMood("2024-03-05", 7, "", nil)

	if storage.writes != 2 {
		t.Fatalf("expected 2 writes, got %d", storage.writes)
	}

	var doc models.State
	if err := json.Unmarshal(storage.data, &doc); err != nil {
		t.Fatalf("persisted document is not valid JSON: %v", err)
	}
	if len(doc.Todos["2024-03-05"]) != 1 || len(doc.Moods["2024-03-05"]) != 1 {
		t.Errorf("persisted document incomplete: %+v", doc)
	}
}

func TestBridgeWriteFailureDoesNotDisturbState(t *testing.T) {
	t.Parallel()

	storage := &memStorage{writeErr: errors.New("quota exceeded")}
	store := state.New()
	b := NewBridge(store, storage, zap.NewNop())
	b.Hydrate(context.Background())

	store.AddTodo("2024-03-05", "still here", 1)

	if got := len(store.State().Todos["2024-03-05"]); got != 1 {
		t.Errorf("in-memory state lost after write failure: %d todos", got)
	}
}

func TestBridgeCloseStopsWrites(t *testing.T) {
	t.Parallel()

	storage := &memStorage{}
	store := state.New()
	b := NewBridge(store, storage, zap.NewNop())
	b.Hydrate(context.Background())

	store.AddTodo("2024-03-05", "one", 1)
	b.Close()
	store.AddTodo("2024-03-05", "two", 1)

	if storage.writes != 1 {
		t.Errorf("expected writes to stop after Close, got %d", storage.writes)
	}
}

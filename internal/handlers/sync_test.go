package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jarvishq/jarvis/internal/middleware"
	"github.com/jarvishq/jarvis/internal/models"
)

type fakeDocuments struct {
	docs map[uuid.UUID][]byte
}

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{docs: map[uuid.UUID][]byte{}}
}

func (f *fakeDocuments) Get(_ context.Context, userID uuid.UUID) (*models.StateDocument, error) {
	doc, ok := f.docs[userID]
	if !ok {
		return nil, fmt.Errorf("failed to get state document: %w", sql.ErrNoRows)
	}
	return &models.StateDocument{
		UserID:    userID,
		Document:  json.RawMessage(doc),
		UpdatedAt: time.Now(),
	}, nil
}

func (f *fakeDocuments) Put(_ context.Context, userID uuid.UUID, document []byte) (time.Time, error) {
	f.docs[userID] = document
	return time.Now(), nil
}

func syncRequest(method string, body []byte, user *models.User) *http.Request {
	r := httptest.NewRequest(method, "/api/v1/sync/state", bytes.NewReader(body))
	if user != nil {
		r = r.WithContext(middleware.SetUserInContext(r.Context(), user))
	}
	return r
}

func TestGetState(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Email: "me@example.com"}
	docs := newFakeDocuments()
	docs.docs[user.ID] = []byte(`{"schema_version":2}`)
	h := NewSyncHandler(docs)

	t.Run("stored document", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetState(w, syncRequest("GET", nil, user))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "schema_version") {
			t.Errorf("expected the stored document in the response, got %s", w.Body.String())
		}
	})

	t.Run("no document stored", func(t *testing.T) {
		w := httptest.NewRecorder()
		other := &models.User{ID: uuid.New(), Email: "other@example.com"}
		h.GetState(w, syncRequest("GET", nil, other))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("no authenticated user", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetState(w, syncRequest("GET", nil, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestPutState(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Email: "me@example.com"}

	t.Run("stores sanitized document", func(t *testing.T) {
		docs := newFakeDocuments()
		h := NewSyncHandler(docs)

		body := []byte(`{"schema_version":2,"todos":{"2024-03-05":"garbage"}}`)
		w := httptest.NewRecorder()
		h.PutState(w, syncRequest("PUT", body, user))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}

		stored, ok := docs.docs[user.ID]
		if !ok {
			t.Fatal("expected a stored document")
		}
		var doc struct {
			SchemaVersion int                          `json:"schema_version"`
			Todos         map[string][]json.RawMessage `json:"todos"`
		}
		if err := json.Unmarshal(stored, &doc); err != nil {
			t.Fatalf("stored document is not valid JSON: %v", err)
		}
		if len(doc.Todos["2024-03-05"]) != 0 {
			t.Errorf("expected the malformed day list to be repaired to empty, got %v", doc.Todos["2024-03-05"])
		}

		var envelope struct {
			Success bool             `json:"success"`
			Data    PutStateResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if envelope.Data.UpdatedAt.IsZero() {
			t.Error("expected updated_at in the response")
		}
	})

	t.Run("malformed body is repaired, not rejected", func(t *testing.T) {
		docs := newFakeDocuments()
		h := NewSyncHandler(docs)

		w := httptest.NewRecorder()
		h.PutState(w, syncRequest("PUT", []byte(`not json at all`), user))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(docs.docs[user.ID], &doc); err != nil {
			t.Fatalf("stored document is not valid JSON: %v", err)
		}
		if _, ok := doc["schema_version"]; !ok {
			t.Error("expected a default document with schema_version")
		}
	})

	t.Run("oversized document rejected", func(t *testing.T) {
		docs := newFakeDocuments()
		h := NewSyncHandler(docs)

		big := bytes.Repeat([]byte("a"), MaxStateDocumentBytes+1)
		w := httptest.NewRecorder()
		h.PutState(w, syncRequest("PUT", big, user))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", w.Code)
		}
	})

	t.Run("no authenticated user", func(t *testing.T) {
		h := NewSyncHandler(newFakeDocuments())
		w := httptest.NewRecorder()
		h.PutState(w, syncRequest("PUT", []byte(`{}`), nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

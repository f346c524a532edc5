package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jarvishq/jarvis/internal/database"
	"github.com/jarvishq/jarvis/internal/middleware"
	"github.com/jarvishq/jarvis/internal/state"
)

// MaxStateDocumentBytes bounds the accepted state document size (4MB)
const MaxStateDocumentBytes = 4 << 20

// SyncHandler handles cross-device state sync: one JSON document per
// authenticated user, fetched and replaced wholesale, last-write-wins.
type SyncHandler struct {
	documents database.StateDocumentRepositoryInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(documents database.StateDocumentRepositoryInterface) *SyncHandler {
	return &SyncHandler{documents: documents}
}

// RegisterRoutes registers sync routes on the given router
// The router should already be behind auth middleware
func (h *SyncHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/state", h.GetState).Methods("GET")
	r.HandleFunc("/state", h.PutState).Methods("PUT")
}

// PutStateResponse acknowledges a stored document
type PutStateResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
}

// GetState returns the caller's state document
func (h *SyncHandler) GetState(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	doc, err := h.documents.Get(r.Context(), user.ID)
	if err != nil {
		// The repository wraps sql.ErrNoRows, so errors.Is will unwrap and check
		if errors.Is(err, sql.ErrNoRows) {
			respondJSONError(w, http.StatusNotFound, "Not Found", "No state document stored for this account")
			return
		}
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to load state document")
		return
	}

	respondJSON(w, http.StatusOK, doc)
}

// PutState replaces the caller's state document. The document is
// migrated and sanitized server-side before storage so a malformed
// upload can never poison later pulls.
func (h *SyncHandler) PutState(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxStateDocumentBytes+1))
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Failed to read request body")
		return
	}
	if len(body) > MaxStateDocumentBytes {
		respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", "State document exceeds size limit")
		return
	}

	sanitized, err := json.Marshal(state.Load(body))
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to encode state document")
		return
	}

	updatedAt, err := h.documents.Put(r.Context(), user.ID, sanitized)
	if err != nil {
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to store state document")
		return
	}

	respondJSON(w, http.StatusOK, PutStateResponse{UpdatedAt: updatedAt})
}

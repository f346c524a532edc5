package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jarvishq/jarvis/internal/models"
)

// StateDocumentRepository handles the per-user synced state blob.
// One row per user, replaced wholesale on every put.
type StateDocumentRepository struct {
	db *DB
}

// NewStateDocumentRepository creates a new state document repository
func NewStateDocumentRepository(db *DB) *StateDocumentRepository {
	return &StateDocumentRepository{db: db}
}

// Get retrieves a user's state document
func (r *StateDocumentRepository) Get(ctx context.Context, userID uuid.UUID) (*models.StateDocument, error) {
	doc := &models.StateDocument{}

	query := `
		SELECT user_id, document, updated_at
		FROM state_documents
		WHERE user_id = $1
	`

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&doc.UserID,
		&doc.Document,
		&doc.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("state document not found: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state document: %w", err)
	}

	return doc, nil
}

// Put replaces a user's state document, last-write-wins, and returns
// the new updated_at
func (r *StateDocumentRepository) Put(ctx context.Context, userID uuid.UUID, document []byte) (time.Time, error) {
	query := `
		INSERT INTO state_documents (user_id, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, userID, document, time.Now()).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to put state document: %w", err)
	}

	return updatedAt, nil
}

package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jarvishq/jarvis/internal/models"
)

// UserRepositoryInterface defines the interface for user repository operations
// This interface enables better testability by allowing mock implementations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// StateDocumentRepositoryInterface defines the interface for state document repository operations
type StateDocumentRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.StateDocument, error)
	Put(ctx context.Context, userID uuid.UUID, document []byte) (time.Time, error)
}

// Ensure concrete types implement the interfaces
var (
	_ UserRepositoryInterface          = (*UserRepository)(nil)
	_ SessionRepositoryInterface       = (*SessionRepository)(nil)
	_ StateDocumentRepositoryInterface = (*StateDocumentRepository)(nil)
)

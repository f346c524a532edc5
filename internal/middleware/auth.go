package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jarvishq/jarvis/internal/database"
	"github.com/jarvishq/jarvis/internal/models"
)

type contextKey string

const (
	userContextKey    contextKey = "user"
	sessionContextKey contextKey = "session"
)

// UserFromContext extracts the user from the request context
func UserFromContext(r *http.Request) *models.User {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SessionFromContext extracts the bearer session token from the request
// context
func SessionFromContext(r *http.Request) string {
	token, _ := r.Context().Value(sessionContextKey).(string)
	return token
}

// Auth creates authentication middleware that resolves opaque bearer
// session tokens against the session store
func Auth(sessions database.SessionRepositoryInterface, users database.UserRepositoryInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}

			token := parts[1]
			ctx := r.Context()

			session, err := sessions.GetByToken(ctx, token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}
			if session.Expired(time.Now()) {
				// Expired sessions are removed lazily on next use
				if err := sessions.Delete(ctx, token); err != nil {
					log.Printf("Failed to delete expired session: %v", err)
				}
				respondError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			user, err := users.GetByID(ctx, session.UserID)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			ctx = context.WithValue(ctx, userContextKey, user)
			ctx = context.WithValue(ctx, sessionContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"success": false,
		"error":   message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

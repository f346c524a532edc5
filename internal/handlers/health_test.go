package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeRedisPinger struct {
	err error
}

func (f *fakeRedisPinger) Ping(ctx context.Context) error {
	return f.err
}

func TestHealthCheckBasicMode(t *testing.T) {
	t.Parallel()

	// Basic mode never touches the database, so a nil DB is fine here
	h := NewHealthChecker(nil)

	r := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	h.HealthCheck(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %s", response.Status)
	}
	if response.Timestamp == "" {
		t.Error("Expected a timestamp")
	}
	if response.Checks != nil {
		t.Errorf("Expected no checks in basic mode, got %v", response.Checks)
	}
}

func TestHealthCheckExtendedMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		redis          RedisPinger
		expectedStatus string
		expectedCode   int
		expectedRedis  string
	}{
		{
			name:           "healthy redis",
			redis:          &fakeRedisPinger{},
			expectedStatus: "healthy",
			expectedCode:   http.StatusOK,
			expectedRedis:  "healthy",
		},
		{
			name:           "failing redis",
			redis:          &fakeRedisPinger{err: errors.New("connection refused")},
			expectedStatus: "unhealthy",
			expectedCode:   http.StatusServiceUnavailable,
			expectedRedis:  "unhealthy: connection refused",
		},
		{
			name:           "redis not configured",
			redis:          nil,
			expectedStatus: "healthy",
			expectedCode:   http.StatusOK,
			expectedRedis:  "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthCheckerWithDeps(nil, tt.redis)

			r := httptest.NewRequest("GET", "/healthz?mode=extended", nil)
			w := httptest.NewRecorder()
			h.HealthCheck(w, r)

			if w.Code != tt.expectedCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedCode)
			}

			var response HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response.Status != tt.expectedStatus {
				t.Errorf("Expected status %q, got %q", tt.expectedStatus, response.Status)
			}
			if got := response.Checks["database"]; got != "not configured" {
				t.Errorf("Expected database check 'not configured', got %q", got)
			}
			if got := response.Checks["redis"]; got != tt.expectedRedis {
				t.Errorf("Expected redis check %q, got %q", tt.expectedRedis, got)
			}
		})
	}
}

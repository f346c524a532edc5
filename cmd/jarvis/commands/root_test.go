package commands

import (
	"testing"

	"github.com/jarvishq/jarvis/internal/models"
	"github.com/jarvishq/jarvis/internal/persist"
)

func TestOpenStorage(t *testing.T) {
	t.Run("defaults to file storage", func(t *testing.T) {
		t.Setenv(redisURLEnvVar, "")

		storage, err := openStorage(t.TempDir())
		if err != nil {
			t.Fatalf("openStorage failed: %v", err)
		}
		if _, ok := storage.(*persist.FileStorage); !ok {
			t.Errorf("Expected *persist.FileStorage, got %T", storage)
		}
	})

	t.Run("selects redis storage when URL is set", func(t *testing.T) {
		t.Setenv(redisURLEnvVar, "redis://localhost:6379/0")

		storage, err := openStorage(t.TempDir())
		if err != nil {
			t.Fatalf("openStorage failed: %v", err)
		}
		if _, ok := storage.(*persist.RedisStorage); !ok {
			t.Errorf("Expected *persist.RedisStorage, got %T", storage)
		}
	})

	t.Run("rejects a malformed redis URL", func(t *testing.T) {
		t.Setenv(redisURLEnvVar, "not-a-url::/")

		if _, err := openStorage(t.TempDir()); err == nil {
			t.Error("Expected an error for a malformed redis URL")
		}
	})
}

func TestResolveDay(t *testing.T) {
	t.Parallel()

	t.Run("empty defaults to today", func(t *testing.T) {
		t.Parallel()

		day, err := resolveDay("")
		if err != nil {
			t.Fatalf("resolveDay failed: %v", err)
		}
		if day == "" {
			t.Error("Expected a non-empty day key")
		}
	})

	t.Run("accepts a valid day key", func(t *testing.T) {
		t.Parallel()

		day, err := resolveDay("2024-03-05")
		if err != nil {
			t.Fatalf("resolveDay failed: %v", err)
		}
		if day != "2024-03-05" {
			t.Errorf("Expected 2024-03-05, got %s", day)
		}
	})

	t.Run("rejects a malformed day", func(t *testing.T) {
		t.Parallel()

		if _, err := resolveDay("03/05/2024"); err == nil {
			t.Error("Expected an error for a malformed day")
		}
	})
}

func TestParsePrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected models.JournalPrompt
		wantErr  bool
	}{
		{name: "empty defaults to free", input: "", expected: models.PromptFree},
		{name: "morning", input: "morning", expected: models.PromptMorning},
		{name: "priority", input: "priority", expected: models.PromptPriority},
		{name: "unknown prompt", input: "evening", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := parsePrompt(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePrompt failed: %v", err)
			}
			if p != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, p)
			}
		})
	}
}

// Package commands implements the jarvis CLI. Every mutating command
// opens the local state file through the persistence bridge, dispatches
// against the store, and relies on the bridge to write the file back
// before the command returns.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jarvishq/jarvis/internal/clock"
	"github.com/jarvishq/jarvis/internal/config"
	"github.com/jarvishq/jarvis/internal/logger"
	"github.com/jarvishq/jarvis/internal/persist"
	"github.com/jarvishq/jarvis/internal/state"
	"github.com/jarvishq/jarvis/internal/validation"
)

// redisURLEnvVar selects a Redis-backed state document instead of the
// local file when set, letting multiple machines share one store.
const redisURLEnvVar = "JARVIS_REDIS_URL"

// openStorage returns the storage backend for the state document:
// Redis when JARVIS_REDIS_URL is set, otherwise a file under dataDir.
func openStorage(dataDir string) (persist.Storage, error) {
	if redisURL := os.Getenv(redisURLEnvVar); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", redisURLEnvVar, err)
		}
		return persist.NewRedisStorage(redis.NewClient(opts), persist.DocumentKey), nil
	}
	return persist.NewFileStorage(persist.DefaultPath(dataDir)), nil
}

// withStore opens the local state, runs fn against the store, and
// closes the bridge. Mutations made inside fn are persisted before
// withStore returns because the bridge saves synchronously on every
// dispatch.
func withStore(fn func(store *state.Store) error) error {
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	log, err := logger.NewDevelopmentLogger(false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	storage, err := openStorage(dataDir)
	if err != nil {
		return err
	}

	store := state.New()
	bridge := persist.NewBridge(store, storage, log)
	defer bridge.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	bridge.Hydrate(ctx)

	return fn(store)
}

// resolveDay turns the --day flag value into a day key, defaulting to
// today.
func resolveDay(day string) (string, error) {
	if day == "" {
		return clock.DayKey(time.Now()), nil
	}
	if err := validation.Validate.Var(day, "day_key"); err != nil {
		return "", fmt.Errorf("invalid --day %q: expected YYYY-MM-DD", day)
	}
	return day, nil
}

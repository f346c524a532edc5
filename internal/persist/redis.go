package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps the state document in a single Redis key. Used
// when several consoles on one network share a store without going
// through the sync server.
type RedisStorage struct {
	client *redis.Client
	key    string
}

// NewRedisStorage returns storage backed by key on the given client.
// An empty key falls back to DocumentKey.
func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	if key == "" {
		key = DocumentKey
	}
	return &RedisStorage{client: client, key: key}
}

func (s *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read state document: %w", err)
	}
	return data, nil
}

func (s *RedisStorage) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state document: %w", err)
	}
	return nil
}

package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
)

// Store implements repository.KV on top of Redis. Cart payloads have no
// expiry: a cart lives until it is cleared or the key is deleted externally.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis-backed key-value store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("key %q: %w", key, apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

// Set stores value under key with no TTL.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

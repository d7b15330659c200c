package memory

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/Guilhermegg-06/ELDEPARFUM/pkg/errors"
)

// Store is an in-memory implementation of repository.KV. It backs the
// `memory` cart backend and test fixtures. Thread-safe via sync.RWMutex.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore creates an empty in-memory key-value store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Get retrieves the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, apperrors.ErrNotFound)
	}
	return val, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

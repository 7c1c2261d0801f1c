package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value collaborator every repository persists through.
// Implementations must be safe for concurrent use. Delete of a missing key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys returns every stored key that starts with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns a process-local Store. Nothing survives a restart.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	s.data[key] = v
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys, nil
}

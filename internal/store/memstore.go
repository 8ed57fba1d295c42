package store

import (
	"context"
	"sync"
)

// MemStore is an in-process store used by tests and the memory backend.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Load returns the snapshot for the key.
func (s *MemStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

// Apply commits the batch under the store lock.
func (s *MemStore) Apply(ctx context.Context, batch *Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kv := range batch.Sets() {
		cp := make([]byte, len(kv.Value))
		copy(cp, kv.Value)
		s.data[kv.Key] = cp
	}
	for _, key := range batch.Deletes() {
		delete(s.data, key)
	}
	return nil
}

// Close is a no-op.
func (s *MemStore) Close() error {
	return nil
}

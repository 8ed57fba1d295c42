package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists all snapshots in a single JSON document. Apply rewrites
// the document through a temp file and rename, so a batch either lands whole
// or not at all.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore prepares a file-backed store at the given path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the current snapshot for the key from disk.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := state[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Apply merges the batch into the document and rewrites it atomically.
func (s *FileStore) Apply(ctx context.Context, batch *Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	for _, kv := range batch.Sets() {
		state[kv.Key] = json.RawMessage(kv.Value)
	}
	for _, key := range batch.Deletes() {
		delete(state, key)
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write store document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit store document: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between operations.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read store document: %w", err)
	}

	state := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt document is treated as absent state; repositories fall
		// back to their documented defaults.
		return map[string]json.RawMessage{}, nil
	}
	return state, nil
}

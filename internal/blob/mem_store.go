package blob

import (
	"context"
	"sync"

	"vault-tracker/internal/errors"
)

// MemStore keeps blobs in memory. It is used by tests and by callers that
// want a throwaway tracking database.
type MemStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string][]byte)}
}

func (s *MemStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *MemStore) ReadBinary(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[path]
	if !ok {
		return nil, errors.NewNotFoundError("blob", path)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStore) WriteBinary(_ context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), data...)
	return nil
}

package blob

import (
	"context"
	"sync"
)

// MemoryStore is a thread-safe in-memory backend for testing and
// development.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemory returns a ready-to-use MemoryStore holding no document.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ErrNotExist
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

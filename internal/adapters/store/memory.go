package store

import (
	"context"
	"sync"

	"github.com/layensweets/site/internal/domain"
)

// MemoryKV backs the offline/default-data mode and tests. Contents are lost
// on restart.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

func (s *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (s *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	if len(value) > MaxPayloadBytes {
		return domain.ErrPayloadTooLarge
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.data[key] = cp
	s.mu.Unlock()
	return nil
}

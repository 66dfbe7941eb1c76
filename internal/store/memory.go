package store

import (
	"context"
	"sync"
)

// MemoryStore keeps preferences in process memory. Values are lost on restart.
type MemoryStore struct {
	values map[string]map[string]string // namespace -> key -> value
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]map[string]string)}
}

// Get implements KeyValueStore.
func (s *MemoryStore) Get(_ context.Context, namespace, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[namespace][key]
	return v, ok, nil
}

// Set implements KeyValueStore.
func (s *MemoryStore) Set(_ context.Context, namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.values[namespace]
	if !ok {
		ns = make(map[string]string)
		s.values[namespace] = ns
	}
	ns[key] = value
	return nil
}

// Close implements KeyValueStore.
func (s *MemoryStore) Close() error {
	return nil
}

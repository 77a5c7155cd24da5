package otp

import (
	"context"
	"sync"
)

// MemoryStore keeps pending codes in a process-local map. Lost on
// restart, which is acceptable for the short life of a code.
type MemoryStore struct {
	mu    sync.Mutex
	codes map[string]string
}

// NewMemoryStore returns an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codes: make(map[string]string)}
}

func (s *MemoryStore) Issue(_ context.Context, key string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.codes[key] = code
	s.mu.Unlock()
	return code, nil
}

func (s *MemoryStore) Verify(_ context.Context, key, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.codes[key]
	if !ok || stored != code {
		return false, nil
	}
	delete(s.codes, key)
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.codes, key)
	s.mu.Unlock()
	return nil
}

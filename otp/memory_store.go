package otp

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"
)

type memoryEntry struct {
	code      string
	attempts  int
	expiresAt time.Time
}

// MemoryStore is a process-local Store used in tests and when Redis is not
// configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry

	Now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		Now:     time.Now,
	}
}

func (s *MemoryStore) Put(ctx context.Context, key, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &memoryEntry{
		code:      code,
		expiresAt: s.Now().Add(CodeTTL),
	}
	return nil
}

func (s *MemoryStore) Verify(ctx context.Context, key, code string) (VerifyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || s.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return VerifyResult{Expired: true}, nil
	}

	if subtle.ConstantTimeCompare([]byte(entry.code), []byte(code)) == 1 {
		delete(s.entries, key)
		return VerifyResult{Ok: true}, nil
	}

	entry.attempts++
	if entry.attempts >= MaxAttempts {
		delete(s.entries, key)
		return VerifyResult{AttemptsExhausted: true}, nil
	}
	return VerifyResult{AttemptsLeft: MaxAttempts - entry.attempts}, nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if s.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the best score in memory. It is used when no database
// is configured.
type MemoryStore struct {
	mu   sync.Mutex
	best *HighScore
	n    int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the best saved score, or nil.
func (s *MemoryStore) Load(_ context.Context) (*HighScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.best == nil {
		return nil, nil
	}
	hs := *s.best
	return &hs, nil
}

// Save records hs, keeping it only if it beats the current best.
func (s *MemoryStore) Save(_ context.Context, hs *HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	if hs.Beats(s.best) {
		saved := *hs
		s.best = &saved
	}
	return nil
}

// Saves returns how many scores were saved.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

package db

import (
	"context"
	"sync"

	"github.com/jsphweid/harmondrill/model"
)

// HistoryStore keeps every chord a drill session displayed, in order.
type HistoryStore interface {
	Append(ctx context.Context, entry model.HistoryEntry) error
	List(ctx context.Context, sessionID string) ([]model.HistoryEntry, error)
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]model.HistoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]model.HistoryEntry)}
}

func (s *MemoryStore) Append(_ context.Context, entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.SessionID] = append(s.entries[entry.SessionID], entry)
	return nil
}

func (s *MemoryStore) List(_ context.Context, sessionID string) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]model.HistoryEntry, len(s.entries[sessionID]))
	copy(res, s.entries[sessionID])
	return res, nil
}

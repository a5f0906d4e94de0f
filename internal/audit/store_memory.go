package audit

import (
	"context"
	"sync"
)

// Store is an append-only audit sink.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// MemoryStore keeps a bounded in-process event log. It backs the dev setup
// and tests; production adds the Kafka sink alongside it.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
	limit  int
}

func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = 1024
	}
	return &MemoryStore{limit: limit}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.limit {
		s.events = s.events[len(s.events)-s.limit:]
	}
	return nil
}

// List returns a copy of the retained events.
func (s *MemoryStore) List() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps window counters in a mutex-guarded map. Counters live
// only as long as the process; expired windows are pruned opportunistically
// on access.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]*windowEntry
}

type windowEntry struct {
	count   int64
	resetAt time.Time
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

// Incr implements Store. The window starts at the first request and resets
// strictly after it elapses.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	if e == nil || !now.Before(e.resetAt) {
		e = &windowEntry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++

	s.prune(now)
	return e.count, nil
}

// prune drops expired windows. Called under the lock.
func (s *MemoryStore) prune(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.resetAt) {
			delete(s.entries, k)
		}
	}
}

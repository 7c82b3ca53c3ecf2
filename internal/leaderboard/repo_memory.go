package leaderboard

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repository for tests and ephemeral runs.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Append(_ context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *MemoryRepo) Top(_ context.Context, cat Category, limit int) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Category == cat {
			matched = append(matched, e)
		}
	}
	return rank(cat, matched, limit), nil
}

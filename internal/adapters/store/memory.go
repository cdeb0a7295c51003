package store

import (
	"context"
	"sync"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

type memoryEntry struct {
	params  domain.TrackingParams
	savedAt time.Time
}

// MemoryStore is the single-process tracking store. It holds records until
// a terminal webhook deletes them or the cleanup worker reaps them; it
// loses everything on restart, which is why charges also carry the
// tracking block in their metadata.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Save(ctx context.Context, orderID string, params domain.TrackingParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[orderID] = memoryEntry{
		params:  params,
		savedAt: time.Now(),
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, orderID string) (domain.TrackingParams, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[orderID]
	if !ok {
		return domain.TrackingParams{}, false, nil
	}
	return entry.params, true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, orderID)
	return nil
}

// DeleteExpired drops entries older than the retention window. Orders whose
// terminal webhook never arrives would otherwise accumulate forever.
func (s *MemoryStore) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for orderID, entry := range s.entries {
		if entry.savedAt.Before(cutoff) {
			delete(s.entries, orderID)
			removed++
		}
	}
	return removed, nil
}

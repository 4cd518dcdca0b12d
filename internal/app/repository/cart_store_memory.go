package repository

import (
	"context"
	"sync"
	"time"

	"github.com/pehchaan/storefront-backend/internal/app/model"
)

type memoryEntry struct {
	payload   []byte
	updatedAt time.Time
}

// MemoryCartStore is a map-backed snapshot store for tests and local
// development. It runs payloads through the same codec as the persistent
// backends so decode behavior matches.
type MemoryCartStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryCartStore) Load(ctx context.Context, cartID string) (model.Cart, error) {
	s.mu.RLock()
	entry, ok := s.entries[cartID]
	s.mu.RUnlock()

	if !ok {
		return model.Cart{}, nil
	}
	return decodeCart(cartID, entry.payload), nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cartID string, cart model.Cart) error {
	payload, err := encodeCart(cart)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[cartID] = memoryEntry{payload: payload, updatedAt: time.Now()}
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	delete(s.entries, cartID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for id, entry := range s.entries {
		if entry.updatedAt.Before(cutoff) {
			delete(s.entries, id)
			purged++
		}
	}
	return purged, nil
}

// SaveRaw stores an arbitrary payload, bypassing the codec. Tests use it to
// simulate corrupted snapshots.
func (s *MemoryCartStore) SaveRaw(cartID string, payload []byte) {
	s.mu.Lock()
	s.entries[cartID] = memoryEntry{payload: payload, updatedAt: time.Now()}
	s.mu.Unlock()
}

package cache

import (
	"sync"
	"time"
)

// entry holds a cached value with an optional expiry.
// A zero expireAt means the entry never expires on its own.
type entry struct {
	value    interface{}
	expireAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && now.After(e.expireAt)
}

// MemoryStore is an in-process cache with whole-store reset. Values are
// stored as-is; callers must not mutate what they put in or get out.
type MemoryStore struct {
	mu       sync.RWMutex
	entries  map[string]entry
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a cache store. A zero ttl disables per-entry expiry,
// leaving Reset as the only way entries leave the store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:  make(map[string]entry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	if ttl > 0 {
		go s.sweep()
	}

	return s
}

// Get returns the cached value for key, if present and not expired
func (s *MemoryStore) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || e.expired(time.Now()) {
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key, replacing any previous entry
func (s *MemoryStore) Set(key string, value interface{}) {
	e := entry{value: value}
	if s.ttl > 0 {
		e.expireAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

// Reset discards every entry in the store
func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
	return nil
}

// Len returns the number of entries currently held, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stop terminates the background sweep goroutine
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// sweep periodically removes expired entries so a quiet process does not
// hold dead result sets in memory
func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, e := range s.entries {
				if e.expired(now) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

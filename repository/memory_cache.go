package repository

import (
	"context"
	"sync"
	"time"
)

const memorySweepInterval = 10 * time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is an in-process CacheRepository used when no Redis address is
// configured, and in tests. Expired entries are dropped on read and by a
// periodic sweep.
type MemoryCache struct {
	mu        sync.RWMutex
	data      map[string]memoryEntry
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache() *MemoryCache {
	m := newMemoryCache(time.Now)
	go m.sweepLoop(memorySweepInterval)
	return m
}

func newMemoryCache(now func() time.Time) *MemoryCache {
	return &MemoryCache{
		data:      make(map[string]memoryEntry),
		now:       now,
		stopSweep: make(chan struct{}),
	}
}

func (m *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep removes every expired entry, read or not.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		if cur, ok := m.data[key]; ok && cur.expiresAt.Equal(entry.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close stops the sweep loop. Safe to call more than once.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopSweep) })
	return nil
}

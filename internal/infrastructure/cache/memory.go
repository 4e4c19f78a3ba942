package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore is an in-process Cache used when Redis is not configured
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	gens  map[string]int64
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store and starts its janitor
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		gens:  make(map[string]int64),
		stop:  make(chan struct{}),
	}

	go store.cleanupExpired(cleanupInterval)

	return store
}

// SetJSON stores the encoded value with expiration
func (ms *MemoryStore) SetJSON(_ context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem{
		value:      b,
		expireTime: time.Now().Add(ttl),
	}
	return nil
}

// GetJSON decodes the value into dst; expired or missing keys are misses
func (ms *MemoryStore) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	ms.mu.RLock()
	item, exists := ms.items[key]
	ms.mu.RUnlock()

	if !exists || time.Now().After(item.expireTime) {
		return false, nil
	}
	if err := json.Unmarshal(item.value, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Del removes keys
func (ms *MemoryStore) Del(_ context.Context, keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, key := range keys {
		delete(ms.items, key)
	}
	return nil
}

// Generation reads a counter; counters never expire
func (ms *MemoryStore) Generation(_ context.Context, key string) (int64, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.gens[key], nil
}

// Bump increments a counter
func (ms *MemoryStore) Bump(_ context.Context, key string) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.gens[key]++
	return ms.gens[key], nil
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() {
	ms.once.Do(func() { close(ms.stop) })
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.mu.Lock()
			now := time.Now()
			for key, item := range ms.items {
				if now.After(item.expireTime) {
					delete(ms.items, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}

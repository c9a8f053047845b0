package cache

import (
	"sync"
	"time"

	"pricebook/internal/domain"
)

type memoryEntry struct {
	products []domain.Product
	expires  time.Time
}

// Memory is a mutex-guarded in-process query cache. It is the default
// backend; entries expire after the configured TTL and the whole cache is
// cleared on every successful import.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

// NewMemory creates an in-memory cache. A ttl of 0 means entries never
// expire on their own.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(key string) ([]domain.Product, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.products, true
}

func (m *Memory) Set(key string, products []domain.Product) {
	var expires time.Time
	if m.ttl > 0 {
		expires = time.Now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{products: products, expires: expires}
	m.mu.Unlock()
}

func (m *Memory) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
}

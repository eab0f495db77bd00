package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Store with a fixed TTL per entry. A zero TTL
// disables expiry.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && !e.expiresAt.After(now) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if m.ttl > 0 {
		expiresAt = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: expiresAt}
	m.mu.Unlock()
}

func (m *Memory) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

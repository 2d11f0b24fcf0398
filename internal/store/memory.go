// internal/store/memory.go
//
// Browser-style key/value storage backends for visitor state.
//
// A Store mirrors the shape of the browser's localStorage: named string
// entries, read and overwritten whole. The favorites package keeps its
// JSON-encoded list in one entry.
//
// This file holds the interface and the in-memory implementation:
//   - Map-backed, concurrency-safe via RWMutex.
//   - State is lost when the process exits.
//   - Missing keys are reported with ok=false, not an error.

package store

import (
	"context"
	"sync"
)

// Store persists named string values.
// Implementations may be backed by memory (this file), SQLite, cookies, etc.
type Store interface {
	// GetItem returns the value for key. ok is false when nothing is stored.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards items
	items map[string]string // keyed by entry name
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{items: make(map[string]string)}
}

// GetItem looks up key.
func (m *memory) GetItem(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem adds or replaces key.
func (m *memory) SetItem(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// Package keystore persists the single Gemini API key a user configures.
package keystore

import (
	"context"
	"strings"
	"sync"
)

// StorageKey is the name the key is stored under, in sessions and as the
// default file name.
const StorageKey = "gemini_api_key"

// KeyStore loads, saves and removes the API key. Load returns "" when no key
// is configured. Save ignores keys that are blank after trimming.
type KeyStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
	Remove(ctx context.Context) error
}

func normalize(key string) (string, bool) {
	key = strings.TrimSpace(key)
	return key, key != ""
}

// MemoryStore keeps the key in process memory.
type MemoryStore struct {
	mu  sync.Mutex
	key string
}

// NewMemoryStore returns a store preloaded with key.
func NewMemoryStore(key string) *MemoryStore {
	k, _ := normalize(key)
	return &MemoryStore{key: k}
}

func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key, nil
}

func (m *MemoryStore) Save(_ context.Context, key string) error {
	k, ok := normalize(key)
	if !ok {
		return nil
	}
	m.mu.Lock()
	m.key = k
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Remove(context.Context) error {
	m.mu.Lock()
	m.key = ""
	m.mu.Unlock()
	return nil
}

package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by KV.Get for a key that was never set.
var ErrNotFound = errors.New("storage: key not found")

//go:generate go tool mockgen -destination=./mocks/kv_mock.go -package=mocks . KV

// KV is a string key/value store.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is a process-local KV. The zero value is ready to use.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value for key.
func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

var (
	_ KV = (*MemoryKV)(nil)
	_ KV = (*Store)(nil)
	_ KV = (*RedisKV)(nil)
)

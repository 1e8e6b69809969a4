package storage

import (
	"fmt"
	"sync"
)

// Memory is a concurrency-safe in-memory KV used by tests and benchmarks.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte

	// FailWrites makes every write return an error, for testing how
	// callers surface storage failures.
	FailWrites bool
}

var _ KV = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", key, ErrKeyNotFound)
	}
	return append([]byte(nil), value...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("set %s: simulated write failure", key)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) SetMulti(values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("set multi: simulated write failure")
	}
	for key, value := range values {
		m.values[key] = append([]byte(nil), value...)
	}
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("delete %s: simulated write failure", key)
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }

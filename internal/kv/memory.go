package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Fail makes every later call return the
// given error until Recover is called.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	fail   error
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, false, unavailable("get", key, m.fail)
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return unavailable("set", key, m.fail)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return unavailable("delete", key, m.fail)
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Fail(err error) {
	m.mu.Lock()
	m.fail = err
	m.mu.Unlock()
}

func (m *Memory) Recover() {
	m.Fail(nil)
}

package blobstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsettings/internal/common"
)

type memoryEntry struct {
	value     []byte
	expiresAt *time.Time
}

// Memory implements Store in process memory.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]memoryEntry
	closed bool
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]memoryEntry), now: time.Now}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, common.ErrorClosed
	}

	e, ok := m.data[key]
	if !ok || expired(e.expiresAt, m.now()) {
		return nil, common.ErrorNotFound
	}
	return slices.Clone(e.value), nil
}

func (m *Memory) Insert(ctx context.Context, key string, payload []byte, expiry *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return common.ErrorClosed
	}

	var exp *time.Time
	if expiry != nil {
		t := *expiry
		exp = &t
	}
	m.data[key] = memoryEntry{value: slices.Clone(payload), expiresAt: exp}
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return common.ErrorClosed
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, common.ErrorClosed
	}

	now := m.now()
	keys := make([]string, 0, len(m.data))
	for k, e := range m.data {
		if !expired(e.expiresAt, now) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.data = nil
	return nil
}

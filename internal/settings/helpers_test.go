package settings

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gophsettings/internal/blobstore"
)

// countingStore wraps a Memory store, counts calls and can fail per key.
type countingStore struct {
	*blobstore.Memory

	gets    atomic.Int32
	inserts atomic.Int32

	mu         sync.Mutex
	failGet    map[string]error
	failInsert map[string]error
	expiries   map[string]*time.Time
}

func newCountingStore() *countingStore {
	return &countingStore{
		Memory:     blobstore.NewMemory(),
		failGet:    make(map[string]error),
		failInsert: make(map[string]error),
		expiries:   make(map[string]*time.Time),
	}
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets.Add(1)
	c.mu.Lock()
	err := c.failGet[key]
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.Memory.Get(ctx, key)
}

func (c *countingStore) Insert(ctx context.Context, key string, payload []byte, expiry *time.Time) error {
	c.inserts.Add(1)
	c.mu.Lock()
	err := c.failInsert[key]
	c.expiries[key] = expiry
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.Memory.Insert(ctx, key, payload, expiry)
}

func (c *countingStore) reset() {
	c.gets.Store(0)
	c.inserts.Store(0)
}

type level int

const (
	levelLow level = iota
	levelMid
	levelHigh
)

package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophsettings/internal/blobstore"
	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/logging"
)

// Storage is one settings namespace backed by a blob store.
// Instances over the same namespace share store keys but not read caches.
type Storage struct {
	namespace string
	store     blobstore.Store
	codec     Codec
	cache     *localCache
	log       logging.Logger
	ttl       time.Duration
	initLimit int
	now       func() time.Time
}

// Option customizes a Storage.
type Option func(*Storage)

// WithCodec replaces the default JSONCodec.
func WithCodec(c Codec) Option {
	return func(s *Storage) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTTL makes every write expire after ttl. Zero or negative means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Storage) {
		s.ttl = ttl
	}
}

// WithInitConcurrency bounds the number of parallel loads in InitializeAsync.
// Zero or negative means unbounded.
func WithInitConcurrency(n int) Option {
	return func(s *Storage) {
		s.initLimit = n
	}
}

// New creates a Storage for namespace on top of store.
func New(namespace string, store blobstore.Store, opts ...Option) *Storage {
	s := &Storage{
		namespace: namespace,
		store:     store,
		codec:     JSONCodec{},
		cache:     newLocalCache(),
		log:       logging.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("namespace", namespace, "instance", uuid.NewString())
	return s
}

func (s *Storage) Namespace() string {
	return s.namespace
}

// Cached reports whether propertyName is already resolved in the read cache.
func (s *Storage) Cached(propertyName string) bool {
	key, err := BuildKey(s.namespace, propertyName)
	if err != nil {
		return false
	}
	_, ok := s.cache.tryGet(key)
	return ok
}

func (s *Storage) expiry() *time.Time {
	if s.ttl <= 0 {
		return nil
	}
	t := s.now().Add(s.ttl)
	return &t
}

// GetOrCreate returns the value stored for propertyName. When the store has
// no value, defaultValue is persisted and returned; later calls return the
// persisted value whatever default they pass. Cached keys are served without
// touching the store.
func GetOrCreate[T any](ctx context.Context, s *Storage, defaultValue T, propertyName string) (T, error) {
	var zero T

	key, err := BuildKey(s.namespace, propertyName)
	if err != nil {
		return zero, err
	}

	if cached, ok := s.cache.tryGet(key); ok {
		v, ok := cached.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %q holds %T, requested %T", ErrDeserialization, key, cached, zero)
		}
		return v, nil
	}

	v, found, err := fetch[T](ctx, s, key)
	if err != nil {
		return zero, err
	}
	if found {
		s.cache.set(key, v)
		return v, nil
	}

	if err := write(ctx, s, key, defaultValue); err != nil {
		return zero, err
	}
	s.log.Info(ctx, "default seeded", "key", key)
	return defaultValue, nil
}

// SetOrCreate persists value for propertyName and updates the read cache.
func SetOrCreate[T any](ctx context.Context, s *Storage, value T, propertyName string) error {
	key, err := BuildKey(s.namespace, propertyName)
	if err != nil {
		return err
	}
	return write(ctx, s, key, value)
}

// fetch reads and decodes key from the store. A store miss is not an error.
func fetch[T any](ctx context.Context, s *Storage, key string) (T, bool, error) {
	var v T

	data, err := s.store.Get(ctx, key)
	if errors.Is(err, common.ErrorNotFound) {
		return v, false, nil
	}
	if err != nil {
		s.log.Error(ctx, "store get failed", "key", key, "error", err)
		return v, false, fmt.Errorf("%w: get %q: %w", ErrStoreFailure, key, err)
	}

	if err := s.codec.Decode(data, &v); err != nil {
		return v, false, fmt.Errorf("%w: %q as %T: %w", ErrDeserialization, key, v, err)
	}
	return v, true, nil
}

// write encodes value, stores it under key and caches it.
func write[T any](ctx context.Context, s *Storage, key string, value T) error {
	data, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	if err := s.store.Insert(ctx, key, data, s.expiry()); err != nil {
		s.log.Error(ctx, "store insert failed", "key", key, "error", err)
		return fmt.Errorf("%w: insert %q: %w", ErrStoreFailure, key, err)
	}

	s.cache.set(key, value)
	return nil
}

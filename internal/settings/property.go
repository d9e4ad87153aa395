package settings

import "context"

// Loader is a declared setting that InitializeAsync can warm up.
type Loader interface {
	PropertyName() string
	Load(ctx context.Context, s *Storage) error
}

// Property is a named setting of type T with its default.
type Property[T any] struct {
	Name    string
	Default T
}

// Define declares a property. It panics on an empty name, since a property
// without a key can never be read or written.
func Define[T any](name string, def T) Property[T] {
	if name == "" {
		panic("settings: Define with empty property name")
	}
	return Property[T]{Name: name, Default: def}
}

func (p Property[T]) PropertyName() string {
	return p.Name
}

func (p Property[T]) Get(ctx context.Context, s *Storage) (T, error) {
	return GetOrCreate(ctx, s, p.Default, p.Name)
}

func (p Property[T]) Set(ctx context.Context, s *Storage, v T) error {
	return SetOrCreate(ctx, s, v, p.Name)
}

// Load reads the stored value into the cache without seeding the default.
func (p Property[T]) Load(ctx context.Context, s *Storage) error {
	key, err := BuildKey(s.namespace, p.Name)
	if err != nil {
		return err
	}

	v, found, err := fetch[T](ctx, s, key)
	if err != nil || !found {
		return err
	}
	s.cache.set(key, v)
	return nil
}

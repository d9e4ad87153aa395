// Package settings provides typed, persisted application settings on top of a
// blobstore.Store.
//
// # Overview
//
// A Storage owns a namespace, a blob store handle, a Codec and a private
// in-memory read cache. Settings are read with GetOrCreate, which returns the
// stored value or persists and returns the supplied default the first time a
// key is absent, and written with SetOrCreate:
//
//	s := settings.New("#Settings#", store)
//
//	enabled, err := settings.GetOrCreate(ctx, s, true, "Boolean")
//	err = settings.SetOrCreate(ctx, s, false, "Boolean")
//
// Keys are stored as "{namespace}:{propertyName}" (see BuildKey).
//
// # Typed properties
//
// Property[T] binds a name and a default at compile time:
//
//	var Text = settings.Define("Text", "Default text")
//
//	v, err := Text.Get(ctx, s)
//	err = Text.Set(ctx, s, "hello")
//
// # Warm-up
//
// InitializeAsync loads a set of properties into the read cache concurrently,
// so later reads are served from memory. It never seeds defaults; keys that
// are still absent are seeded by the first GetOrCreate.
//
// # Concurrency
//
// A Storage is safe for concurrent use. Two first reads of the same unset key
// may both seed the default; the last write wins in the store and in the
// cache. Callers that need a single seeding should run InitializeAsync and
// the first reads before going concurrent.
//
// # Errors
//
// ErrInvalidArgument (empty property name), ErrDeserialization (payload does
// not decode as the requested type) and ErrStoreFailure (the blob store
// failed) are returned to the caller and should be matched with errors.Is.
package settings

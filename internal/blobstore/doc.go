// Package blobstore provides the key-value byte store the settings layer
// persists into.
//
// # Contract
//
// A Store maps string keys to opaque payloads:
//
//	Get(ctx, key)                   payload, or common.ErrorNotFound when absent/expired
//	Insert(ctx, key, payload, exp)  insert or overwrite; nil exp means no expiry
//	Remove(ctx, key)                idempotent delete
//	Keys(ctx)                       live keys, sorted
//
// # Drivers
//
//   - Memory:   thread-safe map, used by tests and the "memory" driver.
//   - SQLStore: database/sql over SQLite (modernc.org/sqlite) or PostgreSQL
//     (pgx stdlib), schema managed with embedded goose migrations.
//   - S3:       one object per key in an S3-compatible bucket.
//
// Use Open to build the driver selected in config.Config.
//
// # Concurrency
//
// All drivers are safe for concurrent use. Every blocking call accepts a
// context and honors its cancellation.
package blobstore

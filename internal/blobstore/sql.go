package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsettings/internal/blobstore/migrations"
	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/dbx"
	"github.com/dmitrijs2005/gophsettings/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// goose keeps its base FS and dialect in package globals.
var migrateMu sync.Mutex

// SQLStore implements Store over a "blobs" table in SQLite or PostgreSQL.
// Expiry is kept as Unix milliseconds; expired rows are hidden from reads and
// swept on every write.
type SQLStore struct {
	db      *sql.DB
	dialect dbx.Dialect
	now     func() time.Time
}

// NewSQLStore wraps an already migrated database.
func NewSQLStore(db *sql.DB, dialect dbx.Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, now: time.Now}
}

// OpenSQLite opens (creating if needed) the SQLite file at path and applies
// migrations. ":memory:" gives a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	dsn := path
	if path != ":memory:" {
		abs, err := filex.EnsureParentDir(path)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	db, err := sql.Open(dbx.SQLite.DriverName, dsn)
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway, and each :memory: connection is its own database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, dbx.SQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLStore(db, dbx.SQLite), nil
}

// OpenPostgres connects with the pgx stdlib driver and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open(dbx.Postgres.DriverName, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := RunMigrations(ctx, db, dbx.Postgres); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLStore(db, dbx.Postgres), nil
}

// RunMigrations applies the embedded goose migrations for dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	var (
		fsys fs.FS
		dir  string
	)
	switch dialect {
	case dbx.SQLite:
		fsys, dir = migrations.SQLite, "sqlite"
	case dbx.Postgres:
		fsys, dir = migrations.Postgres, "postgres"
	default:
		return fmt.Errorf("no migrations for driver %q", dialect.DriverName)
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect.GooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var (
		value     []byte
		expiresAt sql.NullInt64
	)

	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`SELECT value, expires_at FROM blobs WHERE key = ?`), key).
		Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blob[%s]: %w", key, err)
	}

	if expiresAt.Valid && !s.now().Before(time.UnixMilli(expiresAt.Int64)) {
		return nil, common.ErrorNotFound
	}
	return value, nil
}

func (s *SQLStore) Insert(ctx context.Context, key string, payload []byte, expiry *time.Time) error {
	if payload == nil {
		payload = []byte{}
	}

	var expiresAt sql.NullInt64
	if expiry != nil {
		expiresAt = sql.NullInt64{Int64: expiry.UnixMilli(), Valid: true}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, s.dialect.Rebind(`
			INSERT INTO blobs (key, value, expires_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
		`), key, payload, expiresAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM blobs WHERE expires_at IS NOT NULL AND expires_at <= ?`),
			s.now().UnixMilli())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert blob[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM blobs WHERE key = ?`), key)
	if err != nil {
		return fmt.Errorf("failed to remove blob[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		s.dialect.Rebind(`SELECT key FROM blobs WHERE expires_at IS NULL OR expires_at > ? ORDER BY key`),
		s.now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan blob row: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blob rows: %w", err)
	}
	return keys, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/dbx"
)

func newPostgresWithMock(t *testing.T) (*SQLStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	s := NewSQLStore(db, dbx.Postgres)
	s.now = func() time.Time { return time.UnixMilli(1_000_000) }
	return s, mock, db
}

const (
	qSelect = `(?s)^SELECT\s+value,\s*expires_at\s+FROM\s+blobs\s+WHERE\s+key\s*=\s*\$1$`
	qUpsert = `(?s)INSERT\s+INTO\s+blobs\s*\(key,\s*value,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\(key\)\s+DO\s+UPDATE`
	qSweep  = `(?s)^DELETE\s+FROM\s+blobs\s+WHERE\s+expires_at\s+IS\s+NOT\s+NULL\s+AND\s+expires_at\s*<=\s*\$1$`
	qDelete = `(?s)^DELETE\s+FROM\s+blobs\s+WHERE\s+key\s*=\s*\$1$`
	qKeys   = `(?s)^SELECT\s+key\s+FROM\s+blobs\s+WHERE\s+expires_at\s+IS\s+NULL\s+OR\s+expires_at\s*>\s*\$1\s+ORDER\s+BY\s+key$`
)

func TestPostgres_Get_Found(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).
		WithArgs("ns:k").
		WillReturnRows(sqlmock.NewRows([]string{"value", "expires_at"}).AddRow([]byte("v"), nil))

	got, err := s.Get(context.Background(), "ns:k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != "v" {
		t.Fatalf("unexpected payload: %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgres_Get_NotFound(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).WithArgs("ns:k").WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "ns:k")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestPostgres_Get_Expired(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).
		WithArgs("ns:k").
		WillReturnRows(sqlmock.NewRows([]string{"value", "expires_at"}).AddRow([]byte("v"), int64(999_999)))

	_, err := s.Get(context.Background(), "ns:k")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound for expired row, got %v", err)
	}
}

func TestPostgres_Get_DBError(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qSelect).WithArgs("ns:k").WillReturnError(errors.New("db down"))

	_, err := s.Get(context.Background(), "ns:k")
	if err == nil || !regexp.MustCompile(`failed to get blob\[ns:k\]: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgres_Insert_CommitsUpsertAndSweep(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qUpsert).
		WithArgs("ns:k", []byte("v"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qSweep).
		WithArgs(int64(1_000_000)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := s.Insert(context.Background(), "ns:k", []byte("v"), nil); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgres_Insert_RollsBackOnError(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(qUpsert).
		WithArgs("ns:k", []byte("v"), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Insert(context.Background(), "ns:k", []byte("v"), nil)
	if err == nil || !regexp.MustCompile(`failed to insert blob\[ns:k\]: .*disk full`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgres_Remove(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectExec(qDelete).WithArgs("ns:k").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qDelete).WithArgs("ns:k").WillReturnError(errors.New("db down"))

	if err := s.Remove(context.Background(), "ns:k"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if err := s.Remove(context.Background(), "ns:k"); err == nil {
		t.Fatalf("expected error on second Remove")
	}
}

func TestPostgres_Keys(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qKeys).
		WithArgs(int64(1_000_000)).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("a").AddRow("b"))

	keys, err := s.Keys(context.Background())
	if err != nil {
		t.Fatalf("Keys error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestPostgres_Keys_RowError(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qKeys).
		WithArgs(int64(1_000_000)).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("a").RowError(0, errors.New("broken row")))

	if _, err := s.Keys(context.Background()); err == nil {
		t.Fatalf("expected row error")
	}
}

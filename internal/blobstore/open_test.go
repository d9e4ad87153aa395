package blobstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/config"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &Memory{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "settings.db"),
	}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &SQLStore{}, s)
}

func TestOpen_UnknownDriver(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{StoreDriver: "etcd"})
	require.ErrorIs(t, err, common.ErrorUnknownDriver)
	assert.Nil(t, s)
}

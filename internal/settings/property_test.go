package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophsettings/internal/blobstore"
)

func TestDefine_EmptyNamePanics(t *testing.T) {
	assert.Panics(t, func() { Define("", 1) })
}

func TestProperty_GetSet(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	s := New("App", store)

	mode := Define("Mode", levelMid)
	assert.Equal(t, "Mode", mode.PropertyName())

	v, err := mode.Get(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, levelMid, v)

	require.NoError(t, mode.Set(ctx, s, levelHigh))

	v, err = mode.Get(ctx, New("App", store))
	require.NoError(t, err)
	assert.Equal(t, levelHigh, v)
}

func TestProperty_LoadDoesNotSeed(t *testing.T) {
	store := newCountingStore()
	ctx := context.Background()
	s := New("App", store)

	require.NoError(t, Define("Missing", "x").Load(ctx, s))

	assert.Equal(t, int32(1), store.gets.Load())
	assert.Equal(t, int32(0), store.inserts.Load())
	assert.False(t, s.Cached("Missing"))
}

func TestProperty_ZeroValueLiteralWithEmptyName(t *testing.T) {
	// a literal bypasses Define, so the empty name reaches the key builder
	var p Property[int]
	_, err := p.Get(context.Background(), New("App", blobstore.NewMemory()))
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, p.Load(context.Background(), New("App", blobstore.NewMemory())), ErrInvalidArgument)
}

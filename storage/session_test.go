package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T) (*SessionStore, *LocalStore) {
	t.Helper()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return NewSessionStore(local), local
}

func TestProStatusDefaultsFalse(t *testing.T) {
	store, _ := newTestSessionStore(t)

	assert.False(t, store.ProStatus())
}

func TestProStatusRoundTrip(t *testing.T) {
	store, _ := newTestSessionStore(t)

	require.NoError(t, store.SetProStatus(true))
	assert.True(t, store.ProStatus())

	require.NoError(t, store.SetProStatus(false))
	assert.False(t, store.ProStatus())
}

func TestClearingProStatusRemovesKey(t *testing.T) {
	store, local := newTestSessionStore(t)

	require.NoError(t, store.SetProStatus(true))
	require.NoError(t, store.SetProStatus(false))

	_, ok, err := local.Get("pro_active")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptProFlagReadsAsNotPro(t *testing.T) {
	store, local := newTestSessionStore(t)
	require.NoError(t, local.Put("pro_active", []byte("{broken")))

	assert.False(t, store.ProStatus())
}

func TestCachedEmailRoundTrip(t *testing.T) {
	store, _ := newTestSessionStore(t)

	assert.Empty(t, store.CachedEmail())

	require.NoError(t, store.SetCachedEmail("stylist@example.com"))
	assert.Equal(t, "stylist@example.com", store.CachedEmail())

	require.NoError(t, store.SetCachedEmail(""))
	assert.Empty(t, store.CachedEmail())
}

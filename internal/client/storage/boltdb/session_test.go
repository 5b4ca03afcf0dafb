package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lyra/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSessionSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		Token:     "token-abc",
		UserID:    "user-1",
		Name:      "Ana",
		Email:     "ana@x.edu",
		Role:      "user",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.Role, got.Role)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSaveSessionOverwritesSingleKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveSession(ctx, &storage.Session{Token: "first"}))
	require.NoError(t, store.SaveSession(ctx, &storage.Session{Token: "second"}))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
}

func TestDeleteSessionWithoutOne(t *testing.T) {
	store := newTestStorage(t)
	err := store.DeleteSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestIsAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveSession(ctx, &storage.Session{
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.SaveSession(ctx, &storage.Session{
		Token:     "token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	ok, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lyra/internal/api/dto"
	"github.com/spec-kit/lyra/internal/auth"
	"github.com/spec-kit/lyra/internal/client/storage"
	"github.com/spec-kit/lyra/internal/domain"
)

type fakeSessionStore struct {
	session *storage.Session
}

func (f *fakeSessionStore) SaveSession(_ context.Context, s *storage.Session) error {
	f.session = s
	return nil
}

func (f *fakeSessionStore) GetSession(context.Context) (*storage.Session, error) {
	if f.session == nil {
		return nil, storage.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeSessionStore) DeleteSession(context.Context) error {
	if f.session == nil {
		return storage.ErrSessionNotFound
	}
	f.session = nil
	return nil
}

func (f *fakeSessionStore) IsAuthenticated(context.Context) (bool, error) {
	return f.session != nil, nil
}

func TestCollectFeaturesFromArgs(t *testing.T) {
	c := &Cli{}

	features, err := c.collectFeatures([]string{"1", "2.5", "3", "4", "5"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2.5, 3, 4, 5}, features)
}

func TestCollectFeaturesRejectsBadInput(t *testing.T) {
	c := &Cli{}

	_, err := c.collectFeatures([]string{"1", "2", "x", "4", "5"})
	assert.ErrorContains(t, err, "invalid number")

	_, err = c.collectFeatures([]string{"1", "2"})
	assert.ErrorContains(t, err, "expected 5 scores")
}

func TestSaveSessionDecodesClaimSnapshot(t *testing.T) {
	store := &fakeSessionStore{}
	c := &Cli{sessions: store}

	tm := auth.NewTokenManager("client-test-secret")
	token, exp, err := tm.Issue(&domain.User{
		ID:    "user-1",
		Name:  "Ana",
		Email: "ana@x.edu",
		Role:  "user",
	}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, c.saveSession(context.Background(), &dto.TokenResponse{Token: token, ExpiresAt: exp}))

	require.NotNil(t, store.session)
	assert.Equal(t, token, store.session.Token)
	assert.Equal(t, "user-1", store.session.UserID)
	assert.Equal(t, "ana@x.edu", store.session.Email)
	assert.Equal(t, "user", store.session.Role)
	assert.Equal(t, exp, store.session.ExpiresAt)
}

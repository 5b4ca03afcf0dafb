package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/lyra/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Name:  "Ana",
		Email: "ana@x.edu",
		Role:  domain.RoleUser,
	}
}

func TestIssueAndParseRoundtrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.Issue(testUser(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@x.edu", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.Issue(testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.Issue(testUser(), time.Hour)
	require.NoError(t, err)

	// Flip one byte inside the payload segment.
	tampered := []byte(token)
	idx := len(tampered) / 2
	if tampered[idx] == 'a' {
		tampered[idx] = 'b'
	} else {
		tampered[idx] = 'a'
	}

	_, err = tm.Parse(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a").Issue(testUser(), time.Hour)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound indicates no session is persisted locally.
var ErrSessionNotFound = errors.New("session not found")

// Session is the locally persisted authentication state: the bearer token
// plus the claim snapshot it was issued for.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore persists the single current session.
type SessionStore interface {
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context) (*Session, error)
	DeleteSession(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
}

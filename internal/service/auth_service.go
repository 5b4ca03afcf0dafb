package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/lyra/internal/auth"
	"github.com/spec-kit/lyra/internal/config"
	"github.com/spec-kit/lyra/internal/domain"
	"github.com/spec-kit/lyra/internal/repository"
	apperrors "github.com/spec-kit/lyra/pkg/util"
)

const minPasswordLength = 6

// AttemptLimiter throttles repeated login attempts for one email.
type AttemptLimiter interface {
	Allow(ctx context.Context, email string) bool
}

// AuthService coordinates registration, login and profile flows. It is
// stateless; every call is independent.
type AuthService struct {
	users       repository.UserRepository
	tokenMgr    *auth.TokenManager
	limiter     AttemptLimiter
	bcryptCost  int
	registerTTL time.Duration
	loginTTL    time.Duration
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Limiter  AttemptLimiter
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:       deps.UserRepo,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret),
		limiter:     deps.Limiter,
		bcryptCost:  cfg.Auth.BcryptCost,
		registerTTL: cfg.Auth.RegisterTokenTTL(),
		loginTTL:    cfg.Auth.LoginTokenTTL(),
	}
}

// Register creates a new account and issues its first token.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*domain.User, string, time.Time, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name is required", map[string]any{"field": "name"})
	}
	if !validEmail(email) {
		return nil, "", time.Time{}, apperrors.NewValidationError("a valid email is required", map[string]any{"field": "email"})
	}
	if len(password) < minPasswordLength {
		return nil, "", time.Time{}, apperrors.NewValidationError("password must be 6 or more characters", map[string]any{"field": "password"})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateEmail()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if role == "" {
		role = domain.RoleUser
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check above is advisory; a concurrent registration can
		// still lose the race and surface the storage-level violation here.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", time.Time{}, apperrors.NewDuplicateEmail()
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokenMgr.Issue(user, s.registerTTL)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// Login authenticates an existing account. Unknown email and wrong password
// produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = NormalizeEmail(email)

	if !validEmail(email) {
		return nil, "", time.Time{}, apperrors.NewValidationError("a valid email is required", map[string]any{"field": "email"})
	}
	if password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("password is required", map[string]any{"field": "password"})
	}

	if s.limiter != nil && !s.limiter.Allow(ctx, email) {
		return nil, "", time.Time{}, apperrors.NewTooManyRequests("too many login attempts")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Issue(user, s.loginTTL)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// GetCurrentUser resolves the live record behind an authenticated identity.
// The password hash never leaves this method.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	user.PasswordHash = ""
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// NormalizeEmail lowercases and trims an email address before lookup or
// storage so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms; only the bare address is acceptable.
	return addr.Address == email
}

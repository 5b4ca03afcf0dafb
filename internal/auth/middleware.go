package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/lyra/pkg/util"
)

const identityKey = "auth_identity"

// Middleware validates bearer tokens on protected routes. It does not touch
// the database; the decoded claim snapshot is the request identity, and
// handlers that need the live record resolve it themselves.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the request gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(identityKey, claims)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated claims.
func IdentityFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}

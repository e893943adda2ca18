package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/dental-records/internal/domain"
	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// SessionResolver turns a session token into the account that owns it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.AccountView, error)
}

// SessionMiddleware validates the session cookie and loads the caller.
type SessionMiddleware struct {
	resolver SessionResolver
	cookie   CookieSettings
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(resolver SessionResolver, cookie CookieSettings) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver, cookie: cookie}
}

// Handle enforces authentication for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := m.cookie.SessionToken(c)
	if token == "" {
		return apperrors.NewUnauthorized("Session ID required")
	}

	account, err := m.resolver.ResolveSession(c.UserContext(), token)
	if err != nil {
		return err
	}

	c.Locals(principalKey, account)
	return c.Next()
}

// AccountFromContext retrieves the authenticated account.
func AccountFromContext(c *fiber.Ctx) (*domain.AccountView, bool) {
	account, ok := c.Locals(principalKey).(*domain.AccountView)
	return account, ok && account != nil
}

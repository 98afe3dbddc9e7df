package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-api/internal/core/domain"
	"github.com/userhub/account-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxAccountKey = "account"
	CtxTokenKey   = "token"
)

// Auth resolves the bearer token against the session service and injects the
// owning account (and the raw token, for logout) into the request context.
// Missing, malformed, unknown, and revoked tokens are indistinguishable to
// the client: all fail with domain.ErrUnauthenticated.
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}

			account, err := sessions.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(CtxAccountKey, account)
			c.Set(CtxTokenKey, parts[1])

			return next(c)
		}
	}
}

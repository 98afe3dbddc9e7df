package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/userhub/account-api/internal/api/middleware"
	"github.com/userhub/account-api/internal/core/domain"
)

// ctxAccount extracts the account injected by the Auth middleware and
// performs a fast-fail check before any service call: presence proves the
// middleware ran. Absence means a protected route was wired without it.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.CtxAccountKey).(*domain.Account)
	if account == nil {
		return nil, domain.ErrUnauthenticated
	}
	return account, nil
}

// ctxToken extracts the plaintext bearer token that authenticated this
// request. Logout needs it to revoke that token and no other.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.CtxTokenKey).(string)
	if token == "" {
		return "", domain.ErrUnauthenticated
	}
	return token, nil
}

package ports

import (
	"context"

	"github.com/userhub/account-api/internal/core/domain"
)

// RegisterInput carries the registration form fields. The password cap is
// bcrypt's 72-byte input limit surfaced as a declared rule instead of a
// hashing failure.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// SessionService implements credential-based session issuance and revocation.
//
// Register creates an account only; it never issues a token. Login failures
// caused by an unknown email and by a wrong password are indistinguishable to
// the caller (both return domain.ErrUnauthenticated). Logout revokes exactly
// the presented token, leaving the account's other sessions intact.
type SessionService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, in LoginInput) (*domain.Account, *domain.SessionToken, error)
	Logout(ctx context.Context, plaintext string) error
	Authenticate(ctx context.Context, plaintext string) (*domain.Account, error)
}

package ports

import (
	"context"

	"github.com/userhub/account-api/internal/core/domain"
)

// TokenStore holds opaque session tokens. Issue returns the plaintext token
// once; afterwards only Resolve and Revoke by plaintext are possible, and the
// store itself keeps no reversible form of the value. Tokens do not expire:
// they live until revoked.
type TokenStore interface {
	Issue(ctx context.Context, accountID string) (*domain.SessionToken, error)
	Resolve(ctx context.Context, plaintext string) (accountID string, err error)
	Revoke(ctx context.Context, plaintext string) error
}

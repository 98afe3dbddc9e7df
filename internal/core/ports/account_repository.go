package ports

import (
	"context"

	"github.com/userhub/account-api/internal/core/domain"
)

// AccountRepository defines the interface for account persistence. Email
// uniqueness is enforced by the implementation; Create returns
// domain.ErrEmailTaken when a concurrent or prior registration holds the same
// email.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

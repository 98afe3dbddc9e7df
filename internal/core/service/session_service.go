package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/account-api/internal/core/domain"
	"github.com/userhub/account-api/internal/core/ports"
	"github.com/userhub/account-api/internal/metrics"
)

const (
	msgEmailTaken = "email has already been taken"
	// Matches the fieldMessage output for the declared max=72 rule. The rule
	// counts runes while bcrypt counts bytes, so a multibyte password can
	// slip past the rule and still overflow bcrypt; both paths produce this
	// message.
	msgPasswordTooLong = "The password may not be greater than 72 characters."
)

// SessionService implements registration, login and logout on top of an
// account repository and a token store.
type SessionService struct {
	accounts   ports.AccountRepository
	tokens     ports.TokenStore
	bcryptCost int
}

func NewSessionService(accounts ports.AccountRepository, tokens ports.TokenStore, bcryptCost int) *SessionService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &SessionService{accounts: accounts, tokens: tokens, bcryptCost: bcryptCost}
}

// Register validates the input, stores a new account with a bcrypt hash of
// the password, and returns the created account. No token is issued here;
// the client logs in separately.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	verr := validateStruct(in)

	// The uniqueness check joins the same error bag as the rule failures, so
	// a taken email and a short password surface in one response.
	if verr.Empty() || len(verr.Fields["email"]) == 0 {
		if _, err := s.accounts.FindByEmail(ctx, in.Email); err == nil {
			verr.Add("email", msgEmailTaken)
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}
	if !verr.Empty() {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			long := domain.NewValidationError()
			long.Add("password", msgPasswordTooLong)
			return nil, long
		}
		return nil, err
	}

	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		// A concurrent registration can win between the pre-check and the
		// insert; the unique index reports it and the loser gets the same
		// validation response as if the pre-check had caught it.
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			dup := domain.NewValidationError()
			dup.Add("email", msgEmailTaken)
			return nil, dup
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return created, nil
}

// Login verifies the credentials and mints a fresh session token. Prior
// tokens for the same account stay valid. An unknown email and a wrong
// password both come back as domain.ErrUnauthenticated so the response never
// reveals which credential was wrong.
func (s *SessionService) Login(ctx context.Context, in ports.LoginInput) (*domain.Account, *domain.SessionToken, error) {
	if verr := validateStruct(in); !verr.Empty() {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, nil, verr
	}

	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("unauthenticated").Inc()
			return nil, nil, domain.ErrUnauthenticated
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("unauthenticated").Inc()
		return nil, nil, domain.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return account, token, nil
}

// Logout revokes exactly the presented token. Revocation is idempotent: a
// token already gone (double logout) is not an error.
func (s *SessionService) Logout(ctx context.Context, plaintext string) error {
	if err := s.tokens.Revoke(ctx, plaintext); err != nil {
		return err
	}
	metrics.TokenRevocationsTotal.Inc()
	return nil
}

// Authenticate resolves a presented bearer token to its owning account.
// Unknown tokens, revoked tokens and orphaned accounts all collapse to
// domain.ErrUnauthenticated.
func (s *SessionService) Authenticate(ctx context.Context, plaintext string) (*domain.Account, error) {
	if plaintext == "" {
		return nil, domain.ErrUnauthenticated
	}

	accountID, err := s.tokens.Resolve(ctx, plaintext)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return account, nil
}

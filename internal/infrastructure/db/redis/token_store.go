package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/userhub/account-api/internal/core/domain"
)

const tokenSecretBytes = 20

// TokenStore holds opaque session tokens in Redis.
// Key format: token:<sha256 hex of plaintext> → account id.
//
// The plaintext is "<uuid>|<hex secret>" and exists only in the Issue return
// value; Redis never sees it. Keys are written without TTL: a token stays
// valid until Revoke deletes it.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Issue mints a new token for accountID and stores its digest.
func (s *TokenStore) Issue(ctx context.Context, accountID string) (*domain.SessionToken, error) {
	secret := make([]byte, tokenSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("token entropy: %w", err)
	}
	plaintext := uuid.NewString() + "|" + hex.EncodeToString(secret)

	if err := s.client.Set(ctx, s.key(plaintext), accountID, 0).Err(); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	return &domain.SessionToken{
		Plaintext: plaintext,
		AccountID: accountID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Resolve maps a presented plaintext token back to its account id.
func (s *TokenStore) Resolve(ctx context.Context, plaintext string) (string, error) {
	accountID, err := s.client.Get(ctx, s.key(plaintext)).Result()
	if err == redis.Nil {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve token: %w", err)
	}
	return accountID, nil
}

// Revoke deletes exactly the presented token. Deleting a token that is
// already gone is not an error, so logout stays idempotent.
func (s *TokenStore) Revoke(ctx context.Context, plaintext string) error {
	if err := s.client.Del(ctx, s.key(plaintext)).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(plaintext string) string {
	return "token:" + domain.TokenDigest(plaintext)
}

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SessionToken is an opaque bearer credential minted at login. Plaintext is
// the value handed to the client exactly once; the stores only ever see its
// SHA-256 digest. One account may hold any number of live tokens; each is
// revoked independently.
type SessionToken struct {
	Plaintext string    `json:"-"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenDigest returns the hex SHA-256 digest under which a plaintext token
// is stored and looked up.
func TokenDigest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

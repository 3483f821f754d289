package auth

import (
	"context"
	"time"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID  uint
	TokenID string
	// ExpiresAt is zero for tokens that never expire.
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer tokens bound to a user id.
type TokenService interface {
	Issue(userID uint) (string, error)

	// Verify returns httperr.ErrUnauthenticated for malformed, forged,
	// expired or revoked tokens.
	Verify(ctx context.Context, token string) (*Claims, error)

	// Revoke denies the token until it would have expired on its own.
	Revoke(ctx context.Context, claims *Claims) error
}

// Denylist records revoked token ids.
type Denylist interface {
	// Add denies tokenID for ttl. A ttl of zero denies it permanently.
	Add(ctx context.Context, tokenID string, ttl time.Duration) error
	Contains(ctx context.Context, tokenID string) (bool, error)
}

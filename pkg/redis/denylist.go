package redis

import (
	"context"
	"time"
)

const denylistPrefix = "revoked-token:"

// TokenDenylist records revoked token ids until the tokens would have
// expired on their own.
type TokenDenylist struct{}

var (
	setDenylistValue  = Set
	existsDenylistKey = Exists
	nowFunc           = time.Now
)

// NewTokenDenylist creates a denylist backed by the package client.
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{}
}

// Revoke denies tokenID until expiresAt. Already expired tokens are ignored.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(nowFunc())
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return setDenylistValue(ctx, denylistPrefix+tokenID, "1", ttl)
}

// IsRevoked reports whether tokenID has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	return existsDenylistKey(ctx, denylistPrefix+tokenID)
}

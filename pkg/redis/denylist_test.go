package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDenylist_RevokeAndCheck(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()
	d := NewTokenDenylist()

	revoked, err := d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = d.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylist_IgnoresExpiredAndEmpty(t *testing.T) {
	calls := 0
	orig := setDenylistValue
	t.Cleanup(func() { setDenylistValue = orig })
	setDenylistValue = func(context.Context, string, interface{}, time.Duration) error {
		calls++
		return nil
	}

	d := NewTokenDenylist()
	require.NoError(t, d.Revoke(context.Background(), "jti", time.Now().Add(-time.Minute)))
	require.NoError(t, d.Revoke(context.Background(), "", time.Now().Add(time.Hour)))
	assert.Equal(t, 0, calls)

	revoked, err := d.IsRevoked(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func withHooks(t *testing.T) {
	t.Helper()
	origConnect := connectClient
	origPing := pingClient
	origDisconnect := disconnectClient
	t.Cleanup(func() {
		connectClient = origConnect
		pingClient = origPing
		disconnectClient = origDisconnect
	})
}

func TestConnection_LazyConnectIsReused(t *testing.T) {
	withHooks(t)
	connects := 0
	connectClient = func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
		connects++
		return mongo.Connect(ctx, opts)
	}
	pingClient = func(context.Context, *mongo.Client) error { return nil }

	conn := NewConnection("mongodb://127.0.0.1:1", "club", time.Second)
	require.Equal(t, 0, connects)

	db, err := conn.Database(context.Background())
	require.NoError(t, err)
	require.Equal(t, "club", db.Name())

	again, err := conn.Database(context.Background())
	require.NoError(t, err)
	require.Same(t, db, again)
	require.Equal(t, 1, connects)

	require.NoError(t, conn.Ping(context.Background()))
	require.NoError(t, conn.Close(context.Background()))
	require.NoError(t, conn.Close(context.Background()))

	_, err = conn.Database(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, connects)
}

func TestConnection_FailedAttemptIsNotCached(t *testing.T) {
	withHooks(t)
	connects := 0
	disconnects := 0
	connectClient = func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
		connects++
		return mongo.Connect(ctx, opts)
	}
	disconnectClient = func(ctx context.Context, c *mongo.Client) error {
		disconnects++
		return c.Disconnect(ctx)
	}
	pingClient = func(context.Context, *mongo.Client) error { return errors.New("no reachable servers") }

	conn := NewConnection("mongodb://127.0.0.1:1", "club", 0)
	_, err := conn.Database(context.Background())
	require.ErrorContains(t, err, "mongo ping")
	require.Error(t, conn.Ping(context.Background()))
	require.Equal(t, 2, connects)
	require.Equal(t, 2, disconnects)
}

func TestConnection_ConnectError(t *testing.T) {
	withHooks(t)
	connectClient = func(context.Context, *options.ClientOptions) (*mongo.Client, error) {
		return nil, errors.New("bad uri")
	}

	_, err := NewConnection("mongodb://x", "club", time.Second).Database(context.Background())
	require.ErrorContains(t, err, "mongo connect")
}

func TestConnection_OnConnectRunsPerConnect(t *testing.T) {
	withHooks(t)
	pingClient = func(context.Context, *mongo.Client) error { return nil }
	disconnects := 0
	disconnectClient = func(ctx context.Context, c *mongo.Client) error {
		disconnects++
		return c.Disconnect(ctx)
	}

	calls := 0
	setupErr := errors.New("index build failed")
	conn := NewConnection("mongodb://127.0.0.1:1", "club", time.Second)
	conn.OnConnect(func(_ context.Context, db *mongo.Database) error {
		calls++
		require.Equal(t, "club", db.Name())
		return setupErr
	})

	_, err := conn.Database(context.Background())
	require.ErrorIs(t, err, setupErr)
	require.ErrorContains(t, err, "mongo setup")
	require.Equal(t, 1, disconnects)

	setupErr = nil
	db, err := conn.Database(context.Background())
	require.NoError(t, err)
	require.NotNil(t, db)
	require.Equal(t, 2, calls)

	_, err = conn.Database(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.NoError(t, conn.Close(context.Background()))
}

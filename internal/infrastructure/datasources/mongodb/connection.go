package mongodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"oysterkode.backend/pkg/logger"
)

var (
	connectClient = func(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
		return mongo.Connect(ctx, opts)
	}
	pingClient = func(ctx context.Context, c *mongo.Client) error {
		return c.Ping(ctx, readpref.Primary())
	}
	disconnectClient = func(ctx context.Context, c *mongo.Client) error {
		return c.Disconnect(ctx)
	}
)

// Connection is the process-wide MongoDB handle. It connects on first use
// and a failed attempt is retried on the next call.
type Connection struct {
	uri     string
	dbName  string
	timeout time.Duration

	mu        sync.Mutex
	client    *mongo.Client
	db        *mongo.Database
	onConnect func(ctx context.Context, db *mongo.Database) error
}

// NewConnection prepares a lazy connection; nothing is dialled yet.
func NewConnection(uri, dbName string, timeout time.Duration) *Connection {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Connection{uri: uri, dbName: dbName, timeout: timeout}
}

// OnConnect registers fn to run after every successful connect, before the
// handle is shared. A failing fn fails the attempt, so the next call retries.
func (c *Connection) OnConnect(fn func(ctx context.Context, db *mongo.Database) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = fn
}

// Database returns the shared database handle, connecting if needed.
func (c *Connection) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := connectClient(connectCtx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := pingClient(connectCtx, client); err != nil {
		_ = disconnectClient(context.Background(), client)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(c.dbName)
	if c.onConnect != nil {
		if err := c.onConnect(connectCtx, db); err != nil {
			_ = disconnectClient(context.Background(), client)
			return nil, fmt.Errorf("mongo setup: %w", err)
		}
	}

	c.client = client
	c.db = db
	logger.Info(ctx, "Connected to MongoDB", zap.String("database", c.dbName))
	return c.db, nil
}

// Ping checks the deployment is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	db, err := c.Database(ctx)
	if err != nil {
		return err
	}
	return pingClient(ctx, db.Client())
}

// Close disconnects the client. A later Database call reconnects.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := disconnectClient(ctx, c.client)
	c.client = nil
	c.db = nil
	return err
}

// Package storage selects the persistence backend and builds the domain
// repositories on top of it.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"oysterkode.backend/internal/config"
	"oysterkode.backend/internal/domain/repositories"
	"oysterkode.backend/internal/infrastructure/datasources/mongodb"
	"oysterkode.backend/internal/infrastructure/datasources/sqldb"
	"oysterkode.backend/internal/infrastructure/mongostore"
	gormrepo "oysterkode.backend/internal/infrastructure/repositories"
	"oysterkode.backend/pkg/logger"
)

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Driver   string
	Admins   repositories.AdminRepository
	Events   repositories.EventRepository
	Members  repositories.MemberRepository
	Projects repositories.ProjectRepository
	Contacts repositories.ContactSubmissionRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

var openSQL = sqldb.Open

// Open builds the store for cfg.Driver. MongoDB connects lazily, so an
// unreachable deployment is only logged here and indexes are created by
// whichever connect succeeds first; SQL backends are opened and migrated
// eagerly.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg), nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := openSQL(cfg.Driver, cfg.SQLDSN)
		if err != nil {
			return nil, err
		}
		if err := sqldb.Migrate(db); err != nil {
			_ = sqldb.Close(db)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return NewSQL(cfg.Driver, db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig) *Store {
	conn := mongodb.NewConnection(cfg.MongoURI, cfg.MongoDatabase, cfg.ConnectTimeout)
	conn.OnConnect(mongostore.EnsureIndexesOnConnect)
	if _, err := conn.Database(ctx); err != nil {
		logger.Warn(ctx, "MongoDB not available yet, indexes will be ensured on first connect", zap.Error(err))
	}
	s := NewMongo(conn)
	s.ping = conn.Ping
	s.close = conn.Close
	return s
}

// NewMongo builds a store over any database provider.
func NewMongo(p mongostore.Provider) *Store {
	return &Store{
		Driver:   config.DriverMongo,
		Admins:   mongostore.NewAdminRepository(p),
		Events:   mongostore.NewEventRepository(p),
		Members:  mongostore.NewMemberRepository(p),
		Projects: mongostore.NewProjectRepository(p),
		Contacts: mongostore.NewContactSubmissionRepository(p),
		ping: func(ctx context.Context) error {
			_, err := p.Database(ctx)
			return err
		},
		close: func(context.Context) error { return nil },
	}
}

// NewSQL builds a store over an open gorm handle.
func NewSQL(driver string, db *gorm.DB) *Store {
	return &Store{
		Driver:   driver,
		Admins:   gormrepo.NewAdminRepository(db),
		Events:   gormrepo.NewEventRepository(db),
		Members:  gormrepo.NewMemberRepository(db),
		Projects: gormrepo.NewProjectRepository(db),
		Contacts: gormrepo.NewContactSubmissionRepository(db),
		ping: func(ctx context.Context) error {
			return sqldb.Ping(ctx, db)
		},
		close: func(context.Context) error {
			return sqldb.Close(db)
		},
	}
}

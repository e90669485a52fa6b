// Package mongostore implements the domain repositories on MongoDB.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	domainerrors "oysterkode.backend/internal/domain/errors"
)

// Collection names.
const (
	AdminsCollection   = "admins"
	EventsCollection   = "events"
	MembersCollection  = "members"
	ProjectsCollection = "projects"
	ContactsCollection = "contactsubmissions"
)

// Provider hands out the database handle. mongodb.Connection satisfies it.
type Provider interface {
	Database(ctx context.Context) (*mongo.Database, error)
}

type staticProvider struct {
	db *mongo.Database
}

func (p staticProvider) Database(context.Context) (*mongo.Database, error) {
	return p.db, nil
}

// Static wraps an already connected database.
func Static(db *mongo.Database) Provider {
	return staticProvider{db: db}
}

func collection(ctx context.Context, p Provider, name string) (*mongo.Collection, error) {
	db, err := p.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, p Provider) error {
	admins, err := collection(ctx, p, AdminsCollection)
	if err != nil {
		return err
	}
	_, err = admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	events, err := collection(ctx, p, EventsCollection)
	if err != nil {
		return err
	}
	_, err = events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}

// EnsureIndexesOnConnect adapts EnsureIndexes to a connection setup hook.
func EnsureIndexesOnConnect(ctx context.Context, db *mongo.Database) error {
	return EnsureIndexes(ctx, Static(db))
}

func findOne(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}) error {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainerrors.ErrNotFound
	}
	return err
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id interface{}, doc interface{}) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id interface{}) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func list[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

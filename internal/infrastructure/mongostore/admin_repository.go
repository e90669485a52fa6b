package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
)

// AdminRepository implements repositories.AdminRepository
type AdminRepository struct {
	p Provider
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(p Provider) *AdminRepository {
	return &AdminRepository{p: p}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	coll, err := collection(ctx, r.p, AdminsCollection)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, toAdminDocument(admin)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	coll, err := collection(ctx, r.p, AdminsCollection)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	coll, err := collection(ctx, r.p, AdminsCollection)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password":  passwordHash,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) findOne(ctx context.Context, filter bson.M) (*entities.Admin, error) {
	coll, err := collection(ctx, r.p, AdminsCollection)
	if err != nil {
		return nil, err
	}
	var doc adminDocument
	if err := findOne(ctx, coll, filter, &doc); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

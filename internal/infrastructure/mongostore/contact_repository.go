package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"oysterkode.backend/internal/domain/entities"
)

// ContactSubmissionRepository implements repositories.ContactSubmissionRepository
type ContactSubmissionRepository struct {
	p Provider
}

// NewContactSubmissionRepository creates a new contact submission repository
func NewContactSubmissionRepository(p Provider) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{p: p}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, submission *entities.ContactSubmission) error {
	coll, err := collection(ctx, r.p, ContactsCollection)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, toContactDocument(submission))
	return err
}

// List returns submissions newest first.
func (r *ContactSubmissionRepository) List(ctx context.Context) ([]*entities.ContactSubmission, error) {
	coll, err := collection(ctx, r.p, ContactsCollection)
	if err != nil {
		return nil, err
	}
	docs, err := list[contactDocument](ctx, coll, bson.M{}, contactSort)
	if err != nil {
		return nil, err
	}
	items := make([]*entities.ContactSubmission, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toEntity())
	}
	return items, nil
}

// Count counts submissions, optionally restricted to one status.
func (r *ContactSubmissionRepository) Count(ctx context.Context, status entities.ContactStatus) (int64, error) {
	coll, err := collection(ctx, r.p, ContactsCollection)
	if err != nil {
		return 0, err
	}
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	return coll.CountDocuments(ctx, filter)
}
